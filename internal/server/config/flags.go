package config

import (
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/tasktracker/internal/flagx"
)

// serverFlags are the short flags parseFlags understands; anything else on
// the command line belongs to someone else (see flagx.FilterArgs).
var serverFlags = []string{"-a", "-d", "-s", "-t", "-r", "-u", "-p", "-b", "-g", "-e", "-l"}

// minutesValue is a duration flag that takes a bare integer as minutes
// ("-t 15") and anything else as a Go duration ("-t 90s").
type minutesValue struct {
	d *time.Duration
}

func (m minutesValue) String() string {
	if m.d == nil {
		return ""
	}
	return m.d.String()
}

func (m minutesValue) Set(s string) error {
	if n, err := strconv.Atoi(s); err == nil {
		*m.d = time.Duration(n) * time.Minute
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*m.d = d
	return nil
}

// parseFlags overlays the command-line flags onto config:
//
//	-a  gRPC bind address          -u  S3 user
//	-d  PostgreSQL DSN or "memory" -p  S3 password
//	-s  JWT secret                 -b  S3 bucket (empty disables exports)
//	-t  access token validity      -g  S3 region
//	-r  refresh token validity     -e  S3 base endpoint
//	-l  log level
//
// A malformed value panics.
func parseFlags(config *Config) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN, or memory")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "JWT secret key")
	fs.Var(minutesValue{&config.AccessTokenValidityDuration}, "t", "access token validity (minutes or duration)")
	fs.Var(minutesValue{&config.RefreshTokenValidityDuration}, "r", "refresh token validity (minutes or duration)")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket for exports")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(flagx.FilterArgs(os.Args[1:], serverFlags)); err != nil {
		panic(err)
	}
}
