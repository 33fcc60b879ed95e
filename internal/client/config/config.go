package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
)

const (
	flagServer  = "server"
	flagSession = "session"
	flagTimeout = "timeout"
	flagConfig  = "config"
)

type Config struct {
	ServerEndpointAddr string
	SessionFile        string
	Timeout            time.Duration
	ConfigFile         string
}

// DefaultSessionFile is <user config dir>/tasktracker/session.json, or a
// file in the working directory when the config dir is unknown.
func DefaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "tasktracker-session.json"
	}
	return filepath.Join(dir, "tasktracker", "session.json")
}

func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.SessionFile = DefaultSessionFile()
	c.Timeout = 10 * time.Second
}

// BindFlags registers the client flags on fs, using the current values as
// defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.ServerEndpointAddr, flagServer, "a", c.ServerEndpointAddr, "address and port of the server")
	fs.StringVar(&c.SessionFile, flagSession, c.SessionFile, "file that keeps the login tokens")
	fs.DurationVar(&c.Timeout, flagTimeout, c.Timeout, "deadline for a single command")
	fs.StringVarP(&c.ConfigFile, flagConfig, "c", c.ConfigFile, "JSON or YAML config file")
}

// Resolve overlays the config file, if any, below the flags that were set
// explicitly on fs. Call it after fs has been parsed.
func (c *Config) Resolve(fs *pflag.FlagSet) error {
	if c.ConfigFile == "" {
		return nil
	}
	fc, err := readFile(c.ConfigFile)
	if err != nil {
		return err
	}

	explicit := func(name string) bool {
		f := fs.Lookup(name)
		return f != nil && f.Changed
	}
	if fc.ServerEndpointAddr != "" && !explicit(flagServer) {
		c.ServerEndpointAddr = fc.ServerEndpointAddr
	}
	if fc.SessionFile != "" && !explicit(flagSession) {
		c.SessionFile = fc.SessionFile
	}
	if fc.Timeout != nil && !explicit(flagTimeout) {
		c.Timeout = fc.Timeout.Duration
	}
	return nil
}
