// Package config holds the settings of the tasktracker CLI.
//
// Values are resolved in three layers, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. An optional JSON or YAML file named by --config.
//  3. Command-line flags that were set explicitly.
//
// Flags
//
//	-a, --server string     address:port of the gRPC endpoint
//	    --session string    file that keeps the login tokens
//	    --timeout duration  per-command deadline
//	-c, --config string     JSON or YAML config file
//
// File schema (durations accept "10s" or integer nanoseconds):
//
//	server_endpoint_addr: 127.0.0.1:50051
//	session_file: /home/me/.config/tasktracker/session.json
//	timeout: 10s
package config
