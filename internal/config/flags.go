package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line arguments into a partial config.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver (pgx or sqlite3)
//	-c/-config json file path with configs
//	-token-sign-key session token signing key
//	-token-issuer session token issuer name
//	-session-ttl data key lifetime (e.g. "12h")
//	-log-level zerolog level name
//	-request-timeout request timeout (e.g. "30s")
//	-delete-policy note delete policy (soft or retain)
//	-session-sweep-interval expired session sweep interval (e.g. "1m")
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-note-keeper", flag.ContinueOnError)

	var serverAddress NetAddress
	cfg := new(StructuredConfig)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "Database driver: pgx or sqlite3")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Session token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Session token issuer")
	fs.DurationVar(&cfg.App.SessionTTL, "session-ttl", 0, "Data key lifetime (e.g., 12h)")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Notes.DeletePolicy, "delete-policy", "", "Note delete policy: soft or retain")
	fs.DurationVar(&cfg.Workers.SessionSweepInterval, "session-sweep-interval", 0, "Expired session sweep interval")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost" or empty.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

