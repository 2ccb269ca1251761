package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line flags into a partial [StructuredConfig].
// Unset flags leave zero values, which the merge step ignores.
//
// Flags:
//
//	-a backend listen address in format [host]:[port]
//	-d database DSN (SQLite file on the client, PostgreSQL URL on the backend)
//	-c/-config json file path with configs
//	-env-file .env file path
//	-user-id user to synchronize (client)
//	-device-name, -platform device description (client)
//	-log-file client log file
//	-server backend base URL (client)
//	-token bearer token (client)
//	-token-sign-key, -token-issuer, -token-duration token settings (backend)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sync-interval background sync period (client)
//	-issue-token print a token for the given user id and exit (backend)
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("study-sync", flag.ContinueOnError)

	var (
		serverAddress  NetAddress
		cfg            StructuredConfig
		requestTimeout time.Duration
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.DotEnvPath, "env-file", "", ".env file path")
	fs.Int64Var(&cfg.App.UserID, "user-id", 0, "User to synchronize")
	fs.StringVar(&cfg.App.DeviceName, "device-name", "", "Device name sent on registration")
	fs.StringVar(&cfg.App.Platform, "platform", "", "Device platform sent on registration")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Client log file")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "server", "", "Sync backend base URL")
	fs.StringVar(&cfg.Adapter.Token, "token", "", "Bearer token for the sync backend")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&cfg.Workers.SyncInterval, "sync-interval", 0, "Background sync interval")
	fs.Int64Var(&cfg.IssueTokenFor, "issue-token", 0, "Print a token for the given user id and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.RequestTimeout = requestTimeout
	cfg.Adapter.RequestTimeout = requestTimeout

	return &cfg, nil
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
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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
