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

// parseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-session-secret session signing secret
//	-session-issuer session token issuer
//	-session-duration session lifetime (e.g., "1h")
//	-insecure-cookie drop the Secure cookie attribute
//	-hash-cost bcrypt work factor
//	-login-delay fixed login delay (e.g., "2s")
//	-max-login-attempts failures before lockout
//	-lockout-duration lockout length (e.g., "15m")
//	-min-password-entropy minimum password entropy in bits
//	-log-level log level
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-tls-cert TLS certificate file
//	-tls-key TLS private key file
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("site-vault", flag.ContinueOnError)

	var serverAddress NetAddress
	cfg := &StructuredConfig{}

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	fs.StringVar(&cfg.App.SessionSecret, "session-secret", "", "Session signing secret")
	fs.StringVar(&cfg.App.SessionIssuer, "session-issuer", "", "Session token issuer")
	fs.DurationVar(&cfg.App.SessionDuration, "session-duration", 0, "Session lifetime (e.g., 1h)")
	fs.BoolVar(&cfg.App.InsecureCookie, "insecure-cookie", false, "Drop the Secure cookie attribute")
	fs.IntVar(&cfg.App.HashCost, "hash-cost", 0, "bcrypt cost")
	fs.DurationVar(&cfg.App.LoginDelay, "login-delay", 0, "Fixed login delay (e.g., 2s)")
	fs.IntVar(&cfg.App.MaxLoginAttempts, "max-login-attempts", 0, "Failed attempts before lockout")
	fs.DurationVar(&cfg.App.LockoutDuration, "lockout-duration", 0, "Lockout length (e.g., 15m)")
	fs.Float64Var(&cfg.App.MinPasswordEntropy, "min-password-entropy", 0, "Minimum password entropy in bits")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")

	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Server.TLSCertFile, "tls-cert", "", "TLS certificate file")
	fs.StringVar(&cfg.Server.TLSKeyFile, "tls-key", "", "TLS private key file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// It returns an empty string when the address is unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be empty (all interfaces), "localhost" or an IP address.
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
		return errors.New("port number must be within 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
