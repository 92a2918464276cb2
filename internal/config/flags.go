// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
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

// ParseFlags parses the process command line.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-s client server address in format [host]:[port] or URL
//	-d database DSN
//	-l local SQLite database path
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-hash-key upload integrity hash key
//	-log-level zerolog level
//	-log-file client log file
//	-login / -password / -name / -register account credentials
//	-metrics expose /metrics on the server
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("fit-keeper", flag.ContinueOnError)

	var serverAddress NetAddress
	var adapterAddress string
	var databaseDSN string
	var localPath string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var hashKey string
	var logLevel string
	var logFile string
	var login, password, name string
	var register bool
	var metrics bool

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&adapterAddress, "s", "", "Server address used by the client")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&localPath, "l", "", "Local database path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&hashKey, "hash-key", "", "Upload integrity hash key")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.StringVar(&login, "login", "", "Account login")
	fs.StringVar(&password, "password", "", "Account password")
	fs.StringVar(&name, "name", "", "Account display name")
	fs.BoolVar(&register, "register", false, "Register the account before signing in")
	fs.BoolVar(&metrics, "metrics", false, "Expose /metrics")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			HashKey:       hashKey,
			LogLevel:      logLevel,
			LogFile:       logFile,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Local: Local{Path: localPath},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			MetricsEnabled: metrics,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Account: Account{
			Login:    login,
			Password: password,
			Name:     name,
			Register: register,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost".
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
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
