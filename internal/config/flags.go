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

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc health server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-hash-key anti-forgery hash key
//	-token-sign-key session signing key
//	-token-issuer session issuer name
//	-session-duration session duration (e.g., "24h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-themes comma separated theme names
//	-languages comma separated language tags
//	-mail-from default notification sender
//	-base-url public site address
//	-mail-relay mail relay URL
//	-mail-api-key mail relay API key
//	-cleanup-months default inactivity threshold in months
//	-actor administrator account used by the admin CLI
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-tree-admin", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var hashKey string
	var tokenSignKey string
	var tokenIssuer string
	var sessionDuration time.Duration
	var requestTimeout time.Duration
	var themes, languages string
	var mailFrom, mailRelay, mailAPIKey string
	var baseURL string
	var cleanupMonths int
	var actor string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc health server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&hashKey, "hash-key", "", "Anti-forgery hash key")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Session signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Session issuer")
	fs.DurationVar(&sessionDuration, "session-duration", 0, "Session duration (e.g., 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&themes, "themes", "", "Comma separated themes")
	fs.StringVar(&languages, "languages", "", "Comma separated language tags")
	fs.StringVar(&mailFrom, "mail-from", "", "Default notification sender")
	fs.StringVar(&baseURL, "base-url", "", "Public site address")
	fs.StringVar(&mailRelay, "mail-relay", "", "Mail relay URL")
	fs.StringVar(&mailAPIKey, "mail-api-key", "", "Mail relay API key")
	fs.IntVar(&cleanupMonths, "cleanup-months", 0, "Default inactivity threshold in months")
	fs.StringVar(&actor, "actor", "", "Administrator account used by the admin CLI")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			HashKey:         hashKey,
			TokenSignKey:    tokenSignKey,
			TokenIssuer:     tokenIssuer,
			SessionDuration: sessionDuration,
			Themes:          splitList(themes),
			Languages:       splitList(languages),
			MailFrom:        mailFrom,
			BaseURL:         baseURL,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Mail: Mail{
			RelayURL: mailRelay,
			APIKey:   mailAPIKey,
		},
		Cleanup: Cleanup{
			Months: cleanupMonths,
			Actor:  actor,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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
		return errors.New("port number must be between 1 and 65535")
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
