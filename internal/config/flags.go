package config

import (
	"errors"
	"flag"
	"io"
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

// parseFlags parses args into a partial config and returns the remaining
// positional arguments.
//
// Flags:
//
//	-a               server address in format [host]:[port]
//	-grpc-address    gRPC health server address in format [host]:[port]
//	-d               database DSN
//	-c / -config     JSON config file path
//	-token-sign-key  token signing key
//	-token-issuer    token issuer name
//	-hash-cost       bcrypt cost
//	-request-timeout request timeout (e.g. "30s", "1m")
//	-otlp-endpoint   OTLP/HTTP trace collector endpoint
//	-server          API base URL used by the client
//	-session         client session file
func parseFlags(args []string) (*StructuredConfig, []string, error) {
	var serverAddress, grpcServerAddress NetAddress
	var (
		databaseDSN    string
		jsonConfigPath string
		tokenSignKey   string
		tokenIssuer    string
		hashCost       int
		requestTimeout time.Duration
		otlpEndpoint   string
		apiAddress     string
		sessionDSN     string
	)

	fs := flag.NewFlagSet("go-note-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.IntVar(&hashCost, "hash-cost", 0, "bcrypt cost")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&otlpEndpoint, "otlp-endpoint", "", "OTLP/HTTP trace collector endpoint")
	fs.StringVar(&apiAddress, "server", "", "Notes API base URL")
	fs.StringVar(&sessionDSN, "session", "", "Client session file")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:     tokenSignKey,
			TokenIssuer:      tokenIssuer,
			PasswordHashCost: hashCost,
		},
		Storage: Storage{
			DB: DBConfig{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Telemetry: Telemetry{
			OTLPEndpoint: otlpEndpoint,
		},
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			RequestTimeout: requestTimeout,
		},
		Client: Client{
			SessionDSN: sessionDSN,
		},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}

// String returns a canonical host:port string for a NetAddress, or "" if
// nothing was set.
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
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
