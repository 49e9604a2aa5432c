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

// ParseFlags parses server configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc health address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-master-key base64 master key
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-query-timeout store operation timeout
//	-max-upload-size upload limit in bytes
//	-link-policy multi-use or single-use
//	-allow-permanent-links accept share links without expiration
//	-reap-interval expiration reaper cadence
//	-keep-orphan-files do not delete files left without links
//	-log-level zerolog level name
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var masterKey string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var queryTimeout time.Duration
	var maxUploadSize int64
	var linkPolicy string
	var allowPermanentLinks bool
	var reapInterval time.Duration
	var keepOrphanFiles bool
	var logLevel string

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&masterKey, "master-key", "", "Base64 master key (32 bytes)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&queryTimeout, "query-timeout", 0, "Store operation timeout")
	fs.Int64Var(&maxUploadSize, "max-upload-size", 0, "Upload limit in bytes")
	fs.StringVar(&linkPolicy, "link-policy", "", "Share link policy: multi-use or single-use")
	fs.BoolVar(&allowPermanentLinks, "allow-permanent-links", false, "Allow share links without expiration")
	fs.DurationVar(&reapInterval, "reap-interval", 0, "Expiration reaper interval")
	fs.BoolVar(&keepOrphanFiles, "keep-orphan-files", false, "Keep files whose last link was purged")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			MasterKey:           masterKey,
			TokenSignKey:        tokenSignKey,
			TokenIssuer:         tokenIssuer,
			TokenDuration:       tokenDuration,
			LinkPolicy:          linkPolicy,
			AllowPermanentLinks: allowPermanentLinks,
			LogLevel:            logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:          databaseDSN,
				QueryTimeout: queryTimeout,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
			MaxUploadSize:  maxUploadSize,
		},
		Workers: Workers{
			ReapInterval:    reapInterval,
			KeepOrphanFiles: keepOrphanFiles,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
