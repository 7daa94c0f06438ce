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

// ParseFlags parses all configuration flags from args using fs.
//
// Flags:
//
//	-a API server address in format [host]:[port]
//	-web-address web service address in format [host]:[port]
//	-api-url base URL of the API used by the web service
//	-api-token shared API bearer token
//	-env environment label
//	-log-level log level (debug, info, warn, error)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress, webAddress NetAddress
	var apiURL string
	var apiToken string
	var environment string
	var logLevel string
	var requestTimeout time.Duration
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&webAddress, "web-address", "Web service net address host:port")
	fs.StringVar(&apiURL, "api-url", "", "API base URL used by the web service")
	fs.StringVar(&apiToken, "api-token", "", "Shared API bearer token")
	fs.StringVar(&environment, "env", "", "Environment label")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Environment: environment,
			LogLevel:    logLevel,
			APIToken:    apiToken,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Web: Web{
			HTTPAddress: webAddress.String(),
			APIURL:      apiURL,
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
