package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags from the global flag set.
// Positional arguments remain available through flag.Args.
//
// Flags:
//
//	-a router address in format [host]:[port]
//	-d database file path
//	-c/-config json file path with configs
//	-hash-key router message hash key
//	-api-url remote API base URL
//	-settings-url remote settings page URL
//	-cookies session cookies ("name=value; other=value")
//	-request-timeout remote request timeout (e.g., "30s", "1m")
//	-retry-count retries after a 429 response
//	-sync-interval periodic sync interval, 0 disables
//	-log-file log file path for interactive contexts
func ParseFlags() *StructuredConfig {
	var routerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var hashKey string
	var apiURL string
	var settingsURL string
	var cookies string
	var requestTimeout time.Duration
	var retryCount int
	var syncInterval time.Duration
	var logFile string

	flag.Var(&routerAddress, "a", "Router net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&hashKey, "hash-key", "", "Router message hash key")
	flag.StringVar(&apiURL, "api-url", "", "Remote API base URL")
	flag.StringVar(&settingsURL, "settings-url", "", "Remote settings page URL")
	flag.StringVar(&cookies, "cookies", "", "Session cookies")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 30s, 1m)")
	flag.IntVar(&retryCount, "retry-count", 0, "Retries after a 429 response")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Periodic sync interval, 0 disables")
	flag.StringVar(&logFile, "log-file", "", "Log file path")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			HashKey: hashKey,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Remote: Remote{
			APIBaseURL:     apiURL,
			SettingsURL:    settingsURL,
			SessionCookies: cookies,
			RequestTimeout: requestTimeout,
			RetryCount:     retryCount,
		},
		Router: Router{
			HTTPAddress: routerAddress.String(),
		},
		Workers:      Workers{SyncInterval: syncInterval},
		Log:          Log{FilePath: logFile},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
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
