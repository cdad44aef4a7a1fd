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

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a recommendation backend base URL
//	-listen stub server address in format [host]:[port]
//	-d SQLite database file
//	-c/-config json file path with configs
//	-log log file path
//	-log-level log level
//	-no-stream use the bulk endpoint instead of the event stream
//	-save-history post finished recommendations to the backend history
//	-history-limit number of restored conversation messages
//	-bulk-timeout bulk recommendation deadline (e.g. "5m")
//	-chat-timeout chat deadline (e.g. "35s")
//	-health-timeout health probe deadline (e.g. "5s")
//	-health-interval health probe interval (e.g. "30s")
//	-frame-delay pause between stub stream frames (e.g. "300ms")
func ParseFlags(args []string) (*StructuredConfig, error) {
	var listenAddress NetAddress
	var adapterAddress string
	var databaseDSN string
	var jsonConfigPath string
	var logFile, logLevel string
	var disableStreaming, saveHistory bool
	var historyLimit int
	var bulkTimeout, chatTimeout, healthTimeout time.Duration
	var healthInterval, frameDelay time.Duration

	fs := flag.NewFlagSet("reco-chat", flag.ContinueOnError)
	fs.StringVar(&adapterAddress, "a", "", "Recommendation backend base URL")
	fs.Var(&listenAddress, "listen", "Stub server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "SQLite database file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logFile, "log", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.BoolVar(&disableStreaming, "no-stream", false, "Use the bulk endpoint")
	fs.BoolVar(&saveHistory, "save-history", false, "Post finished recommendations to the backend history")
	fs.IntVar(&historyLimit, "history-limit", 0, "Number of restored conversation messages")
	fs.DurationVar(&bulkTimeout, "bulk-timeout", 0, "Bulk recommendation deadline (e.g., 5m)")
	fs.DurationVar(&chatTimeout, "chat-timeout", 0, "Chat deadline (e.g., 35s)")
	fs.DurationVar(&healthTimeout, "health-timeout", 0, "Health probe deadline (e.g., 5s)")
	fs.DurationVar(&healthInterval, "health-interval", 0, "Health probe interval (e.g., 30s)")
	fs.DurationVar(&frameDelay, "frame-delay", 0, "Pause between stub stream frames (e.g., 300ms)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			DisableStreaming:  disableStreaming,
			SaveRemoteHistory: saveHistory,
			HistoryLimit:      historyLimit,
		},
		Adapter: Adapter{
			HTTPAddress:   adapterAddress,
			BulkTimeout:   bulkTimeout,
			ChatTimeout:   chatTimeout,
			HealthTimeout: healthTimeout,
		},
		Storage: Storage{DB: DB{DSN: databaseDSN}},
		Workers: Workers{HealthInterval: healthInterval},
		Log:     Log{File: logFile, Level: logLevel},
		Server: Server{
			HTTPAddress: listenAddress.String(),
			FrameDelay:  frameDelay,
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
