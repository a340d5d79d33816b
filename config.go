package sqlclient

import (
	"time"

	"github.com/cockroachdb/errors"
)

const (
	DefaultServerAddr    = "127.0.0.0:9100"
	DefaultDialTimeout   = 5 * time.Second
	DefaultPageThreshold = 100
)

// Config holds the settings of one client process.
type Config struct {
	// ServerAddr is the host:port of the query service.
	ServerAddr string
	// DialTimeout bounds the initial dial. Zero dials lazily and defers
	// any connection failure to the first call.
	DialTimeout time.Duration

	// CSVFile switches the client to a non-interactive bulk import.
	CSVFile  string
	Database string
	Table    string

	HistoryFile string
	// PageThreshold is the number of query rows above which the user is
	// asked before printing.
	PageThreshold int
	Verbose       bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		ServerAddr:    DefaultServerAddr,
		DialTimeout:   DefaultDialTimeout,
		PageThreshold: DefaultPageThreshold,
	}
}

// Validate checks the settings that do not depend on the server. The
// server address is checked by Connect.
func (c *Config) Validate() error {
	if c.CSVFile != "" && (c.Database == "" || c.Table == "") {
		return ErrMissingImportTarget
	}
	if c.PageThreshold < 0 {
		return errors.Newf("page threshold must not be negative, got %d", c.PageThreshold)
	}
	return nil
}

// Interactive reports whether the configuration starts the REPL.
func (c *Config) Interactive() bool {
	return c.CSVFile == ""
}
