package config

import (
	"errors"
	"time"
)

var (
	ErrInvalidInterval    = errors.New("bucket interval must be greater than 0")
	ErrInvalidHistorySize = errors.New("history size must be at least 1")
	ErrInvalidPrecision   = errors.New("display precision must not be negative")
	ErrInvalidReportEvery = errors.New("report interval must be greater than 0")
	ErrInvalidSeparators  = errors.New("decimal and group separators must be distinct single characters")
)

// Config holds all application configuration
type Config struct {
	Watch   WatchConfig   `json:"watch"`
	Display DisplayConfig `json:"display"`
}

// WatchConfig holds transfer-rate tracking configuration
type WatchConfig struct {
	Interval    time.Duration `json:"interval"`     // rate bucket length
	HistorySize int           `json:"history_size"` // closed-bucket rates kept
	ReportEvery time.Duration `json:"report_every"` // console stats refresh
}

// DisplayConfig holds size formatting and parsing configuration
type DisplayConfig struct {
	Precision   int    `json:"precision"`    // decimal places in size strings
	DecimalSep  string `json:"decimal_sep"`  // decimal separator for parsing
	GroupSep    string `json:"group_sep"`    // thousands separator for parsing
	ShowSummary bool   `json:"show_summary"` // print final summary block
	RecentRates bool   `json:"recent_rates"` // include bucket history in summary
}

// NewDefaultConfig returns a configuration with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Watch: WatchConfig{
			Interval:    time.Second,
			HistorySize: 10,
			ReportEvery: 500 * time.Millisecond,
		},
		Display: DisplayConfig{
			Precision:   1,
			DecimalSep:  ".",
			GroupSep:    ",",
			ShowSummary: true,
			RecentRates: false,
		},
	}
}

// Validate ensures the configuration is valid
func (c *Config) Validate() error {
	if c.Watch.Interval <= 0 {
		return ErrInvalidInterval
	}
	if c.Watch.HistorySize < 1 {
		return ErrInvalidHistorySize
	}
	if c.Watch.ReportEvery <= 0 {
		return ErrInvalidReportEvery
	}
	if c.Display.Precision < 0 {
		return ErrInvalidPrecision
	}
	if len(c.Display.DecimalSep) != 1 || len(c.Display.GroupSep) != 1 ||
		c.Display.DecimalSep == c.Display.GroupSep {
		return ErrInvalidSeparators
	}
	return nil
}

// Separators returns the configured decimal and group separator runes.
func (c *Config) Separators() (decimal, group rune) {
	return rune(c.Display.DecimalSep[0]), rune(c.Display.GroupSep[0])
}
