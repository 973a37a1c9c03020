package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/academia-admin/academia/internal/logging"
	"github.com/academia-admin/academia/internal/platform"
)

// Environment overrides for the command-line configuration
const (
	EnvAPIURL         = "ACADEMIA_API_URL"
	EnvLogLevel       = "ACADEMIA_LOG_LEVEL"
	EnvRequestTimeout = "ACADEMIA_REQUEST_TIMEOUT"
)

// File is the YAML configuration read by the command-line tool.
type File struct {
	APIURL           string `yaml:"api_url" json:"api_url"`
	RequestTimeout   string `yaml:"request_timeout,omitempty" json:"request_timeout,omitempty"` // Go duration, e.g. "30s"
	LogLevel         string `yaml:"log_level" json:"log_level"`
	RefetchAfterSave bool   `yaml:"refetch_after_save,omitempty" json:"refetch_after_save,omitempty"`
}

// DefaultFile returns the configuration used when no file exists.
func DefaultFile() *File {
	return &File{
		APIURL:   platform.LocalAPIBaseURL,
		LogLevel: logging.DefaultLevel,
	}
}

// LoadFile reads path and applies environment overrides. A missing file
// yields the defaults.
func LoadFile(path string) (*File, error) {
	cfg := DefaultFile()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *File) applyEnvOverrides() {
	if url := os.Getenv(EnvAPIURL); url != "" {
		c.APIURL = url
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
	if timeout := os.Getenv(EnvRequestTimeout); timeout != "" {
		c.RequestTimeout = timeout
	}
}

// Validate checks the level and timeout values.
func (c *File) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := c.Timeout(); err != nil {
		return err
	}
	return nil
}

// Timeout parses RequestTimeout. Empty means no timeout; a bare number is
// read as seconds.
func (c *File) Timeout() (time.Duration, error) {
	if c.RequestTimeout == "" {
		return 0, nil
	}
	if seconds, err := strconv.Atoi(c.RequestTimeout); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid request timeout %q", c.RequestTimeout)
	}
	return d, nil
}

// Save writes the configuration as YAML to path.
func (c *File) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return platform.WriteFile(path, data)
}
