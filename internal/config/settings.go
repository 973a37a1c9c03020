package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/academia-admin/academia/internal/logging"
	"github.com/academia-admin/academia/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyAPIBaseURL       = "api_base_url"
	KeyRequestTimeout   = "request_timeout_seconds"
	KeyLanguage         = "app_language"
	KeyRefetchAfterSave = "refetch_after_save"
	KeyLogLevel         = "log_level"
)

// Default values
const (
	DefaultRequestTimeout   = 0 // seconds, 0 leaves the transport default
	MaxRequestTimeout       = 300
	DefaultLanguage         = "system"
	DefaultRefetchAfterSave = false
	DefaultLogLevel         = logging.DefaultLevel
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAPIBaseURL returns the configured backend address
func (s *Settings) GetAPIBaseURL() string {
	url := s.app.Preferences().String(KeyAPIBaseURL)
	if url == "" {
		url = platform.DefaultAPIBaseURL()
		s.SetAPIBaseURL(url)
	}
	return url
}

// SetAPIBaseURL sets the backend address
func (s *Settings) SetAPIBaseURL(url string) {
	s.app.Preferences().SetString(KeyAPIBaseURL, url)
}

// GetRequestTimeoutSeconds returns the request timeout in seconds, 0 for none
func (s *Settings) GetRequestTimeoutSeconds() int {
	value := s.app.Preferences().IntWithFallback(KeyRequestTimeout, DefaultRequestTimeout)
	if value < 0 {
		s.SetRequestTimeoutSeconds(DefaultRequestTimeout)
		return DefaultRequestTimeout
	}
	return value
}

// SetRequestTimeoutSeconds sets the request timeout in seconds
func (s *Settings) SetRequestTimeoutSeconds(seconds int) {
	if seconds < 0 {
		seconds = 0
	}
	if seconds > MaxRequestTimeout {
		seconds = MaxRequestTimeout
	}
	s.app.Preferences().SetInt(KeyRequestTimeout, seconds)
}

// GetRequestTimeout returns the request timeout as a duration
func (s *Settings) GetRequestTimeout() time.Duration {
	return time.Duration(s.GetRequestTimeoutSeconds()) * time.Second
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetRefetchAfterSave returns whether lists reload after a form saved
func (s *Settings) GetRefetchAfterSave() bool {
	return s.app.Preferences().BoolWithFallback(KeyRefetchAfterSave, DefaultRefetchAfterSave)
}

// SetRefetchAfterSave sets whether lists reload after a form saved
func (s *Settings) SetRefetchAfterSave(refetch bool) {
	s.app.Preferences().SetBool(KeyRefetchAfterSave, refetch)
}

// GetLogLevel returns the configured log level
func (s *Settings) GetLogLevel() string {
	level := s.app.Preferences().String(KeyLogLevel)
	if _, err := logging.ParseLevel(level); level == "" || err != nil {
		s.SetLogLevel(DefaultLogLevel)
		return DefaultLogLevel
	}
	return level
}

// SetLogLevel sets the log level
func (s *Settings) SetLogLevel(level string) {
	s.app.Preferences().SetString(KeyLogLevel, level)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "Predeterminado del sistema",
		"es":     "Español",
		"en":     "English",
	}
}

// GetLogLevelOptions returns the selectable log levels
func (s *Settings) GetLogLevelOptions() []string {
	return []string{"debug", "info", "warn", "error"}
}
