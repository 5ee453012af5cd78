package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/handiism/gamevault/internal/download"
	"github.com/handiism/gamevault/internal/logging"
	"golang.org/x/text/language"
)

// Settings holds all configuration options.
type Settings struct {
	// Catalog settings
	PageSize        int      `json:"page_size"`
	CatalogPaths    []string `json:"catalog_paths"`
	MockItemCount   int      `json:"mock_item_count"`
	Seed            uint64   `json:"seed"` // 0 picks a random seed per run
	ReviewsPerItem  int      `json:"reviews_per_item"`
	Locale          string   `json:"locale"`
	LoadConcurrency int      `json:"load_concurrency"`

	// Contact form timing, in seconds
	ContactSendDelay  float64 `json:"contact_send_delay"`
	ContactResetDelay float64 `json:"contact_reset_delay"`

	// Simulated downloads
	DownloadSpeed          float64 `json:"download_speed"` // GB per second
	MaxConcurrentDownloads int     `json:"max_concurrent_downloads"`

	// Thumbnail previews
	PreviewWidth       int `json:"preview_width"`
	PreviewConcurrency int `json:"preview_concurrency"`

	// Logging
	LogLevel  string `json:"log_level"`  // debug, info, warn, error
	LogFormat string `json:"log_format"` // text, json
	LogFile   string `json:"log_file"`   // TUI only; the CLI logs to stderr
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		PageSize:        12,
		MockItemCount:   50,
		ReviewsPerItem:  5,
		Locale:          "es",
		LoadConcurrency: 4,

		ContactSendDelay:  2.0,
		ContactResetDelay: 3.0,

		DownloadSpeed:          2.0,
		MaxConcurrentDownloads: 2,

		PreviewWidth:       24,
		PreviewConcurrency: 4,

		LogLevel:  "info",
		LogFormat: "text",
		LogFile:   filepath.Join(os.TempDir(), "gamevault.log"),
	}
}

// DefaultPath returns the per-user settings file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "gamevault", "settings.json")
}

// Load reads settings from a JSON file. A missing file yields defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return settings, nil
}

// Resolve loads the .env file if present, reads path, applies GAMEVAULT_*
// environment overrides and validates the result.
func Resolve(path string) (*Settings, error) {
	if err := LoadEnvFile(); err != nil {
		return nil, err
	}

	settings, err := Load(path)
	if err != nil {
		return nil, err
	}
	settings.ApplyEnv()

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate reports settings that cannot be used.
func (s *Settings) Validate() error {
	var errs []error
	if s.PageSize <= 0 {
		errs = append(errs, fmt.Errorf("page_size must be positive, got %d", s.PageSize))
	}
	if s.MockItemCount < 0 {
		errs = append(errs, fmt.Errorf("mock_item_count must not be negative, got %d", s.MockItemCount))
	}
	if s.ReviewsPerItem < 0 {
		errs = append(errs, fmt.Errorf("reviews_per_item must not be negative, got %d", s.ReviewsPerItem))
	}
	if _, err := language.Parse(s.Locale); err != nil {
		errs = append(errs, fmt.Errorf("locale %q: %w", s.Locale, err))
	}
	if s.ContactSendDelay < 0 || s.ContactResetDelay < 0 {
		errs = append(errs, errors.New("contact delays must not be negative"))
	}
	if s.DownloadSpeed <= 0 {
		errs = append(errs, fmt.Errorf("download_speed must be positive, got %g", s.DownloadSpeed))
	}
	return errors.Join(errs...)
}

// Language returns the collation locale, falling back to Spanish.
func (s *Settings) Language() language.Tag {
	tag, err := language.Parse(s.Locale)
	if err != nil {
		return language.Spanish
	}
	return tag
}

// SendDelay returns the simulated contact delivery time.
func (s *Settings) SendDelay() time.Duration {
	return seconds(s.ContactSendDelay)
}

// ResetDelay returns how long the contact confirmation stays visible.
func (s *Settings) ResetDelay() time.Duration {
	return seconds(s.ContactResetDelay)
}

// ToLogConfig converts settings to a logging.Config.
func (s *Settings) ToLogConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.Level(s.LogLevel)
	cfg.Format = logging.Format(s.LogFormat)
	return cfg
}

// ToDownloadOptions converts settings to download.Options.
func (s *Settings) ToDownloadOptions() download.Options {
	return download.Options{
		Speed:       int64(s.DownloadSpeed * humanize.GByte),
		Concurrency: s.MaxConcurrentDownloads,
	}
}

func seconds(f float64) time.Duration {
	return time.Duration(f * float64(time.Second))
}
