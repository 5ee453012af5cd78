package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables overriding file settings.
const (
	EnvPageSize      = "GAMEVAULT_PAGE_SIZE"
	EnvCatalog       = "GAMEVAULT_CATALOG"
	EnvMockCount     = "GAMEVAULT_MOCK_COUNT"
	EnvSeed          = "GAMEVAULT_SEED"
	EnvReviews       = "GAMEVAULT_REVIEWS"
	EnvLocale        = "GAMEVAULT_LOCALE"
	EnvSendDelay     = "GAMEVAULT_CONTACT_DELAY"
	EnvResetDelay    = "GAMEVAULT_CONTACT_RESET_DELAY"
	EnvDownloadSpeed = "GAMEVAULT_DOWNLOAD_SPEED"
	EnvPreviewWidth  = "GAMEVAULT_PREVIEW_WIDTH"
	EnvLogLevel      = "GAMEVAULT_LOG_LEVEL"
	EnvLogFormat     = "GAMEVAULT_LOG_FORMAT"
	EnvLogFile       = "GAMEVAULT_LOG_FILE"
)

// LoadEnvFile loads variables from .env files (default ".env") without
// overriding variables already set. Missing files are ignored.
func LoadEnvFile(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// ApplyEnv overrides settings from GAMEVAULT_* variables. Malformed
// numbers are ignored.
func (s *Settings) ApplyEnv() {
	s.PageSize = getIntEnv(EnvPageSize, s.PageSize)
	s.CatalogPaths = getPathListEnv(EnvCatalog, s.CatalogPaths)
	s.MockItemCount = getIntEnv(EnvMockCount, s.MockItemCount)
	s.Seed = getUintEnv(EnvSeed, s.Seed)
	s.ReviewsPerItem = getIntEnv(EnvReviews, s.ReviewsPerItem)
	s.Locale = getEnv(EnvLocale, s.Locale)
	s.ContactSendDelay = getFloatEnv(EnvSendDelay, s.ContactSendDelay)
	s.ContactResetDelay = getFloatEnv(EnvResetDelay, s.ContactResetDelay)
	s.DownloadSpeed = getFloatEnv(EnvDownloadSpeed, s.DownloadSpeed)
	s.PreviewWidth = getIntEnv(EnvPreviewWidth, s.PreviewWidth)
	s.LogLevel = getEnv(EnvLogLevel, s.LogLevel)
	s.LogFormat = getEnv(EnvLogFormat, s.LogFormat)
	s.LogFile = getEnv(EnvLogFile, s.LogFile)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getUintEnv(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if u, err := strconv.ParseUint(value, 10, 64); err == nil {
			return u
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getPathListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var paths []string
	for _, p := range filepath.SplitList(value) {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
