// Package config provides configuration management for gamevault.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - GAMEVAULT_* environment overrides, including a .env file
//   - Conversion to the locale, delays and logging.Config used elsewhere
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// 12 items per page, 50 mock items, 5 reviews per detail view
//	// Spanish collation, 2s contact delivery, 3s confirmation
//
// # Loading
//
// Resolve is the usual entry point. It loads .env, reads the settings
// file (defaults if it does not exist), then applies the environment:
//
//	settings, err := config.Resolve(config.DefaultPath())
//
// # Environment
//
//	GAMEVAULT_PAGE_SIZE=24
//	GAMEVAULT_CATALOG=games.yaml:extra.json   # os.PathListSeparator
//	GAMEVAULT_SEED=42
//	GAMEVAULT_LOG_LEVEL=debug
package config
