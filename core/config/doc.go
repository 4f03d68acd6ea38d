// Package config provides configuration management for Search Sync.
//
// It utilizes Viper for loading configuration from environment variables and
// a local .env file (development convenience).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: webhook HTTP server settings (port)
//   - Webflow: CMS API credentials and collection identifiers
//   - Publish: local path and GitHub publish target
//   - Webhook: receiver secret and dispatch target
//   - Storage: optional S3/MinIO mirror
//   - Schedule: optional in-process rebuild schedule
//   - Log: logging level and format
//
// # Validation
//
// Each entry point validates only the sections it needs, and all missing
// required keys are collected into one MissingKeysError up front. A required
// option is never silently defaulted.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := config.Require(cfg.Webflow.MissingKeys()); err != nil {
//	    log.Fatal(err)
//	}
package config
