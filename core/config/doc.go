// Package config provides configuration management for the Furniture Store.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Store: furniture store client settings (variant selection)
//   - Log: logging level and format
//
// Defaults come from the 'default' struct tags on each section and are
// overridden by environment variables (e.g. STORE_VARIANT, LOG_LEVEL).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Store.Variant)
package config
