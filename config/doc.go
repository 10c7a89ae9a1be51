// Package config loads service configuration with Viper.
//
// LoadConfig reads config.yml from the standard locations, overlays the
// process environment and an optional .env file, and unmarshals the result
// into the caller's struct. Environment variables map onto nested keys by
// splitting on underscores (OBJECTS_HASH sets objects.hash).
//
// # Usage
//
//	var cfg Config
//	err := config.Load("objectid", &cfg, config.WithConfigFile(path))
package config
