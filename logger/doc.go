// Package logger provides structured logging on top of zerolog.
//
// It supports JSON and console output, level configuration and
// component-scoped loggers with map-based fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("registry")
//	log.Info("registry loaded", logger.Fields("types", 2))
package logger
