// Package config loads, normalizes, and validates vec3 CLI configuration.
//
// It supplies defaults, reads TOML files, and honours the VEC3_LOG_LEVEL
// environment override. Callers receive canonical log levels and formats and
// a codec name that is known to resolve.
package config
