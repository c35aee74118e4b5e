// Package config loads, normalizes, and validates sceneline configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and derives the workspace layout from a single
// root directory. The Config type centralizes every knob the CLI needs, so
// manifest, source, and output locations are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized absolute paths and clear validation errors.
package config
