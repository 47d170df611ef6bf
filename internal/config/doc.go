// Package config loads, normalizes, and validates ROMShelf configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads an optional TOML file. Command-line flags override
// whatever the file provides; a missing file simply means defaults.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
