// Package config loads, normalizes, and validates studytrack configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob the
// CLI needs: data and log directories, the course catalog location, ntfy
// notification settings, and the seed values for a fresh learner settings
// record.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
