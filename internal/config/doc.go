// Package config loads runtime configuration for the authkeep CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJSON) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// The behavioral constants of the auth core (minimum password length,
// simulated request latency, storage key names) are compile-time constants
// in their owning packages and deliberately not configurable here.
package config
