// Package config loads and validates process configuration from
// environment variables.
package config
