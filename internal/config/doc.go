// Package config loads and validates the YAML site configuration.
package config
