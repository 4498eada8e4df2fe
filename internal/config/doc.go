// Package config loads processor configuration from environment
// variables (prefix CCT) and an optional YAML file. Environment values
// take precedence over the file; command-line flags, handled by the
// executables, take precedence over both.
package config
