// Package config loads the optional YAML file that supplies
// defaults for the dirdigest CLI. Command-line flags and
// positional arguments override every value it sets.
package config
