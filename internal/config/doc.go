// Package config loads and validates scorepipe configuration.
//
// Every value has a default, so a config file is optional. A TOML file may override any
// subset of the defaults; unknown keys are rejected so typos do not pass silently.
package config
