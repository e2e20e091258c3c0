// Package config loads the gateway's YAML configuration. Values of the
// form ${VAR} are expanded from the environment before parsing, which
// keeps API keys and secrets out of the file itself.
package config
