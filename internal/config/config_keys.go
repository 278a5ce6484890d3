// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic. This separation allows config.go to focus on YAML structure
// and loading, while this file handles the MCP and CLI interface where config
// is accessed by string keys (e.g., "http.proxy").
//
// Design: Pointers are used for optional fields so we can distinguish between
// "not set" (nil) and "explicitly set to zero/false". This enables proper
// defaulting - we only apply defaults when the user hasn't set a value.
//
// The formatters list is structured YAML and is not reachable through
// string keys; users edit it in the config file directly.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"http.proxy", "http.strict_ssl",
		"ssms.url", "ssms.dir",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "http.proxy":
		return c.HTTP.Proxy, nil
	case "http.strict_ssl":
		return strconv.FormatBool(c.StrictSSL()), nil
	case "ssms.url":
		return c.SSMS.URL, nil
	case "ssms.dir":
		return c.SSMS.Dir, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "http.proxy":
		c.HTTP.Proxy = value
	case "http.strict_ssl":
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: http.strict_ssl must be true or false", ErrInvalidValue)
		}
		b := v == "true"
		c.HTTP.StrictSSL = &b
	case "ssms.url":
		c.SSMS.URL = value
	case "ssms.dir":
		c.SSMS.Dir = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"http.proxy":      c.HTTP.Proxy,
		"http.strict_ssl": strconv.FormatBool(c.StrictSSL()),
		"ssms.url":        c.SSMS.URL,
		"ssms.dir":        c.SSMS.Dir,
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "http.proxy":
		return c.HTTP.Proxy != ""
	case "http.strict_ssl":
		return c.HTTP.StrictSSL != nil
	case "ssms.url":
		return c.SSMS.URL != ""
	case "ssms.dir":
		return c.SSMS.Dir != ""
	default:
		return false
	}
}
