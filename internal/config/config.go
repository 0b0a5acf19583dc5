// Package config loads axtree settings from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
)

// TransportType represents the MCP transport type
type TransportType string

const (
	// TransportStdio uses stdin/stdout for communication
	TransportStdio TransportType = "stdio"
	// TransportHTTP serves the streamable HTTP transport
	TransportHTTP TransportType = "streamable-http"
)

// Config holds the settings shared by every command.
type Config struct {
	// Format is json, yaml, text, or auto.
	Format   string
	MaxDepth int
	Prompt   bool

	LogLevel  string
	LogFormat string

	Transport TransportType
	MCPPort   int
	// MCPRate is tool calls per second; 0 disables limiting.
	MCPRate int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	maxDepth, err := getEnvAsInt("AXTREE_MAX_DEPTH", 256)
	if err != nil {
		return nil, err
	}
	port, err := getEnvAsInt("AXTREE_MCP_PORT", 8080)
	if err != nil {
		return nil, err
	}
	rate, err := getEnvAsInt("AXTREE_MCP_RATE", 10)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Format:    strings.ToLower(getEnv("AXTREE_FORMAT", "auto")),
		MaxDepth:  maxDepth,
		Prompt:    getEnvAsBool("AXTREE_PROMPT", true),
		LogLevel:  strings.ToLower(getEnv("AXTREE_LOG_LEVEL", "warn")),
		LogFormat: strings.ToLower(getEnv("AXTREE_LOG_FORMAT", "text")),
		Transport: TransportType(getEnv("AXTREE_MCP_TRANSPORT", string(TransportStdio))),
		MCPPort:   port,
		MCPRate:   rate,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that flags may have overridden after Load.
func (c *Config) Validate() error {
	switch c.Format {
	case "auto", "json", "yaml", "text":
	default:
		return fmt.Errorf("invalid format: %s (must be 'json', 'yaml', 'text' or 'auto')", c.Format)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("invalid max depth: %d (must be >= 0)", c.MaxDepth)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (must be 'debug', 'info', 'warn' or 'error')", c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", c.LogFormat)
	}
	if c.Transport != TransportStdio && c.Transport != TransportHTTP {
		return fmt.Errorf("invalid transport type: %s (must be 'stdio' or 'streamable-http')", c.Transport)
	}
	if c.MCPPort <= 0 || c.MCPPort > 65535 {
		return fmt.Errorf("invalid MCP port: %d", c.MCPPort)
	}
	if c.MCPRate < 0 {
		return fmt.Errorf("invalid MCP rate: %d (must be >= 0)", c.MCPRate)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	var result int
	_, err := fmt.Sscanf(value, "%d", &result)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q (expected integer)", key, value)
	}
	return result, nil
}
