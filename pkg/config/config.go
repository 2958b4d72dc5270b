// Package config provides configuration management for splitledger.
// It loads configuration from environment variables and .env files.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config represents the application configuration.
type Config struct {
	Ledger   LedgerConfig
	LogLevel string
	Debug    bool
}

// LedgerConfig represents ledger storage configuration.
type LedgerConfig struct {
	Root            string
	DBPath          string
	MappingFile     string
	DefaultCurrency string
}

// Load loads configuration from environment variables.
// It automatically loads .env file from the current directory if available.
// You can optionally specify a custom .env file path.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// A missing .env in the working directory is fine
		_ = godotenv.Load()
	}

	config := &Config{
		Ledger: LedgerConfig{
			Root:            getEnvOrDefault("SPLITLEDGER_ROOT", "./ledger"),
			DBPath:          os.Getenv("SPLITLEDGER_DB_PATH"),
			MappingFile:     getEnvOrDefault("SPLITLEDGER_MAPPING_FILE", "config/account-mapping.yaml"),
			DefaultCurrency: strings.ToUpper(getEnvOrDefault("SPLITLEDGER_CURRENCY", "USD")),
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
		Debug:    os.Getenv("DEBUG") == "true",
	}

	return config, nil
}

// Validate validates the configuration.
// Each argument is a path such as []string{"ledger", "root"}.
func (c *Config) Validate(required ...[]string) error {
	var missing []string

	for _, path := range required {
		if len(path) < 2 {
			continue
		}

		var value string
		switch path[0] {
		case "ledger":
			switch path[1] {
			case "root":
				value = c.Ledger.Root
			case "dbPath":
				value = c.Ledger.DBPath
			case "mappingFile":
				value = c.Ledger.MappingFile
			case "currency":
				value = c.Ledger.DefaultCurrency
			}
		case "log":
			if path[1] == "level" {
				value = c.LogLevel
			}
		}

		if value == "" {
			missing = append(missing, strings.Join(path, "."))
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %v\nPlease check your .env file or environment variables", missing)
	}

	return nil
}

// getEnvOrDefault returns the value of the environment variable or a default value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
