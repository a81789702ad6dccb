package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks the configuration against the requirements of the
// current environment. Development and test tolerate missing credentials
// so local runs and unit tests work without a secrets mount; production
// and CI do not.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.ServerPort == "" {
		errors = append(errors, "server port is required")
	}
	if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBName == "" {
		errors = append(errors, "database host, port and name are required")
	}

	env := GetEnvironment()
	if env == Production || env == CI {
		if cfg.DBPassword == "" {
			errors = append(errors, "database password is required")
		}
		if cfg.JWTSecret == "" {
			errors = append(errors, "jwt secret is required")
		}
		if cfg.GenerationAPIKey == "" {
			errors = append(errors, "generation api key is required")
		}
		if cfg.StripeSecretKey == "" {
			errors = append(errors, "stripe secret key is required")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}

	return nil
}
