package config

import (
	"fmt"
	"strconv"
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

// ValidationErrors collects every problem found in a Config.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "\n")
}

// minProductionSecret is the shortest JWT secret accepted in production.
const minProductionSecret = 32

// ValidateConfig checks cfg and returns ValidationErrors listing every
// invalid field.
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors
	add := func(field, msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg})
	}

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		add("SERVER_PORT", "must be a port number")
	}

	switch cfg.DBDriver {
	case DriverPostgres:
		if cfg.DBHost == "" {
			add("DB_HOST", "is required for postgres")
		}
		if cfg.DBName == "" {
			add("DB_NAME", "is required for postgres")
		}
		if cfg.DBUser == "" {
			add("DB_USER", "is required for postgres")
		}
		if cfg.Environment == Production && cfg.DBPassword == "" {
			add("db_password", "secret is required in production")
		}
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			add("SQLITE_PATH", "is required for sqlite")
		}
	default:
		add("DB_DRIVER", fmt.Sprintf("unsupported driver %q", cfg.DBDriver))
	}

	switch {
	case cfg.JWTSecret == "":
		add("jwt_secret", "secret is required")
	case cfg.Environment == Production && len(cfg.JWTSecret) < minProductionSecret:
		add("jwt_secret", fmt.Sprintf("must be at least %d characters in production", minProductionSecret))
	}

	if cfg.Seed.Servings < 1 {
		add("SEED_SERVINGS", "must be positive")
	}
	if !singleNameVerb(cfg.Seed.DescriptionFormat) {
		add("SEED_DESCRIPTION_FORMAT", "must contain exactly one %s and no other verbs (write % as %%)")
	}
	if !singleNameVerb(cfg.Seed.InstructionsFormat) {
		add("SEED_INSTRUCTIONS_FORMAT", "must contain exactly one %s and no other verbs (write % as %%)")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// singleNameVerb reports whether format has exactly one %s and every other
// percent sign is escaped as %%.
func singleNameVerb(format string) bool {
	rest := strings.ReplaceAll(format, "%%", "")
	if strings.Count(rest, "%s") != 1 {
		return false
	}
	return !strings.Contains(strings.Replace(rest, "%s", "", 1), "%")
}
