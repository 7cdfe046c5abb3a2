package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error with context.
type ValidationError struct {
	Field   string
	Message string
	Hint    string
}

func (e ValidationError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s (hint: %s)", e.Field, e.Message, e.Hint)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Field   string
	Message string
	Hint    string
}

// ValidationResult contains the results of configuration validation.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// Error returns a combined error message if there are validation errors.
func (r *ValidationResult) Error() string {
	if !r.HasErrors() {
		return ""
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the configuration and returns both errors (fatal) and
// warnings (non-fatal issues).
func (c *Config) Validate() *ValidationResult {
	result := &ValidationResult{}
	c.Database.validate(result)
	c.Server.validate(result)
	c.Observability.validate(result)
	return result
}

func (d *DatabaseConfig) validate(result *ValidationResult) {
	if _, err := d.EffectiveDatabaseName(); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "database.database",
			Message: err.Error(),
		})
	}
	if d.ConnectionString == "" {
		if d.Host == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "database.host",
				Message: "host cannot be empty",
			})
		}
		if d.Port < 1 || d.Port > 65535 {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "database.port",
				Message: fmt.Sprintf("port %d is out of valid range (1-65535)", d.Port),
			})
		}
		if d.User == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "database.user",
				Message: "user cannot be empty",
			})
		}
		if d.Password == "" && !d.PasswordPrompt {
			result.Warnings = append(result.Warnings, ValidationWarning{
				Field:   "database.password",
				Message: "no password configured",
				Hint:    "set database.password, database.password_file, or database.password_prompt",
			})
		}
	}
	if d.Pool.MaxIdle > d.Pool.MaxOpen {
		result.Warnings = append(result.Warnings, ValidationWarning{
			Field:   "database.pool.max_idle",
			Message: fmt.Sprintf("max_idle (%d) exceeds max_open (%d); extra idle connections are never kept", d.Pool.MaxIdle, d.Pool.MaxOpen),
		})
	}
}

func (s *ServerConfig) validate(result *ValidationResult) {
	if s.Port < 1 || s.Port > 65535 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "server.port",
			Message: fmt.Sprintf("port %d is out of valid range (1-65535)", s.Port),
		})
	}

	p := s.Pagination
	if p.DefaultPageSize < 1 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "server.pagination.default_page_size",
			Message: "must be at least 1",
		})
	}
	if p.DefaultFirst < 1 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "server.pagination.default_first",
			Message: "must be at least 1",
		})
	}
	if p.MaxPageSize > 0 && p.DefaultPageSize > p.MaxPageSize {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "server.pagination.default_page_size",
			Message: fmt.Sprintf("default (%d) exceeds max_page_size (%d)", p.DefaultPageSize, p.MaxPageSize),
		})
	}
	if p.MaxFirst > 0 && p.DefaultFirst > p.MaxFirst {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "server.pagination.default_first",
			Message: fmt.Sprintf("default (%d) exceeds max_first (%d)", p.DefaultFirst, p.MaxFirst),
		})
	}

	if s.Admin.SeedEnabled && s.Admin.AuthToken == "" && s.Admin.AuthTokenFile == "" && s.Admin.JWTSecret == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "server.admin.auth_token",
			Message: "admin seed endpoint is enabled without authentication",
			Hint:    "set server.admin.auth_token, server.admin.auth_token_file, or server.admin.jwt_secret",
		})
	}

	if s.CORSEnabled && len(s.CORSAllowedOrigins) == 0 {
		result.Warnings = append(result.Warnings, ValidationWarning{
			Field:   "server.cors_allowed_origins",
			Message: "CORS is enabled but no origins are allowed; all cross-origin requests will be rejected",
		})
	}
	if s.CORSAllowCredentials {
		for _, origin := range s.CORSAllowedOrigins {
			if origin == "*" {
				result.Errors = append(result.Errors, ValidationError{
					Field:   "server.cors_allowed_origins",
					Message: "wildcard origin cannot be combined with allow_credentials",
				})
				break
			}
		}
	}
}

func (o *ObservabilityConfig) validate(result *ValidationResult) {
	switch strings.ToLower(o.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "observability.logging.level",
			Message: fmt.Sprintf("unknown level %q", o.Logging.Level),
			Hint:    "use debug, info, warn, or error",
		})
	}
	switch strings.ToLower(o.Logging.Format) {
	case "json", "text":
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "observability.logging.format",
			Message: fmt.Sprintf("unknown format %q", o.Logging.Format),
			Hint:    "use json or text",
		})
	}
	if o.TracingEnabled && o.TraceEndpoint == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "observability.trace_endpoint",
			Message: "tracing is enabled but no collector endpoint is configured",
		})
	}
	if o.TraceSampleRatio < 0 || o.TraceSampleRatio > 1 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "observability.trace_sample_ratio",
			Message: fmt.Sprintf("ratio %v must be between 0.0 and 1.0", o.TraceSampleRatio),
		})
	}
}
