package configs

import (
	"fmt"
	"strings"

	"lm-events/internal/shared/validators"

	"github.com/spf13/viper"
)

const envPrefix = "LMEVENTS"

// LoadConfig reads configuration from file, applies LMEVENTS_* environment
// overrides and validates the result.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	setDefaults(v)

	// LMEVENTS_UPSTREAM_TOKEN overrides upstream.token
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

// setDefaults registers every optional key so that environment overrides
// resolve even when the file omits them.
func setDefaults(v *viper.Viper) {
	v.SetDefault("upstream.version", "v1")
	v.SetDefault("upstream.token", "")
	v.SetDefault("upstream.username", "")
	v.SetDefault("upstream.password", "")
	v.SetDefault("upstream.timeout", 30)
	v.SetDefault("aggregation.window_size", "hour")
	v.SetDefault("aggregation.counted_event", "request")
	v.SetDefault("aggregation.unnamed_model_key", "model")
	v.SetDefault("aggregation.no_content_key", "other")
	v.SetDefault("ingestion.page_size", 1000)
	v.SetDefault("ingestion.max_events", 10000)
	v.SetDefault("ingestion.concurrency", 4)
	v.SetDefault("ingestion.retries", 2)
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// "Config.server.port" -> "server.port"
	if e.Namespace() != "" {
		parts := strings.Split(e.Namespace(), ".")
		if len(parts) >= 2 {
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	var msg string
	switch tag {
	case "required":
		msg = fmt.Sprintf("%s (required)", field)
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s (max=%s)", field, e.Param())
	case "oneof":
		msg = fmt.Sprintf("%s (oneof=%s)", field, e.Param())
	case "url":
		msg = fmt.Sprintf("%s (url)", field)
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
