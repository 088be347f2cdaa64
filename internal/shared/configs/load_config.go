package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"slurm-plot/internal/shared/validators"

	"github.com/spf13/viper"
)

// LoadConfig builds the configuration from defaults merged with an optional
// YAML file, then validates it. An explicit configPath must exist; with an
// empty configPath the loader falls back to slurm-plot.yml in the working
// directory or $HOME/.config/slurm-plot/, and to pure defaults when neither
// is present.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	} else {
		v.SetConfigName("slurm-plot")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "slurm-plot"))
		}

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
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

func setDefaults(v *viper.Viper) {
	v.SetDefault("slurm.sacct_command", "sacct")
	v.SetDefault("slurm.timeout", 30)

	v.SetDefault("processing.memory_unit", "GB")
	v.SetDefault("processing.time_unit", "hours")

	v.SetDefault("plotting.figure_width", 12)
	v.SetDefault("plotting.figure_height", 8)
	v.SetDefault("plotting.dpi", 300)
	v.SetDefault("plotting.theme", "westeros")
	v.SetDefault("plotting.grid", true)
	v.SetDefault("plotting.legend", true)

	v.SetDefault("output.directory", ".")
	v.SetDefault("output.transparent", false)

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_header_timeout", 5)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 60)
	v.SetDefault("server.idle_timeout", 60)

	v.SetDefault("log.level", "info")
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "server.port")
	if e.StructNamespace() != "" {
		// Extract nested field path (e.g., "Config.Server.Port" -> "server.port")
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			// Skip "Config" prefix, convert to lowercase with dots
			fieldPath := strings.ToLower(strings.Join(parts[1:], "."))
			field = fieldPath
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
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
