// Package config loads the generator configuration from defaults, an
// optional .env file, PROCESSMAP_* environment variables and command-line
// overrides, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"processmap-generator/internal/openapi"
	"processmap-generator/internal/record"
)

// EnvPrefix prefixes every environment variable read by [Load]. A double
// underscore separates nested keys: PROCESSMAP_INFO__TITLE sets info.title.
const EnvPrefix = "PROCESSMAP_"

// Keys accepted by [Load] overrides.
const (
	KeySource         = "source"
	KeyOutput         = "output"
	KeyLogFile        = "log_file"
	KeyEncoding       = "encoding"
	KeyOpenAPIVersion = "openapi_version"
	KeyInfoTitle      = "info.title"
	KeyInfoDesc       = "info.description"
	KeyInfoVersion    = "info.version"
)

// Config holds the locations and document settings of a conversion.
type Config struct {
	// Source is the semicolon-delimited export (local path or afs URL).
	Source string `koanf:"source" validate:"required"`
	// Output is where the YAML document is written (local path or afs URL).
	Output string `koanf:"output" validate:"required"`
	// LogFile is the local progress log.
	LogFile string `koanf:"log_file" validate:"required"`
	// Encoding is the character set of Source.
	Encoding       string `koanf:"encoding" validate:"required,oneof=utf-8 windows-1252 iso-8859-1"`
	OpenAPIVersion string `koanf:"openapi_version" validate:"required"`
	Info           Info   `koanf:"info"`
}

// Info is the configurable info block of the generated document.
type Info struct {
	Title       string `koanf:"title" validate:"required"`
	Description string `koanf:"description"`
	Version     string `koanf:"version" validate:"required"`
}

// Default returns the configuration of the original fixed file layout.
func Default() Config {
	info := openapi.DefaultInfo()

	return Config{
		Source:         "Schnittstellen_Prozesse.csv",
		Output:         "../processMappingGenerated.yaml",
		LogFile:        "script.log",
		Encoding:       string(record.EncodingUTF8),
		OpenAPIVersion: openapi.Version,
		Info: Info{
			Title:       info.Title,
			Description: info.Description,
			Version:     info.Version,
		},
	}
}

// DocumentInfo converts the info block for the document model.
func (c Config) DocumentInfo() openapi.Info {
	return openapi.Info{
		Title:       c.Info.Title,
		Description: c.Info.Description,
		Version:     c.Info.Version,
	}
}

// LoadEnvFile loads variables from a .env file into the process
// environment. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}

	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}

	return nil
}

// Load builds the configuration. overrides are applied last; empty string
// values are ignored so unset flags do not clear environment settings.
func Load(overrides map[string]string) (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	for key, value := range overrides {
		if value == "" {
			continue
		}

		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to apply %s: %w", key, err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Encoding = strings.ToLower(cfg.Encoding)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}
