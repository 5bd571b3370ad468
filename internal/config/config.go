// Package config loads runtime settings from defaults, an optional
// .nuclides.yaml, NUCLIDES_* environment variables and bound CLI flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/nuclides/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// EnvPrefix prefixes every environment override, e.g. NUCLIDES_LANG.
const EnvPrefix = "NUCLIDES"

// Config keys shared by viper and the cobra flag bindings.
const (
	KeyLang        = "lang"
	KeyTemperature = "temperature"
	KeyDB          = "db"
	KeyLogLevel    = "log_level"
)

// Config holds all runtime configuration.
type Config struct {
	Lang        string  `mapstructure:"lang" validate:"required,langtag"`
	Temperature float64 `mapstructure:"temperature" validate:"gte=0"`
	DB          string  `mapstructure:"db" validate:"required"`
	LogLevel    string  `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("langtag", func(fl validator.FieldLevel) bool {
		_, err := language.Parse(fl.Field().String())
		return err == nil
	})
	return v
}

// DefaultDBPath returns ~/.nuclides/nuclides.db, or a relative path when
// the home directory is unknown.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".nuclides", "nuclides.db")
	}
	return filepath.Join(home, ".nuclides", "nuclides.db")
}

// SetDefaults registers the built-in value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLang, domain.DefaultLanguage)
	v.SetDefault(KeyTemperature, domain.ZeroCelsius)
	v.SetDefault(KeyDB, DefaultDBPath())
	v.SetDefault(KeyLogLevel, "warn")
}

// NewViper returns a viper instance reading configFile, or .nuclides.yaml
// from the working or home directory when configFile is empty. A missing
// default file is not an error; a missing explicit file is.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(".nuclides")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return v, nil
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
