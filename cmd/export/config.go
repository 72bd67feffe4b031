package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/creemers/site/pkg/i18n"
)

// Config is the exporter configuration, read from the environment.
type Config struct {
	AppEnv          string `env:"APP_ENV" envDefault:"development"`
	ServiceName     string `env:"SERVICE_NAME" envDefault:"creemers-site"`
	LogLevel        string `env:"LOG_LEVEL"`
	ExportDir       string `env:"EXPORT_DIR" envDefault:"dist"`
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"nl"`
	// LocalesDir is a directory of YAML files or a single JSON or YAML file.
	// Empty means the dictionaries embedded in the binary.
	LocalesDir string `env:"LOCALES_DIR"`
	ChatPhone  string `env:"CHAT_PHONE" envDefault:"31624572572"`
}

// Validate implements config.Validator.
func (c *Config) Validate() error {
	var errs []error
	if _, err := i18n.ParseLanguage(c.DefaultLanguage); err != nil {
		errs = append(errs, fmt.Errorf("DEFAULT_LANGUAGE: %w", err))
	}
	if strings.TrimSpace(c.ExportDir) == "" {
		errs = append(errs, errors.New("EXPORT_DIR must not be empty"))
	}
	if c.ChatPhone == "" || strings.TrimFunc(c.ChatPhone, isDigit) != "" {
		errs = append(errs, fmt.Errorf("CHAT_PHONE %q must contain digits only", c.ChatPhone))
	}
	return errors.Join(errs...)
}

// Language returns the parsed default language. Call after Validate.
func (c *Config) Language() i18n.Language {
	lang, _ := i18n.ParseLanguage(c.DefaultLanguage)
	return lang
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
