// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv, which reads an optional .env file into
// the environment, and github.com/caarlos0/env/v11, which parses the
// environment into a struct using field tags. Each configuration type is
// parsed once per process and cached; Reset clears the cache in tests.
//
//	type Config struct {
//	    AppEnv    string `env:"APP_ENV" envDefault:"development"`
//	    ExportDir string `env:"EXPORT_DIR" envDefault:"dist"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Types implementing Validator are checked right after parsing. Errors can
// be matched with errors.Is against ErrParsingConfig, ErrInvalidConfig,
// ErrInvalidConfigType, ErrLoadingEnvFile and ErrNilPointer.
package config
