// Command export renders the Creemers site into static HTML, one page per
// supported language.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/creemers/site/pkg/config"
	"github.com/creemers/site/pkg/environment"
	"github.com/creemers/site/pkg/logger"
	"github.com/creemers/site/pkg/page"
)

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	env := environment.Parse(cfg.AppEnv)
	log := newLogger(env, cfg, os.Stderr)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = environment.WithContext(ctx, env)

	if err := export(ctx, cfg, log); err != nil {
		log.ErrorContext(ctx, "Export failed", logger.Error(err))
		stop()
		os.Exit(1)
	}
}

// newLogger builds the process logger. Records logged with a page context
// carry its page_id.
func newLogger(env environment.Environment, cfg Config, w io.Writer) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(env, cfg.ServiceName),
		logger.WithOutput(w),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(
			environment.LoggerExtractor(),
			page.LoggerExtractor(),
		),
	)
}
