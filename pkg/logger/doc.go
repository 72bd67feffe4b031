// Package logger builds *slog.Logger values configured by functional options,
// with helper attribute constructors and injection of values stored in
// context.Context.
//
// New picks a handler for the configured Format: slog's JSON or text
// handler, or github.com/lmittmann/tint for the coloured development
// output. The handler is wrapped in LogHandlerDecorator, which runs the
// registered ContextExtractor callbacks for every record.
//
// Attribute helpers such as Language, ItemID, PageID and Component keep
// attribute names consistent across the site packages.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Parse(cfg.AppEnv), cfg.ServiceName),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "Page rendered", logger.Language(lang), logger.Duration(elapsed))
//
// # Configuration
//
//   - WithDevelopment / WithStaging / WithProduction / WithEnvironment: defaults per environment.
//   - WithFormat / WithTextFormatter / WithJSONFormatter / WithNoColor: output format.
//   - WithLevel / WithLevelName: minimum level.
//   - WithAttr: static attributes.
//   - WithContextExtractors: attributes taken from context. A static attribute
//     with the same key takes precedence.
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Info("operation finished", logger.Error(err))
//
// needs no nil check.
package logger
