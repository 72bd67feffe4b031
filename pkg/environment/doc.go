// Package environment propagates the current application environment
// (development, staging or production) through context.Context and into
// structured logs.
//
// The environment decides how the page components treat invariant
// violations: Strict reports true outside production, where violations are
// returned to the caller. In production they are logged and ignored so a
// wiring bug never takes the whole page down.
//
// # Usage
//
//	env := environment.Parse(cfg.AppEnv)
//	ctx := environment.WithContext(context.Background(), env)
//	if environment.Strict(ctx) {
//	    // fail fast
//	}
//
// LoggerExtractor returns a context extractor for pkg/logger that adds an
// "env" attribute to every record logged with such a context.
package environment
