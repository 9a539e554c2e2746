// Package environment names the deployment environment (development, staging,
// production) and carries it through context.Context.
//
// Parse turns a configured APP_ENV value into an Environment, accepting the
// short aliases "dev", "stage" and "prod". Middleware attaches the value to
// every request so that handlers can, for example, expose internal error
// details only outside production:
//
//	r.Use(environment.Middleware(environment.Parse(cfg.Env)))
//	...
//	if environment.IsDevelopment(r.Context()) { /* verbose errors */ }
//
// LoggerExtractor adds an "env" attribute to slog records logged with a
// request context.
package environment
