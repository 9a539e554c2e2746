// Package httpserver runs an http.Handler with sane timeouts, structured
// lifecycle logging and graceful shutdown.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
//
// Run binds before serving, so address errors surface immediately, and
// returns once the context is cancelled and in-flight requests have drained
// (bounded by the shutdown timeout).
//
// HealthCheckHandler serves liveness ("ALIVE") and readiness ("READY" or
// "NOT_READY") probes.
package httpserver
