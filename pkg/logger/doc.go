// Package logger builds slog loggers with environment presets, request-scoped
// attributes and a set of attribute helpers that keep keys consistent across
// the service.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, cfg.AppName),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "card checked",
//	    logger.CardNetwork(res.Network),
//	    logger.MaskedPAN(number),
//	)
//
// Card numbers must only be logged through MaskedPAN.
package logger
