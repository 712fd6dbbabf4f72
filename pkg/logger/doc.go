// Package logger provides a context-aware factory for log/slog loggers and
// helper attribute constructors used across fieldcheck's tooling.
//
// New builds a *slog.Logger configured by Option functions. Options select
// the output format (text or json), the minimum level, static attributes and
// ContextExtractor callbacks that pull attributes from the context of each
// record. A session id stored with WithSession is always extracted.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "fieldcheck"),
//	    logger.WithLevelName(cfg.LogLevel),
//	)
//	logger.SetAsDefault(log)
//
//	ctx := logger.WithSession(ctx, id)
//	log.WarnContext(ctx, "document rejected",
//	    logger.ViolationCount(report),
//	    logger.Violations(report),
//	)
//
// # Error Handling
//
// Error, Errors and Violations return an empty slog.Attr for nil or empty
// input, which slog drops, so callers can pass them unconditionally.
//
// The validation engine itself never logs; logging belongs to the code that
// runs a session and decides what to do with its report.
package logger
