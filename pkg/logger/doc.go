// Package logger builds *slog.Logger values for timeguard components.
//
// New creates a logger configured by Option functions: output format (JSON or
// text), minimum level, static attributes and ContextExtractor callbacks that
// copy values from context.Context into every record. The handler produced by
// slog is wrapped in LogHandlerDecorator which runs the extractors on each
// Handle call.
//
// attr.go holds constructors for the attributes used across the module
// (Constraint, TargetType, Zone, Field, Source, Error) so that keys stay
// consistent between the constraint compiler, rule sets and the CLI.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithLevelName("debug"),
//	    logger.WithTextFormatter(),
//	    logger.WithService("timeguard"),
//	)
//	log.Info("rules loaded", logger.Source("rules.yaml"), logger.Count(12))
//
// The default logger writes JSON at INFO level to stderr.
package logger
