// Package logger builds the slog loggers used across the module.
//
// New returns a JSON logger writing to stdout. NewWithSentry adds a Sentry
// handler next to stdout when a DSN is configured, so warnings and errors
// surface as Sentry issues while local development stays plain stdout.
//
// Context extractors inject request-scoped attributes at log time. The
// package ships one for the template key, so every log line produced while
// handling a template operation carries the key without threading it
// through call sites:
//
//	log := logger.New(logger.TemplateKeyExtractor)
//	ctx := logger.WithTemplateKey(ctx, "welcome-3f2a91bc")
//	log.InfoContext(ctx, "preview rendered") // includes template_key
package logger
