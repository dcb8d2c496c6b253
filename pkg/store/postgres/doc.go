// Package postgres implements the template store on PostgreSQL.
//
// This package wraps [github.com/jackc/pgx/v5/pgxpool] for connection
// pooling and [github.com/pressly/goose/v3] for schema migrations. The
// structured document and the variable list are stored as JSONB columns so
// the schema never chases shape changes in the document model.
//
// # Configuration
//
// All settings are loaded from environment variables:
//
//	TEMPLATES_DB_URL                 - PostgreSQL connection URL (required)
//	TEMPLATES_DB_MAX_OPEN_CONNS     - Maximum open connections (default: 10)
//	TEMPLATES_DB_MIN_CONNS          - Minimum idle connections (default: 2)
//	TEMPLATES_DB_HEALTHCHECK_PERIOD - Health check interval (default: 1m)
//	TEMPLATES_DB_RETRY_ATTEMPTS     - Connection retry attempts (default: 3)
//	TEMPLATES_DB_RETRY_INTERVAL     - Base retry interval (default: 5s)
//
// # Usage
//
//	pool, err := postgres.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := postgres.Migrate(ctx, pool, logger); err != nil {
//		return err
//	}
//	templates := postgres.New(pool)
package postgres
