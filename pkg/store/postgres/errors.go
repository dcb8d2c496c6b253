package postgres

import "errors"

var (
	ErrFailedToParseConfig   = errors.New("postgres: failed to parse connection configuration")
	ErrFailedToOpenConn      = errors.New("postgres: failed to open connection")
	ErrSetDialect            = errors.New("postgres migrator: failed to set dialect")
	ErrApplyMigrations       = errors.New("postgres migrator: failed to apply migrations")
	ErrFailedToEncodePayload = errors.New("postgres: failed to encode template payload")
	ErrFailedToDecodePayload = errors.New("postgres: failed to decode template payload")
)
