package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// WithTransaction opens a transaction on the write connection, runs fn, and
// commits or rolls back depending on the returned error. The rollback error
// is logged only; the caller's error always wins.
func (c *Connection) WithTransaction(ctx context.Context, opts *sql.TxOptions, fn func(tx *sqlx.Tx) error) error {
	tx, err := c.Write.BeginTxx(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// WithSerializableTransaction is WithTransaction pinned to the serializable
// isolation level, used where a check-then-act sequence must not race.
func (c *Connection) WithSerializableTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return c.WithTransaction(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}
