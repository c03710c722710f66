package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-places/internal/logger"
)

type txCtxKey struct{}

func withTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txCtxKey{}, tx)
}

func txFromContext(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txCtxKey{}).(*sql.Tx)
	return tx, ok && tx != nil
}

// sqlTransactor is the database/sql implementation of [Transactor].
type sqlTransactor struct {
	db     *DB
	logger *logger.Logger
}

// NewTransactor returns a [Transactor] that opens transactions on db.
func NewTransactor(db *DB, logger *logger.Logger) Transactor {
	logger.Debug().Msg("creating transactor")
	return &sqlTransactor{
		db:     db,
		logger: logger,
	}
}

func (t *sqlTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	log := logger.FromContext(ctx)

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*sqlTransactor.WithinTransaction").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Err(rbErr).Str("func", "*sqlTransactor.WithinTransaction").Msg("failed to rollback transaction after panic")
			}
			panic(p)
		}
	}()

	if err = fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Err(rbErr).Str("func", "*sqlTransactor.WithinTransaction").Msg("failed to rollback transaction")
			return errors.Join(err, fmt.Errorf("%w: %w", ErrRollingBackTransaction, rbErr))
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*sqlTransactor.WithinTransaction").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
