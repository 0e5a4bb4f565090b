package db

import (
	"context"
	"database/sql"
	"fmt"
)

// TxFunc runs against a transaction. Returning an error rolls it back.
type TxFunc func(ctx context.Context, tx DBTX) error

// UnitOfWork groups the writes of one use case, such as replacing a whole
// timeline, into a single transaction.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

type SQLiteUnitOfWork struct {
	conn *sql.DB
}

func NewSQLiteUnitOfWork(conn *sql.DB) *SQLiteUnitOfWork {
	return &SQLiteUnitOfWork{conn: conn}
}

// WithinTx commits when fn succeeds and rolls back when it fails or panics.
func (u *SQLiteUnitOfWork) WithinTx(ctx context.Context, fn TxFunc) error {
	tx, err := u.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	return finish(tx, func() error { return fn(ctx, tx) })
}

// finish runs body and ends tx accordingly.
func finish(tx *sql.Tx, body func() error) error {
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := body(); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rolling back after %w: %v", err, rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
