package db

import (
	"database/sql"
	"fmt"
)

// Queryer is satisfied by both *sql.DB and *sql.Tx, so repositories can run
// inside or outside a transaction without caring which.
type Queryer interface {
	QueryRow(query string, args ...any) *sql.Row
	Query(query string, args ...any) (*sql.Rows, error)
	Exec(query string, args ...any) (sql.Result, error)
}

var (
	_ Queryer = (*sql.DB)(nil)
	_ Queryer = (*sql.Tx)(nil)
)

// WithTx runs fn as one unit of work: Begin, fn, Commit. Any error from fn
// (or from Commit) rolls the transaction back and is returned unchanged, so
// partial writes are never visible to later reads.
func WithTx(database *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := database.Begin()
	if err != nil {
		return fmt.Errorf("iniciar transacción: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	committed = true
	return nil
}
