package engine

import (
	"errors"
	"fmt"
	"io"

	"go.rowstore/internal/statement"
	"go.rowstore/internal/storage"
)

var (
	ErrTableFull = errors.New("Error: Table full.")
	ErrNoRow     = errors.New("insert without a row")
)

// Execute runs a prepared statement, writing any result rows to w.
func (db *Database) Execute(stmt *statement.Statement, w io.Writer) error {
	switch stmt.Type {
	case statement.Insert:
		if stmt.Row == nil {
			return ErrNoRow
		}
		err := db.Insert(*stmt.Row)
		if errors.Is(err, storage.ErrNodeFull) {
			return ErrTableFull
		}
		return err

	case statement.Select:
		return db.Select(func(row storage.Row) error {
			_, err := fmt.Fprintln(w, row)
			return err
		})

	default:
		return fmt.Errorf("unknown statement type %d", stmt.Type)
	}
}
