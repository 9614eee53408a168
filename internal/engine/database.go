package engine

import (
	"fmt"
	"io"

	"go.rowstore/internal/logger"
	"go.rowstore/internal/storage"
)

type Database struct {
	table   *storage.Table
	log     *logger.Logger
	logFile io.Closer
	closed  bool
}

func (db *Database) Insert(row storage.Row) error {
	if err := db.table.InsertRow(row); err != nil {
		db.log.Warnf("Insert %d: %v", row.ID, err)
		return err
	}
	db.log.Debugf("Inserted row %d", row.ID)
	return nil
}

// Select calls fn for every row from the start of the table, in insertion order.
func (db *Database) Select(fn func(storage.Row) error) error {
	c := db.table.Start()
	for {
		end, err := db.table.IsEnd(c)
		if err != nil {
			return err
		}
		if end {
			return nil
		}

		row, ok := db.table.Value(c)
		if !ok {
			return fmt.Errorf("row not found at page %d cell %d", c.PageNum, c.CellNum)
		}
		if err := fn(*row); err != nil {
			return err
		}
		c.Advance()
	}
}

// Tree prints the root node, as shown by .btree
func (db *Database) Tree(w io.Writer) error {
	root, err := db.table.Pager().GetPage(db.table.RootPageNum())
	if err != nil {
		return err
	}
	return root.Print(w)
}

// Close flushes the table and releases the file and the log. Closing
// again is a no-op.
func (db *Database) Close() error {
	if db.closed {
		return nil
	}
	db.closed = true

	err := db.table.Close()
	if err != nil {
		db.log.Errorf("Close: %v", err)
	}

	if lErr := db.logFile.Close(); err == nil {
		err = lErr
	}
	return err
}
