package storage

import (
	"fmt"

	"go.rowstore/internal/logger"
)

// Table is a single leaf node rooted at page 0. Rows are appended in
// insertion order; there are no splits, so a full root is a hard limit.
type Table struct {
	rootPageNum uint32
	pager       *Pager
	log         *logger.Logger
	syncOnClose bool
	closed      bool
}

type Option func(*Table)

// WithSyncOnClose makes Close fsync the file after flushing.
func WithSyncOnClose(sync bool) Option {
	return func(t *Table) {
		t.syncOnClose = sync
	}
}

// A nil log discards everything.
func OpenTable(path string, log *logger.Logger, opts ...Option) (*Table, error) {
	if log == nil {
		log = logger.Discard()
	}

	pager, err := OpenPager(path, log)
	if err != nil {
		return nil, err
	}

	t := &Table{
		rootPageNum: 0,
		pager:       pager,
		log:         log,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

func (t *Table) Pager() *Pager {
	return t.pager
}

func (t *Table) RootPageNum() uint32 {
	return t.rootPageNum
}

func (t *Table) root() (*Node, error) {
	return t.pager.GetPage(t.rootPageNum)
}

func (t *Table) Start() Cursor {
	return Cursor{PageNum: t.rootPageNum, CellNum: 0}
}

// End returns the position one past the last cell. It fails with
// ErrNodeFull when the root has no room, since nothing could be written there.
func (t *Table) End() (Cursor, error) {
	root, err := t.root()
	if err != nil {
		return Cursor{}, err
	}
	if root.IsFull() {
		return Cursor{}, fmt.Errorf("%w: page %d holds %d cells", ErrNodeFull, t.rootPageNum, root.NumCells())
	}
	return Cursor{PageNum: t.rootPageNum, CellNum: root.NumCells()}, nil
}

func (t *Table) IsEnd(c Cursor) (bool, error) {
	root, err := t.root()
	if err != nil {
		return false, err
	}
	return c.CellNum == root.NumCells(), nil
}

// Value returns the row under the cursor. It never loads a page: the
// cursor's page must already be cached.
func (t *Table) Value(c Cursor) (*Row, bool) {
	node, ok := t.pager.Cached(c.PageNum)
	if !ok {
		return nil, false
	}
	cell, ok := node.Cell(c.CellNum)
	if !ok {
		return nil, false
	}
	return &cell.Value, true
}

func (t *Table) InsertRow(row Row) error {
	c, err := t.End()
	if err != nil {
		return err
	}

	node, err := t.pager.GetPage(c.PageNum)
	if err != nil {
		return err
	}
	if node.IsFull() {
		return fmt.Errorf("%w: page %d", ErrNodeFull, c.PageNum)
	}
	return node.Insert(row)
}

// Close flushes every cached page and releases the file. A failed flush
// does not stop the remaining pages from being written; the first error
// is returned. Closing again is a no-op.
func (t *Table) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true

	var first error
	keep := func(err error) {
		if err != nil && first == nil {
			first = err
		}
	}

	flushed := 0
	for i := uint32(0); i < t.pager.NumPages(); i++ {
		if _, ok := t.pager.Cached(i); !ok {
			continue
		}
		if err := t.pager.Flush(i); err != nil {
			t.log.Errorf("Close: %v", err)
			keep(err)
			continue
		}
		flushed++
	}

	if t.syncOnClose && first == nil {
		keep(t.pager.Sync())
	}

	keep(t.pager.Close())
	t.log.Infof("Closed table, %d pages flushed", flushed)
	return first
}
