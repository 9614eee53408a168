package storage

// Cursor is a position in a node's cells. It holds no data and is not
// checked for staleness; do not keep one across an insert.
type Cursor struct {
	PageNum uint32
	CellNum uint32
}

func (c *Cursor) Advance() {
	c.CellNum++
}
