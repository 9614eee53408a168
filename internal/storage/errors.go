package storage

import "errors"

var (
	// pager
	ErrPageOutOfBounds = errors.New("tried to fetch page number out of bounds")
	ErrNullPage        = errors.New("tried to flush null page")
	ErrFileLocked      = errors.New("database file is locked by another process")
	// nodes
	ErrNodeFull        = errors.New("node is full")
	ErrUnknownNodeType = errors.New("unknown node type")
	ErrCorruptNode     = errors.New("node is corrupt")
	// rows
	ErrStringTooLong   = errors.New("string is too long")
	ErrInvalidEncoding = errors.New("row contains invalid text encoding")
	ErrShortBuffer     = errors.New("buffer too small for row")
)
