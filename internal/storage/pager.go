package storage

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"go.rowstore/internal/logger"
)

// Pager owns the database file and every node loaded from it. Pages are
// loaded on first access and only written back by Flush.
type Pager struct {
	file       *os.File
	fileLength int64
	pages      map[uint32]*Node
	numPages   uint32
	log        *logger.Logger
}

// A nil log discards everything.
func OpenPager(path string, log *logger.Logger) (*Pager, error) {
	if log == nil {
		log = logger.Discard()
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0666)
	if err != nil {
		return nil, fmt.Errorf("Error opening DB file: %w", err)
	}

	if lErr := lockFile(f); lErr != nil {
		f.Close()
		return nil, lErr
	}

	info, statErr := f.Stat()
	if statErr != nil {
		unlockFile(f)
		f.Close()
		return nil, fmt.Errorf("Error getting file stats: %w", statErr)
	}

	size := info.Size()
	if size%PageSize != 0 {
		log.Warnf("%s: length %d is not a whole number of pages, trailing %d bytes ignored", path, size, size%PageSize)
	}

	log.Infof("Opened %s (%d bytes)", path, size)
	return &Pager{
		file:       f,
		fileLength: size,
		pages:      make(map[uint32]*Node),
		log:        log,
	}, nil
}

// GetPage returns the cached node for page n, reading it from the file or
// allocating a fresh leaf the first time it is touched.
func (pager *Pager) GetPage(n uint32) (*Node, error) {
	if n >= TableMaxPages {
		return nil, fmt.Errorf("%w: %d >= %d", ErrPageOutOfBounds, n, TableMaxPages)
	}

	if node, ok := pager.pages[n]; ok {
		return node, nil
	}

	onDisk := uint32(pager.fileLength / PageSize)
	pager.numPages = max(pager.numPages, onDisk)

	var node *Node
	if n < onDisk {
		var err error
		if node, err = pager.readPage(n); err != nil {
			pager.log.Errorf("GetPage: %v", err)
			return nil, err
		}
		pager.log.Debugf("Loaded page %d (%d cells)", n, node.NumCells())
	} else {
		node = NewNode(NodeLeaf, n == 0, 0)
		pager.numPages = max(pager.numPages, n+1)
		pager.log.Debugf("Allocated page %d", n)
	}

	pager.pages[n] = node
	return node, nil
}

func (pager *Pager) readPage(n uint32) (*Node, error) {
	if _, err := pager.file.Seek(int64(n)*PageSize, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek page %d: %w", n, err)
	}

	var page Page
	if _, err := io.ReadFull(pager.file, page[:]); err != nil {
		return nil, fmt.Errorf("read page %d: %w", n, err)
	}

	node, err := DecodeNode(&page)
	if err != nil {
		return nil, fmt.Errorf("decode page %d: %w", n, err)
	}
	return node, nil
}

// Flush writes the cached node for page n to its slot in the file. The
// node stays cached.
func (pager *Pager) Flush(n uint32) error {
	if n >= TableMaxPages {
		return fmt.Errorf("%w: %d >= %d", ErrPageOutOfBounds, n, TableMaxPages)
	}

	node, ok := pager.pages[n]
	if !ok {
		return fmt.Errorf("%w: page %d", ErrNullPage, n)
	}

	var page Page
	if err := node.Encode(&page); err != nil {
		return fmt.Errorf("encode page %d: %w", n, err)
	}

	off := int64(n) * PageSize
	if _, err := pager.file.Seek(off, io.SeekStart); err != nil {
		return fmt.Errorf("seek page %d: %w", n, err)
	}

	size, err := pager.file.Write(page[:])
	if err != nil {
		return fmt.Errorf("write page %d: %w", n, err)
	} else if size != PageSize {
		return fmt.Errorf("write page %d: size mismatch: Expected %d Actual: %d", n, PageSize, size)
	}

	pager.fileLength = max(pager.fileLength, off+PageSize)
	pager.log.Debugf("Flushed page %d (%d cells)", n, node.NumCells())
	return nil
}

// NumPages is the number of pages known to exist, on disk or only in memory.
func (pager *Pager) NumPages() uint32 {
	return pager.numPages
}

// Cached returns page n only if it is already in memory.
func (pager *Pager) Cached(n uint32) (*Node, bool) {
	node, ok := pager.pages[n]
	return node, ok
}

// CachedPages lists the cached page numbers in ascending order.
func (pager *Pager) CachedPages() []uint32 {
	return slices.Sorted(maps.Keys(pager.pages))
}

func (pager *Pager) Sync() error {
	return syncFile(pager.file)
}

// Close releases the file lock and the file handle without flushing.
func (pager *Pager) Close() error {
	if pager.file == nil {
		return nil
	}

	unlockFile(pager.file)
	err := pager.file.Close()
	pager.file = nil
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}
	return nil
}
