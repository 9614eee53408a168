package storage

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Common node header
const (
	nodeTypeOffset       int = 0
	isRootOffset         int = 1
	parentPointerOffset  int = 2
	CommonNodeHeaderSize int = 6
)

// Leaf node header and body
const (
	leafNumCellsOffset    int = CommonNodeHeaderSize
	LeafNodeHeaderSize    int = leafNumCellsOffset + 4
	LeafNodeKeySize       int = 4
	LeafNodeValueSize     int = RowSize
	LeafNodeCellSize      int = LeafNodeKeySize + LeafNodeValueSize
	LeafNodeSpaceForCells int = PageSize - LeafNodeHeaderSize
	LeafNodeMaxCells      int = LeafNodeSpaceForCells / LeafNodeCellSize
)

type Cell struct {
	Key   uint32
	Value Row
}

// Node is the decoded form of a single page.
type Node struct {
	Type   NodeType
	IsRoot bool
	Parent uint32

	cells []Cell
}

func NewNode(typ NodeType, isRoot bool, parent uint32) *Node {
	return &Node{
		Type:   typ,
		IsRoot: isRoot,
		Parent: parent,
		cells:  make([]Cell, 0, LeafNodeMaxCells),
	}
}

func DecodeNode(page *Page) (*Node, error) {
	typ := NodeType(page[nodeTypeOffset])
	if !typ.valid() {
		return nil, fmt.Errorf("%w: tag %d", ErrUnknownNodeType, typ)
	}

	numCells := binary.BigEndian.Uint32(page[leafNumCellsOffset:LeafNodeHeaderSize])
	if numCells > uint32(LeafNodeMaxCells) {
		return nil, fmt.Errorf("%w: %d cells, limit %d", ErrCorruptNode, numCells, LeafNodeMaxCells)
	}

	node := NewNode(typ, page[isRootOffset] != 0, binary.BigEndian.Uint32(page[parentPointerOffset:leafNumCellsOffset]))

	off := LeafNodeHeaderSize
	for i := uint32(0); i < numCells; i++ {
		key := binary.BigEndian.Uint32(page[off : off+LeafNodeKeySize])
		row, err := DecodeRow(page[off+LeafNodeKeySize : off+LeafNodeCellSize])
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		node.cells = append(node.cells, Cell{Key: key, Value: row})
		off += LeafNodeCellSize
	}

	return node, nil
}

// Encode writes the header and the populated cells into page. Bytes after
// the last cell keep whatever the page already held.
func (n *Node) Encode(page *Page) error {
	if len(n.cells) > LeafNodeMaxCells {
		return fmt.Errorf("%w: %d cells, limit %d", ErrCorruptNode, len(n.cells), LeafNodeMaxCells)
	}

	page[nodeTypeOffset] = byte(n.Type)
	page[isRootOffset] = 0
	if n.IsRoot {
		page[isRootOffset] = 1
	}
	binary.BigEndian.PutUint32(page[parentPointerOffset:leafNumCellsOffset], n.Parent)
	binary.BigEndian.PutUint32(page[leafNumCellsOffset:LeafNodeHeaderSize], n.NumCells())

	off := LeafNodeHeaderSize
	for i, c := range n.cells {
		binary.BigEndian.PutUint32(page[off:off+LeafNodeKeySize], c.Key)
		if err := c.Value.Encode(page[off+LeafNodeKeySize : off+LeafNodeCellSize]); err != nil {
			return fmt.Errorf("cell %d: %w", i, err)
		}
		off += LeafNodeCellSize
	}
	return nil
}

func (n *Node) NumCells() uint32 {
	return uint32(len(n.cells))
}

func (n *Node) IsFull() bool {
	return len(n.cells) >= LeafNodeMaxCells
}

// Insert appends (row.ID, row) after the last cell. Callers check IsFull
// first; a full node is left unchanged.
func (n *Node) Insert(row Row) error {
	if n.IsFull() {
		return ErrNodeFull
	}
	n.cells = append(n.cells, Cell{Key: row.ID, Value: row})
	return nil
}

func (n *Node) Cell(i uint32) (*Cell, bool) {
	if i >= n.NumCells() {
		return nil, false
	}
	return &n.cells[i], true
}

func (n *Node) Print(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s (size %d)\n", n.Type, len(n.cells)); err != nil {
		return err
	}
	for i, c := range n.cells {
		if _, err := fmt.Fprintf(w, "  - %d : %d\n", i, c.Key); err != nil {
			return err
		}
	}
	return nil
}

func PrintConstants(w io.Writer) error {
	constants := []struct {
		name  string
		value int
	}{
		{"ROW_SIZE", RowSize},
		{"COMMON_NODE_HEADER_SIZE", CommonNodeHeaderSize},
		{"LEAF_NODE_HEADER_SIZE", LeafNodeHeaderSize},
		{"LEAF_NODE_CELL_SIZE", LeafNodeCellSize},
		{"LEAF_NODE_SPACE_FOR_CELLS", LeafNodeSpaceForCells},
		{"LEAF_NODE_MAX_CELLS", LeafNodeMaxCells},
	}

	for _, c := range constants {
		if _, err := fmt.Fprintf(w, "%s: %d\n", c.name, c.value); err != nil {
			return err
		}
	}
	return nil
}
