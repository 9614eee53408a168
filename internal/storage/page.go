package storage

const (
	PageSize      = 4096
	TableMaxPages = 100
)

// Page is the raw on-disk form of a node.
type Page [PageSize]byte

type NodeType uint8

const (
	NodeInternal NodeType = iota + 1
	NodeLeaf
)

func (t NodeType) valid() bool {
	return t == NodeInternal || t == NodeLeaf
}

func (t NodeType) String() string {
	switch t {
	case NodeInternal:
		return "internal"
	case NodeLeaf:
		return "leaf"
	default:
		return "unknown"
	}
}
