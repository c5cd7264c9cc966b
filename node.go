package shellfs

// NodeInfo provides read-only access to node information for external consumers
type NodeInfo interface {
	// ID returns the unique node identifier
	ID() uint64

	// Path returns the absolute path the node was created at
	Path() string

	// Type returns which variant the node holds
	Type() FileType

	// Size returns the token length sum for files or entry count for directories
	Size() int
}
