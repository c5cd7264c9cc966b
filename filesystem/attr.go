package filesystem

import "github.com/hanwen/go-fuse/v2/fuse"

// Stat reports the node's identity, size, type and link count as fuse
// attributes. No permission, ownership or time fields are tracked.
func (n *Node) Stat() fuse.Attr {
	attr := fuse.Attr{
		Ino:   n.id,
		Size:  uint64(n.Size()),
		Nlink: uint32(n.links),
	}
	if n.IsRoot() {
		// nothing names the root
		attr.Nlink = 1
	}
	if n.IsDir() {
		attr.Mode = fuse.S_IFDIR
	} else {
		attr.Mode = fuse.S_IFREG
	}
	return attr
}
