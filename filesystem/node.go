package filesystem

import (
	"io"
	"path"

	"github.com/brettbedarf/shellfs"
)

// variant is the data a Node holds. Only *PlainFile and *Directory implement it.
type variant interface {
	fileType() shellfs.FileType
}

// Node is an identity-bearing wrapper around exactly one of [PlainFile] or
// [Directory]. Every operation dispatches on the held variant and fails with
// an InvalidOperation error when the variant does not support it.
type Node struct {
	id     uint64
	path   string // absolute; fixed when the node is placed
	parent *Node  // non-owning; the root is its own parent
	links  int    // directory entries naming this node, excluding "." and ".."
	fs     *State // allocates ids for children
	data   variant
}

var _ shellfs.NodeInfo = (*Node)(nil)

// ID returns the node's unique id within its [State]
func (n *Node) ID() uint64 {
	return n.id
}

// Path returns the absolute path the node was created at. Hard links do not change it.
func (n *Node) Path() string {
	return n.path
}

// Name returns the last path component; "/" for the root
func (n *Node) Name() string {
	return path.Base(n.path)
}

// Parent returns the containing directory node; the root returns itself
func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) IsRoot() bool {
	return n.parent == n
}

func (n *Node) Type() shellfs.FileType {
	return n.data.fileType()
}

func (n *Node) IsDir() bool {
	_, ok := n.data.(*Directory)
	return ok
}

// File returns the plain file variant if the node holds one
func (n *Node) File() (*PlainFile, bool) {
	f, ok := n.data.(*PlainFile)
	return f, ok
}

// Dir returns the directory variant if the node holds one
func (n *Node) Dir() (*Directory, bool) {
	d, ok := n.data.(*Directory)
	return d, ok
}

// Links returns how many directory entries name this node
func (n *Node) Links() int {
	return n.links
}

// Size is the token length sum of a file or the entry count of a directory
func (n *Node) Size() int {
	switch v := n.data.(type) {
	case *PlainFile:
		return v.Size()
	case *Directory:
		return v.Size()
	}
	return 0
}

// Read writes a file's content to w. Reading a directory fails with IsADirectory.
func (n *Node) Read(w io.Writer) error {
	switch v := n.data.(type) {
	case *PlainFile:
		return v.Read(w)
	case *Directory:
		return shellfs.NewIsADirectory(n.Name())
	}
	return errNoVariant
}

// Text returns a file's tokens joined by single spaces
func (n *Node) Text() (string, error) {
	switch v := n.data.(type) {
	case *PlainFile:
		return v.Text(), nil
	case *Directory:
		return "", shellfs.NewIsADirectory(n.Name())
	}
	return "", errNoVariant
}

// ReadEntry reads the file entry called name in a directory, see [Directory.ReadEntry]
func (n *Node) ReadEntry(w io.Writer, name string) error {
	switch v := n.data.(type) {
	case *PlainFile:
		return errPlainFile(name)
	case *Directory:
		return v.ReadEntry(w, name)
	}
	return errNoVariant
}

// Write replaces a file's content, or on a directory creates a file under the
// name set by a preceding [Node.StageFileName].
func (n *Node) Write(tokens []string) error {
	switch v := n.data.(type) {
	case *PlainFile:
		v.Write(tokens)
		return nil
	case *Directory:
		return v.Write(tokens)
	}
	return errNoVariant
}

func (n *Node) StageFileName(name string) error {
	switch v := n.data.(type) {
	case *PlainFile:
		return errPlainFile(name)
	case *Directory:
		return v.StageFileName(name)
	}
	return errNoVariant
}

func (n *Node) CreateFile(name string, tokens []string) (*Node, error) {
	switch v := n.data.(type) {
	case *PlainFile:
		return nil, errPlainFile(name)
	case *Directory:
		return v.CreateFile(name, tokens)
	}
	return nil, errNoVariant
}

func (n *Node) MakeDirectory(name string) (*Node, error) {
	switch v := n.data.(type) {
	case *PlainFile:
		return nil, errPlainFile(name)
	case *Directory:
		return v.MakeDirectory(name)
	}
	return nil, errNoVariant
}

func (n *Node) Remove(name string) error {
	switch v := n.data.(type) {
	case *PlainFile:
		return errPlainFile(name)
	case *Directory:
		return v.Remove(name)
	}
	return errNoVariant
}

func (n *Node) Lookup(name string) (*Node, error) {
	switch v := n.data.(type) {
	case *PlainFile:
		return nil, errPlainFile(name)
	case *Directory:
		return v.Lookup(name)
	}
	return nil, errNoVariant
}

func (n *Node) ListEntries() ([]Entry, error) {
	switch v := n.data.(type) {
	case *PlainFile:
		return nil, errPlainFile("")
	case *Directory:
		return v.ListEntries(), nil
	}
	return nil, errNoVariant
}

func (n *Node) Link(name string, target *Node) error {
	switch v := n.data.(type) {
	case *PlainFile:
		return errPlainFile(name)
	case *Directory:
		return v.Link(name, target)
	}
	return errNoVariant
}

// errPlainFile is returned for any directory-shaped operation on a plain file
func errPlainFile(name string) error {
	return shellfs.NewInvalidOperation(name, "")
}

// only reachable for a zero Node built outside a State
var errNoVariant = shellfs.NewInvalidOperation("", "node holds no file data")
