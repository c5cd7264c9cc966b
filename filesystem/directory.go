package filesystem

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/brettbedarf/shellfs"
	"github.com/brettbedarf/shellfs/internal/util"
)

const (
	selfName   = "."
	parentName = ".."
)

// Directory maps entry names to child nodes.
//
// Only owned children are stored in entries. "." and ".." always resolve to
// the directory's own node and its parent through non-owning references, so
// they count towards Size and appear in listings but can never be removed.
type Directory struct {
	node    *Node // the node holding this directory; non-owning
	entries *xsync.Map[string, *Node]
	staged  *string // name set by StageFileName, consumed by Write
}

func newDirectory(node *Node) *Directory {
	return &Directory{
		node:    node,
		entries: xsync.NewMap[string, *Node](),
	}
}

func (*Directory) fileType() shellfs.FileType { return shellfs.DirectoryType }

// Size returns the number of entries including "." and ".."
func (d *Directory) Size() int {
	return d.entries.Size() + 2
}

// Lookup resolves name to a node. "." is the directory itself and ".." its parent.
func (d *Directory) Lookup(name string) (*Node, error) {
	switch name {
	case selfName:
		return d.node, nil
	case parentName:
		return d.node.parent, nil
	}
	if child, ok := d.entries.Load(name); ok {
		return child, nil
	}
	return nil, shellfs.NewNotFound(name)
}

// has reports whether name is taken, counting "." and ".."
func (d *Directory) has(name string) bool {
	if isSelfOrParent(name) {
		return true
	}
	_, ok := d.entries.Load(name)
	return ok
}

// ReadEntry writes the content of the plain file entry called name to w.
// A directory entry fails with IsADirectory and a missing one with NotFound.
func (d *Directory) ReadEntry(w io.Writer, name string) error {
	logger := util.GetLogger("filesystem.Directory.ReadEntry")
	logger.Trace().Str("dir", d.node.path).Str("name", name).Msg("ReadEntry called")

	child, err := d.Lookup(name)
	if err != nil {
		return err
	}
	f, ok := child.File()
	if !ok {
		return shellfs.NewIsADirectory(name)
	}
	return f.Read(w)
}

// CreateFile creates a plain file called name holding tokens and registers it
// in one step. Nothing changes when it fails.
func (d *Directory) CreateFile(name string, tokens []string) (*Node, error) {
	logger := util.GetLogger("filesystem.Directory.CreateFile")

	if err := d.checkNewName(name); err != nil {
		logger.Debug().Err(err).Str("dir", d.node.path).Str("name", name).Msg("Failed to create file")
		return nil, err
	}

	child := d.node.fs.newNode(shellfs.PlainType, d.node, name)
	child.data.(*PlainFile).Write(tokens)
	d.attach(name, child)

	logger.Debug().Str("path", child.path).Uint64("id", child.id).Msg("Created file")
	return child, nil
}

// MakeDirectory creates an empty directory called name whose parent is this
// directory. The filesystem's current directory is not touched.
func (d *Directory) MakeDirectory(name string) (*Node, error) {
	logger := util.GetLogger("filesystem.Directory.MakeDirectory")

	if err := d.checkNewName(name); err != nil {
		logger.Debug().Err(err).Str("dir", d.node.path).Str("name", name).Msg("Failed to make directory")
		return nil, err
	}

	child := d.node.fs.newNode(shellfs.DirectoryType, d.node, name)
	d.attach(name, child)

	logger.Debug().Str("path", child.path).Uint64("id", child.id).Msg("Created directory")
	return child, nil
}

// StageFileName sets the name the next [Directory.Write] creates a file under.
// Staging again before that Write is rejected.
func (d *Directory) StageFileName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if d.staged != nil {
		return shellfs.NewInvalidOperation(name,
			fmt.Sprintf("%s: file name %q already staged", name, *d.staged))
	}
	d.staged = &name
	return nil
}

// Write creates a plain file under the staged name holding tokens. The staged
// name is consumed whether or not creation succeeds.
func (d *Directory) Write(tokens []string) error {
	if d.staged == nil {
		return shellfs.NewInvalidOperation("", "no file name staged for write")
	}
	name := *d.staged
	d.staged = nil
	_, err := d.CreateFile(name, tokens)
	return err
}

// Remove detaches the entry called name. A directory entry is detached
// without touching its subtree; any other name for the same node keeps it alive.
func (d *Directory) Remove(name string) error {
	logger := util.GetLogger("filesystem.Directory.Remove")

	if isSelfOrParent(name) {
		return shellfs.NewInvalidOperation(name, fmt.Sprintf("%s: cannot remove directory self or parent entry", name))
	}
	child, ok := d.entries.LoadAndDelete(name)
	if !ok {
		err := shellfs.NewNotFound(name)
		logger.Debug().Err(err).Str("dir", d.node.path).Msg("Failed to remove entry")
		return err
	}
	child.links--

	logger.Debug().Str("dir", d.node.path).Str("name", name).Uint64("id", child.id).Msg("Removed entry")
	return nil
}

// Link adds name as another entry for the plain file target
func (d *Directory) Link(name string, target *Node) error {
	if target == nil || target.fs != d.node.fs {
		return shellfs.NewInvalidOperation(name, fmt.Sprintf("%s: link target not in this filesystem", name))
	}
	if target.IsDir() {
		return shellfs.NewInvalidOperation(name, fmt.Sprintf("%s: hard link not allowed for directory", target.Name()))
	}
	if err := d.checkNewName(name); err != nil {
		return err
	}
	d.attach(name, target)

	logger := util.GetLogger("filesystem.Directory.Link")
	logger.Debug().Str("dir", d.node.path).Str("name", name).Uint64("id", target.id).Msg("Linked entry")
	return nil
}

// Entry is one (name, node) pair of a directory listing
type Entry struct {
	Name string
	Node *Node
}

// String renders the listing line: id, size and name, with a trailing "/"
// on directories other than "." and "..".
func (e Entry) String() string {
	name := e.Name
	if e.Node.IsDir() && !isSelfOrParent(name) {
		name += "/"
	}
	return fmt.Sprintf("   %d   %d    %s", e.Node.ID(), e.Node.Size(), name)
}

// ListEntries returns every entry, "." and ".." included, in ascending name order
func (d *Directory) ListEntries() []Entry {
	entries := make([]Entry, 0, d.Size())
	entries = append(entries, Entry{Name: selfName, Node: d.node}, Entry{Name: parentName, Node: d.node.parent})
	d.entries.Range(func(name string, child *Node) bool {
		entries = append(entries, Entry{Name: name, Node: child})
		return true
	})
	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return entries
}

// Names returns the entry names other than "." and ".." in ascending order
func (d *Directory) Names() []string {
	names := make([]string, 0, d.entries.Size())
	d.entries.Range(func(name string, _ *Node) bool {
		names = append(names, name)
		return true
	})
	slices.Sort(names)
	return names
}

func (d *Directory) checkNewName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if d.has(name) {
		return shellfs.NewAlreadyExists(name)
	}
	return nil
}

func (d *Directory) attach(name string, child *Node) {
	d.entries.Store(name, child)
	child.links++
}

func isSelfOrParent(name string) bool {
	return name == selfName || name == parentName
}

func validateName(name string) error {
	if name == "" || strings.Contains(name, "/") {
		return shellfs.NewInvalidOperation(name, fmt.Sprintf("invalid entry name %q", name))
	}
	return nil
}
