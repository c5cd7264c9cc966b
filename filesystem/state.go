package filesystem

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/brettbedarf/shellfs"
	"github.com/brettbedarf/shellfs/internal/util"
)

const rootPath = "/"

// State owns the root of a node tree and tracks the current directory.
// Node ids come from a counter owned by the State, so independent States
// never share or collide on identity.
type State struct {
	root     *Node
	cwd      *Node         // always a directory node
	lastID   atomic.Uint64 // last node id assigned
	instance uuid.UUID
}

// NewState creates a filesystem holding only the root directory, which is
// also the current directory.
func NewState() *State {
	s := &State{instance: uuid.New()}

	root := s.newNode(shellfs.DirectoryType, nil, "")
	root.parent = root
	root.path = rootPath
	s.root = root
	s.cwd = root

	logger := util.GetLogger("filesystem.State")
	logger.Debug().Str("fs", s.instance.String()).Uint64("root", root.id).Msg("Filesystem initialized")
	return s
}

// Root returns the root directory node
func (s *State) Root() *Node {
	return s.root
}

// Cwd returns the current directory node
func (s *State) Cwd() *Node {
	return s.cwd
}

// SetCwd makes n the current directory. n must be a directory of this State.
func (s *State) SetCwd(n *Node) error {
	if n == nil || n.fs != s {
		return shellfs.NewInvalidOperation("", "node does not belong to this filesystem")
	}
	if !n.IsDir() {
		return shellfs.NewInvalidOperation(n.Name(), fmt.Sprintf("%s: Not a directory", n.Name()))
	}
	s.cwd = n
	return nil
}

// InstanceID identifies this State in log output
func (s *State) InstanceID() uuid.UUID {
	return s.instance
}

// LastID returns the most recently assigned node id
func (s *State) LastID() uint64 {
	return s.lastID.Load()
}

// newNode allocates the next id and the storage for kind. The caller is
// responsible for registering the node in parent's entries.
func (s *State) newNode(kind shellfs.FileType, parent *Node, name string) *Node {
	n := &Node{
		id:     s.lastID.Add(1),
		parent: parent,
		fs:     s,
	}
	if parent != nil {
		n.path = childPath(parent.path, name)
	}
	switch kind {
	case shellfs.PlainType:
		n.data = &PlainFile{}
	case shellfs.DirectoryType:
		n.data = newDirectory(n)
	}

	logger := util.GetLogger("filesystem.State")
	logger.Trace().Str("fs", s.instance.String()).Uint64("id", n.id).Stringer("type", kind).Msg("Node allocated")
	return n
}

// childPath joins a parent path and an entry name without doubling the root slash
func childPath(parentPath, name string) string {
	if parentPath == rootPath {
		return rootPath + name
	}
	return parentPath + "/" + name
}
