package filesystem

import (
	"syscall"
	"testing"

	"github.com/hanwen/go-fuse/v2/fuse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_Stat(t *testing.T) {
	t.Parallel()

	s := NewState()
	root := s.Root()
	sub, err := root.MakeDirectory("sub")
	require.NoError(t, err)
	file, err := sub.CreateFile("f", []string{"ab", "cd"})
	require.NoError(t, err)

	t.Run("root", func(t *testing.T) {
		t.Parallel()
		attr := root.Stat()
		assert.Equal(t, uint64(1), attr.Ino)
		assert.Equal(t, uint64(3), attr.Size)
		assert.Equal(t, uint32(fuse.S_IFDIR), attr.Mode&syscall.S_IFMT)
		assert.Equal(t, uint32(1), attr.Nlink)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()
		attr := sub.Stat()
		assert.Equal(t, sub.ID(), attr.Ino)
		assert.Equal(t, uint64(3), attr.Size)
		assert.Equal(t, uint32(fuse.S_IFDIR), attr.Mode&syscall.S_IFMT)
		assert.Equal(t, uint32(1), attr.Nlink)
	})

	t.Run("file", func(t *testing.T) {
		t.Parallel()
		attr := file.Stat()
		assert.Equal(t, file.ID(), attr.Ino)
		assert.Equal(t, uint64(4), attr.Size)
		assert.Equal(t, uint32(fuse.S_IFREG), attr.Mode&syscall.S_IFMT)
		assert.Equal(t, uint32(1), attr.Nlink)
		assert.Zero(t, attr.Mode&0o777, "no permission bits are tracked")
	})
}

func TestNode_Stat_LinkCount(t *testing.T) {
	t.Parallel()

	s := NewState()
	root := s.Root()
	file, err := root.CreateFile("a", []string{"x"})
	require.NoError(t, err)

	require.NoError(t, root.Link("b", file))
	assert.Equal(t, uint32(2), file.Stat().Nlink)

	require.NoError(t, root.Remove("a"))
	assert.Equal(t, uint32(1), file.Stat().Nlink)
}
