package shell

import (
	"strings"

	"github.com/brettbedarf/shellfs"
	"github.com/brettbedarf/shellfs/filesystem"
)

// resolve walks p component by component from the root (absolute paths) or
// the current directory (relative paths). Errors name the whole of p.
func (sh *Shell) resolve(p string) (*filesystem.Node, error) {
	cur := sh.state.Cwd()
	if strings.HasPrefix(p, "/") {
		cur = sh.state.Root()
	}
	for _, comp := range strings.Split(p, "/") {
		if comp == "" {
			continue
		}
		if !cur.IsDir() {
			return nil, notADirectory(p)
		}
		next, err := cur.Lookup(comp)
		if err != nil {
			return nil, renamed(err, p)
		}
		cur = next
	}
	return cur, nil
}

// resolveParent resolves every component of p but the last and returns that
// directory with the final name. The name is empty when p names the root.
func (sh *Shell) resolveParent(p string) (*filesystem.Node, string, error) {
	trimmed := strings.TrimRight(p, "/")
	if trimmed == "" {
		if p == "" {
			return sh.state.Cwd(), "", nil
		}
		return sh.state.Root(), "", nil
	}

	dirPath, name := "", trimmed
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		dirPath, name = trimmed[:i+1], trimmed[i+1:]
	}

	dir := sh.state.Cwd()
	if dirPath != "" {
		var err error
		if dir, err = sh.resolve(dirPath); err != nil {
			return nil, "", err
		}
	}
	if !dir.IsDir() {
		return nil, "", notADirectory(p)
	}
	return dir, name, nil
}

// renamed reports err against the path the user typed rather than the single
// component the core saw.
func renamed(err error, p string) error {
	switch shellfs.KindOf(err) {
	case shellfs.NotFound:
		return shellfs.NewNotFound(p)
	case shellfs.IsADirectory:
		return shellfs.NewIsADirectory(p)
	case shellfs.AlreadyExists:
		return shellfs.NewAlreadyExists(p)
	}
	return err
}

func notADirectory(p string) error {
	return shellfs.NewInvalidOperation(p, p+": Not a directory")
}
