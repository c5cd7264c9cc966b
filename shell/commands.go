package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/brettbedarf/shellfs"
	"github.com/brettbedarf/shellfs/filesystem"
)

type command func(sh *Shell, args []string) error

var commands = map[string]command{
	"cat":    (*Shell).cat,
	"cd":     (*Shell).cd,
	"echo":   (*Shell).echo,
	"exit":   (*Shell).exit,
	"ln":     (*Shell).ln,
	"ls":     (*Shell).ls,
	"lsr":    (*Shell).lsr,
	"make":   (*Shell).makeFile,
	"mkdir":  (*Shell).mkdir,
	"prompt": (*Shell).setPrompt,
	"pwd":    (*Shell).pwd,
	"rm":     (*Shell).rm,
	"stat":   (*Shell).stat,
}

var errMissingOperand = errors.New("missing operand")

// exit status for a non-numeric exit argument
const badExitStatus = 127

func (sh *Shell) cat(args []string) error {
	if len(args) == 0 {
		return errMissingOperand
	}
	for _, p := range args {
		dir, name, err := sh.resolveParent(p)
		if err != nil {
			return err
		}
		if name == "" {
			return shellfs.NewIsADirectory(p)
		}
		if err := dir.ReadEntry(sh.out, name); err != nil {
			return renamed(err, p)
		}
	}
	return nil
}

func (sh *Shell) cd(args []string) error {
	if len(args) == 0 {
		return sh.state.SetCwd(sh.state.Root())
	}
	if len(args) > 1 {
		return errors.New("too many arguments")
	}
	n, err := sh.resolve(args[0])
	if err != nil {
		return err
	}
	if !n.IsDir() {
		return notADirectory(args[0])
	}
	return sh.state.SetCwd(n)
}

func (sh *Shell) echo(args []string) error {
	_, err := fmt.Fprintln(sh.out, strings.Join(args, " "))
	return err
}

func (sh *Shell) exit(args []string) error {
	status := sh.status()
	if len(args) > 0 {
		var err error
		if status, err = strconv.Atoi(args[0]); err != nil {
			status = badExitStatus
		}
	}
	sh.exited = true
	sh.exitStatus = status
	return nil
}

// ln adds a second name for an existing plain file
func (sh *Shell) ln(args []string) error {
	if len(args) != 2 {
		return errMissingOperand
	}
	target, err := sh.resolve(args[0])
	if err != nil {
		return err
	}
	dir, name, err := sh.resolveParent(args[1])
	if err != nil {
		return err
	}
	return renamed(dir.Link(name, target), args[1])
}

func (sh *Shell) ls(args []string) error {
	if len(args) == 0 {
		args = []string{"."}
	}
	for _, p := range args {
		n, err := sh.resolve(p)
		if err != nil {
			return err
		}
		if err := sh.list(p, n); err != nil {
			return err
		}
	}
	return nil
}

// lsr lists each directory and then, depth first in name order, every
// directory below it.
func (sh *Shell) lsr(args []string) error {
	if len(args) == 0 {
		args = []string{"."}
	}
	for _, p := range args {
		n, err := sh.resolve(p)
		if err != nil {
			return err
		}
		if err := sh.listRecursive(p, n); err != nil {
			return err
		}
	}
	return nil
}

func (sh *Shell) listRecursive(p string, n *filesystem.Node) error {
	if err := sh.list(p, n); err != nil {
		return err
	}
	dir, ok := n.Dir()
	if !ok {
		return nil
	}
	for _, name := range dir.Names() {
		child, err := dir.Lookup(name)
		if err != nil {
			return err
		}
		if child.IsDir() {
			if err := sh.listRecursive(child.Path(), child); err != nil {
				return err
			}
		}
	}
	return nil
}

// list prints a directory's path followed by its entries, or a single line
// for a plain file.
func (sh *Shell) list(p string, n *filesystem.Node) error {
	if !n.IsDir() {
		_, err := fmt.Fprintln(sh.out, filesystem.Entry{Name: p, Node: n})
		return err
	}
	entries, err := n.ListEntries()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(sh.out, "%s:\n", n.Path()); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintln(sh.out, e); err != nil {
			return err
		}
	}
	return nil
}

// makeFile creates a file holding the remaining words, or replaces the content
// of an existing one.
func (sh *Shell) makeFile(args []string) error {
	if len(args) == 0 {
		return errMissingOperand
	}
	p, words := args[0], args[1:]
	dir, name, err := sh.resolveParent(p)
	if err != nil {
		return err
	}
	if name == "" {
		return shellfs.NewIsADirectory(p)
	}
	existing, err := dir.Lookup(name)
	switch {
	case err == nil && existing.IsDir():
		return shellfs.NewIsADirectory(p)
	case err == nil:
		return existing.Write(words)
	case shellfs.KindOf(err) == shellfs.NotFound:
		_, err = dir.CreateFile(name, words)
		return renamed(err, p)
	default:
		return err
	}
}

func (sh *Shell) mkdir(args []string) error {
	if len(args) == 0 {
		return errMissingOperand
	}
	for _, p := range args {
		dir, name, err := sh.resolveParent(p)
		if err != nil {
			return err
		}
		if name == "" {
			return shellfs.NewAlreadyExists(p)
		}
		if _, err := dir.MakeDirectory(name); err != nil {
			return renamed(err, p)
		}
	}
	return nil
}

func (sh *Shell) setPrompt(args []string) error {
	sh.prompt = strings.Join(args, " ") + " "
	return nil
}

func (sh *Shell) pwd(args []string) error {
	_, err := fmt.Fprintln(sh.out, sh.state.Cwd().Path())
	return err
}

func (sh *Shell) rm(args []string) error {
	if len(args) == 0 {
		return errMissingOperand
	}
	for _, p := range args {
		dir, name, err := sh.resolveParent(p)
		if err != nil {
			return err
		}
		if name == "" {
			return shellfs.NewInvalidOperation(p, p+": cannot remove root directory")
		}
		if err := dir.Remove(name); err != nil {
			return renamed(err, p)
		}
	}
	return nil
}

func (sh *Shell) stat(args []string) error {
	if len(args) == 0 {
		return errMissingOperand
	}
	for _, p := range args {
		n, err := sh.resolve(p)
		if err != nil {
			return err
		}
		attr := n.Stat()
		if _, err := fmt.Fprintf(sh.out, "%s: ino=%d type=%s size=%d nlink=%d\n",
			p, attr.Ino, n.Type(), attr.Size, attr.Nlink); err != nil {
			return err
		}
	}
	return nil
}
