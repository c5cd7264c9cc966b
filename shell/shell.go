// Package shell is a line oriented front end over the in-memory filesystem.
// It parses commands, resolves paths and decides how errors are presented;
// all tree semantics live in package filesystem.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/brettbedarf/shellfs/config"
	"github.com/brettbedarf/shellfs/filesystem"
	"github.com/brettbedarf/shellfs/internal/util"
)

// CommandError attributes a failure to the command that produced it
type CommandError struct {
	Cmd string
	Err error
}

func (e *CommandError) Error() string {
	return e.Cmd + ": " + e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

var errNoSuchCommand = errors.New("No such command")

// Shell executes commands against a single filesystem State
type Shell struct {
	state       *filesystem.State
	cfg         *config.Config
	out         io.Writer
	errOut      io.Writer
	errColor    *color.Color
	prompt      string
	interactive bool
	failed      bool // any command failed since the shell started
	exited      bool
	exitStatus  int
}

// New returns a shell writing command output to out and error lines to errOut
func New(state *filesystem.State, cfg *config.Config, out, errOut io.Writer) *Shell {
	errColor := color.New(color.FgRed)
	if !cfg.Color {
		errColor.DisableColor()
	}
	return &Shell{
		state:    state,
		cfg:      cfg,
		out:      out,
		errOut:   errOut,
		errColor: errColor,
		prompt:   cfg.Prompt,
	}
}

// SetInteractive controls whether Run prints the prompt before each command
func (sh *Shell) SetInteractive(interactive bool) {
	sh.interactive = interactive
}

// Prompt returns the current prompt string
func (sh *Shell) Prompt() string {
	return sh.prompt
}

// Exited reports whether an exit command has run, and with which status
func (sh *Shell) Exited() (bool, int) {
	return sh.exited, sh.exitStatus
}

// Execute runs one command line. Blank lines and lines starting with "#" are
// ignored. Failures are returned as *CommandError and not printed.
func (sh *Shell) Execute(line string) error {
	words := strings.Fields(line)
	if len(words) == 0 || strings.HasPrefix(words[0], "#") {
		return nil
	}
	name, args := words[0], words[1:]

	logger := util.GetLogger("shell")
	logger.Trace().Str("cmd", name).Strs("args", args).Str("cwd", sh.state.Cwd().Path()).Msg("Execute called")

	cmd, ok := commands[name]
	if !ok {
		return &CommandError{Cmd: name, Err: errNoSuchCommand}
	}
	if err := cmd(sh, args); err != nil {
		logger.Debug().Err(err).Str("cmd", name).Msg("Command failed")
		return &CommandError{Cmd: name, Err: err}
	}
	return nil
}

// Run reads and executes commands from r until EOF or exit. The returned
// status is the exit command's argument, or 1 if any command failed and 0
// otherwise. The error is only set when reading r fails.
func (sh *Shell) Run(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	for {
		if sh.interactive {
			fmt.Fprint(sh.out, sh.prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if sh.cfg.Echo && !sh.interactive {
			fmt.Fprintln(sh.out, line)
		}
		if err := sh.Execute(line); err != nil {
			sh.Report(err)
		}
		if sh.exited {
			return sh.exitStatus, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return 1, fmt.Errorf("failed to read commands: %w", err)
	}
	if sh.interactive {
		fmt.Fprintln(sh.out)
	}
	return sh.status(), nil
}

// Report writes err as one error line and marks the session as failed
func (sh *Shell) Report(err error) {
	sh.failed = true
	fmt.Fprintln(sh.errOut, sh.errColor.Sprint(err.Error()))
}

func (sh *Shell) status() int {
	if sh.failed {
		return 1
	}
	return 0
}
