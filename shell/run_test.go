package shell

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brettbedarf/shellfs/config"
	"github.com/brettbedarf/shellfs/internal/util"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestRun_Script(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t, nil)
	script := strings.Join([]string{
		"# build a small tree",
		"mkdir docs",
		"cd docs",
		"make readme hello there",
		"cat readme",
		"pwd",
	}, "\n")

	status, err := ts.Run(strings.NewReader(script))
	require.NoError(t, err)
	assert.Equal(t, 0, status)
	assert.Equal(t, "hello there\n/docs\n", ts.out.String())
	assert.Empty(t, ts.errOut.String())
}

func TestRun_ReportsErrorsAndContinues(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t, nil)
	status, err := ts.Run(strings.NewReader("cat nope\nbogus\nmkdir d\nmkdir d\npwd\n"))
	require.NoError(t, err)

	assert.Equal(t, 1, status)
	assert.Equal(t, "/\n", ts.out.String())
	assert.Equal(t, strings.Join([]string{
		"cat: nope: No such file or directory",
		"bogus: No such command",
		"mkdir: d: File exists",
		"",
	}, "\n"), ts.errOut.String())
}

func TestRun_ExitStopsReading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		script string
		status int
	}{
		{"explicit status", "exit 3\npwd\n", 3},
		{"no argument after success", "pwd\nexit\nmkdir x\n", 0},
		{"no argument after failure", "cat x\nexit\n", 1},
		{"non numeric", "exit soon\n", badExitStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestShell(t, nil)
			status, err := ts.Run(strings.NewReader(tt.script))
			require.NoError(t, err)
			assert.Equal(t, tt.status, status)

			exited, exitStatus := ts.Exited()
			assert.True(t, exited)
			assert.Equal(t, tt.status, exitStatus)
			assert.Equal(t, uint64(1), ts.state.LastID(), "commands after exit must not run")
		})
	}
}

func TestRun_InteractivePrompt(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t, &config.ConfigOverride{Prompt: util.Pointer("fs$ ")})
	ts.SetInteractive(true)

	status, err := ts.Run(strings.NewReader("pwd\nprompt >\npwd\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, status)
	assert.Equal(t, "fs$ /\nfs$ > /\n> \n", ts.out.String())
}

func TestRun_Echo(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t, &config.ConfigOverride{Echo: util.Pointer(true)})
	_, err := ts.Run(strings.NewReader("echo hi\npwd\n"))
	require.NoError(t, err)
	assert.Equal(t, "echo hi\nhi\npwd\n/\n", ts.out.String())

	// echo is suppressed for interactive input
	ts = newTestShell(t, &config.ConfigOverride{Echo: util.Pointer(true), Prompt: util.Pointer("")})
	ts.SetInteractive(true)
	_, err = ts.Run(strings.NewReader("echo hi\n"))
	require.NoError(t, err)
	assert.Equal(t, "hi\n\n", ts.out.String())
}

func TestRun_ReadError(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t, nil)
	status, err := ts.Run(failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device gone")
	assert.Equal(t, 1, status)
}

func TestReport_Color(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t, nil)
	ts.Report(errors.New("plain"))
	assert.Equal(t, "plain\n", ts.errOut.String())

	colored := newTestShell(t, nil)
	colored.errColor.EnableColor()
	colored.Report(errors.New("red"))
	assert.Contains(t, colored.errOut.String(), "\x1b[31m")
	assert.Contains(t, colored.errOut.String(), "red")
}
