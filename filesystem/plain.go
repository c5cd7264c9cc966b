package filesystem

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/brettbedarf/shellfs"
	"github.com/brettbedarf/shellfs/internal/util"
)

// PlainFile stores its content as an ordered sequence of tokens
type PlainFile struct {
	content []string
}

func (*PlainFile) fileType() shellfs.FileType { return shellfs.PlainType }

// Size returns the sum of token lengths. Separators are not counted.
func (f *PlainFile) Size() int {
	total := 0
	for _, tok := range f.content {
		total += len(tok)
	}
	return total
}

// Text returns the tokens joined by single spaces
func (f *PlainFile) Text() string {
	return strings.Join(f.content, " ")
}

// Tokens returns a copy of the stored tokens
func (f *PlainFile) Tokens() []string {
	return slices.Clone(f.content)
}

// Read writes the content followed by a newline to w. Empty content writes an empty line.
func (f *PlainFile) Read(w io.Writer) error {
	_, err := fmt.Fprintln(w, f.Text())
	return err
}

// Write replaces the entire content with tokens
func (f *PlainFile) Write(tokens []string) {
	logger := util.GetLogger("filesystem.PlainFile")
	logger.Trace().Strs("tokens", tokens).Msg("Write called")

	f.content = slices.Clone(tokens)
}
