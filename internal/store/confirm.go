package store

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer gates destructive operations behind a yes/no answer.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Answer is a Confirmer with a fixed reply. The TUI hands one to Remove
// after its modal has been answered.
type Answer bool

func (a Answer) Confirm(string) bool { return bool(a) }

// PromptConfirmer asks on Out and blocks until a line is read from In.
// Only "y" or "yes" (any case) accepts; anything else, including EOF,
// declines.
type PromptConfirmer struct {
	In  *bufio.Reader
	Out io.Writer
}

func NewPromptConfirmer(in io.Reader, out io.Writer) *PromptConfirmer {
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	return &PromptConfirmer{In: br, Out: out}
}

func (p *PromptConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(p.Out, "%s [y/N] ", prompt)
	line, err := p.In.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(p.Out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
