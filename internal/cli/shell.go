package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/Makepad-fr/tada/internal/presenter"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/ui"
)

// errQuit ends the session loop.
var errQuit = errors.New("quit")

// Shell is a line-oriented session over one presenter. It reads one
// command per line; the list lives only as long as the session.
type Shell struct {
	p       *presenter.Presenter
	in      *bufio.Reader
	out     io.Writer
	errOut  io.Writer
	theme   ui.Theme
	confirm store.Confirmer

	// Prompt is printed before each line when non-empty.
	Prompt string
}

// NewShell wires a shell to its streams. With autoConfirm deletes are
// accepted without asking; otherwise they block on a y/N answer read
// from in.
func NewShell(p *presenter.Presenter, in io.Reader, out, errOut io.Writer, theme ui.Theme, autoConfirm bool) *Shell {
	br := bufio.NewReader(in)
	var c store.Confirmer = store.NewPromptConfirmer(br, out)
	if autoConfirm {
		c = store.Answer(true)
	}
	return &Shell{p: p, in: br, out: out, errOut: errOut, theme: theme, confirm: c}
}

// Run processes lines until EOF or quit.
func (sh *Shell) Run() error {
	for {
		if sh.Prompt != "" {
			fmt.Fprint(sh.out, sh.Prompt)
		}
		line, err := sh.in.ReadString('\n')
		if line != "" {
			if derr := sh.Exec(line); derr != nil {
				if errors.Is(derr, errQuit) {
					return nil
				}
				ui.Fail(sh.errOut, sh.theme, derr.Error())
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}
	}
}

// Exec runs a single command line. Usage mistakes are reported on errOut;
// blank text and unknown ids are silently ignored.
func (sh *Shell) Exec(line string) error {
	cmd, rest := cutWord(line)
	if cmd == "" {
		return nil
	}
	a := strings.Fields(rest)

	switch cmd {
	case "help", "?":
		sh.printHelp()

	case "quit", "exit", "q":
		return errQuit

	case "ls", "list":
		sh.list()

	case "count":
		c := sh.p.Counts()
		fmt.Fprintf(sh.out, "all=%d completed=%d active=%d\n", c.All, c.Completed, c.Active)

	case "tree":
		b, err := json.MarshalIndent(sh.p.Tree(), "", "  ")
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		fmt.Fprintln(sh.out, string(b))

	case "add":
		if sh.p.Add(rest) {
			rows := sh.p.Tree().Rows
			ui.OK(sh.out, sh.theme, fmt.Sprintf("added #%d", rows[len(rows)-1].ID))
		}

	case "done", "toggle":
		id, ok := sh.parseID(cmd, a, 1)
		if !ok {
			return nil
		}
		if sh.p.Toggle(id) {
			ui.OK(sh.out, sh.theme, "toggled")
		}

	case "edit":
		if len(a) == 0 {
			ui.Fail(sh.errOut, sh.theme, "usage: edit <id> <text...>")
			return nil
		}
		idArg, text := cutWord(rest)
		id, ok := sh.parseID(cmd, []string{idArg}, 1)
		if !ok {
			return nil
		}
		sh.p.EnterEditMode(id)
		sh.p.SetDraft(id, text)
		if sh.p.Save(id) {
			ui.OK(sh.out, sh.theme, "renamed")
			return nil
		}
		sh.p.Cancel(id)

	case "rm", "delete":
		id, ok := sh.parseID(cmd, a, 1)
		if !ok {
			return nil
		}
		if sh.p.Delete(id, sh.confirm) {
			ui.OK(sh.out, sh.theme, "removed")
		}

	default:
		ui.Fail(sh.errOut, sh.theme, "unknown command: "+cmd+" (try help)")
	}
	return nil
}

// cutWord splits the first whitespace-delimited word off s and returns
// the remainder untouched.
func cutWord(s string) (word, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}

func (sh *Shell) parseID(cmd string, a []string, want int) (int, bool) {
	if len(a) != want {
		ui.Fail(sh.errOut, sh.theme, "usage: "+cmd+" <id>")
		return 0, false
	}
	n, err := strconv.Atoi(a[0])
	if err != nil {
		ui.Fail(sh.errOut, sh.theme, cmd+": not a number: "+a[0])
		return 0, false
	}
	return n, true
}

func (sh *Shell) list() {
	t := sh.theme
	tree := sh.p.Tree()
	if len(tree.Rows) == 0 {
		fmt.Fprintln(sh.out, t.Muted.Render("no items"))
	}
	for _, r := range tree.Rows {
		box, label := t.Muted.Render(t.BoxUnchecked), r.Label()
		if r.Completed {
			box, label = t.Success.Render(t.BoxChecked), t.Done.Render(label)
		}
		fmt.Fprintf(sh.out, "%s %s %s\n", t.Muted.Render(fmt.Sprintf("%3d.", r.ID)), box, label)
	}
	fmt.Fprintln(sh.out, counters(t, tree))
}

func counters(t ui.Theme, tree presenter.Tree) string {
	c := tree.Counts
	return fmt.Sprintf("%s %d  %s %d  %s %d",
		t.Accent.Render("all"), c.All,
		t.Success.Render("completed"), c.Completed,
		t.Pending.Render("active"), c.Active,
	)
}

func (sh *Shell) printHelp() {
	fmt.Fprint(sh.out, `Commands:
  add <text...>      Add a new item (text can be multiple words)
  ls                 List items with their ids
  done <id>          Toggle completion of an item
  edit <id> <text>   Replace the text of an item
  rm <id>            Remove an item (asks for confirmation)
  count              Print all/completed/active totals
  tree               Print the display tree as JSON
  help               Show this help
  quit               End the session (the list is not saved)
`)
}
