package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/Makepad-fr/tada/internal/presenter"
	"github.com/Makepad-fr/tada/internal/ui"
)

// rowItem adapts a display row to bubbles/list.Item.
type rowItem struct {
	row presenter.Row
}

func (i rowItem) FilterValue() string { return i.row.Label() }

// rowDelegate draws one row per line, node by node.
type rowDelegate struct {
	theme  ui.Theme
	inputs map[int]*textinput.Model
	width  int
}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(rowItem)
	if !ok {
		return
	}
	prefix := ui.PadRight("", ansi.StringWidth(d.theme.Cursor))
	if index == m.Index() {
		prefix = d.theme.Selected.Render(d.theme.Cursor)
	}
	line := prefix + d.renderRow(it.row)
	fmt.Fprint(w, ui.Fit(line, d.width))
}

func (d rowDelegate) renderRow(r presenter.Row) string {
	t := d.theme
	parts := make([]string, 0, len(r.Nodes))
	for _, n := range r.Nodes {
		switch n.Kind {
		case presenter.NodeCheckbox:
			if n.Checked {
				parts = append(parts, t.Success.Render(t.BoxChecked))
			} else {
				parts = append(parts, t.Muted.Render(t.BoxUnchecked))
			}
		case presenter.NodeLabel:
			if r.Completed {
				parts = append(parts, t.Done.Render(n.Text))
			} else {
				parts = append(parts, n.Text)
			}
		case presenter.NodeInput:
			view := n.Text
			if in, ok := d.inputs[r.ID]; ok {
				view = in.View()
			}
			parts = append(parts, t.Input.Render(ui.PadRight(view, n.Size)))
		default:
			parts = append(parts, t.Control.Render("["+n.Text+"]"))
		}
	}
	return strings.Join(parts, " ")
}
