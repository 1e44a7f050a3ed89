package tui

import (
	"fmt"
	"strings"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/ui"
)

const progressWidth = 20

func (m Model) View() string {
	t := m.opts.Theme
	var b strings.Builder

	b.WriteString(t.Title.Render("Todos"))
	b.WriteString("\n")

	entry := m.entry.View()
	add := "[" + m.opts.Labels.Add + "]"
	if m.listFocused {
		entry = t.Muted.Render(entry)
		add = t.Muted.Render(add)
	} else {
		add = t.Control.Render(add)
	}
	b.WriteString(entry + " " + add)
	b.WriteString("\n\n")

	if len(m.list.Items()) == 0 {
		b.WriteString(t.Muted.Render("Nothing to do."))
	} else {
		b.WriteString(m.list.View())
	}
	b.WriteString("\n")

	b.WriteString(counters(t, m.p.Counts()))
	b.WriteString("\n")

	if m.confirmID != 0 {
		b.WriteString(ui.Panel(t, []string{
			t.Error.Render(m.opts.ConfirmPrompt),
			t.Muted.Render("[y/N]"),
		}))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return ui.Panel(t, []string{b.String()})
}

// counters renders the three totals and a completion bar.
func counters(t ui.Theme, c model.Counts) string {
	return fmt.Sprintf("%s %d  %s %d  %s %d  %s",
		t.Accent.Render("All"), c.All,
		t.Success.Render(t.SymDone+" Completed"), c.Completed,
		t.Pending.Render(t.SymPending+" Active"), c.Active,
		t.Muted.Render(ui.ProgressBar(c.Completed, c.All, progressWidth)),
	)
}
