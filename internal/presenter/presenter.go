// Package presenter turns the item store into a display tree and routes
// user actions back to the store.
//
// Every accepted mutation rebuilds the whole tree, which also drops any
// edit in progress on other rows. Entering edit mode is the one change
// that patches a single row in place.
package presenter

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store"
)

// minInputSize is the smallest edit input, in cells.
const minInputSize = 4

// Labels are the captions of the row controls.
type Labels struct {
	Edit   string
	Delete string
	Save   string
	Cancel string
}

func DefaultLabels() Labels {
	return Labels{Edit: "edit", Delete: "delete", Save: "save", Cancel: "cancel"}
}

type Presenter struct {
	store  *store.Store
	labels Labels
	logger *log.Logger
	tree   Tree
}

type Option func(*Presenter)

func WithLabels(l Labels) Option {
	return func(p *Presenter) { p.labels = l }
}

func WithLogger(l *log.Logger) Option {
	return func(p *Presenter) {
		if l != nil {
			p.logger = l
		}
	}
}

// New builds a presenter over s and performs the initial render.
func New(s *store.Store, opts ...Option) *Presenter {
	p := &Presenter{
		store:  s,
		labels: DefaultLabels(),
		logger: log.New(io.Discard),
	}
	for _, o := range opts {
		o(p)
	}
	p.Render()
	return p
}

// Tree returns a copy of the current display tree.
func (p *Presenter) Tree() Tree {
	rows := make([]Row, len(p.tree.Rows))
	for i, r := range p.tree.Rows {
		r.Nodes = slices.Clone(r.Nodes)
		rows[i] = r
	}
	return Tree{Rows: rows, Counts: p.tree.Counts}
}

func (p *Presenter) Counts() model.Counts { return p.tree.Counts }

// Render discards the current tree and rebuilds it from the store.
func (p *Presenter) Render() {
	items := p.store.Items()
	rows := make([]Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, p.viewRow(it))
	}
	p.tree = Tree{Rows: rows, Counts: p.store.Counts()}
}

func (p *Presenter) viewRow(it model.Item) Row {
	return Row{
		ID:        it.ID,
		Completed: it.Completed,
		Nodes: []Node{
			{Kind: NodeCheckbox, Checked: it.Completed},
			{Kind: NodeLabel, Text: it.Text},
			{Kind: NodeEdit, Text: p.labels.Edit},
			{Kind: NodeDelete, Text: p.labels.Delete},
		},
	}
}

func (p *Presenter) Add(raw string) bool {
	if !p.store.Add(raw) {
		return false
	}
	items := p.store.Items()
	it := items[len(items)-1]
	p.logger.Debug("item added", "id", it.ID, "text", it.Text, "count", len(items))
	p.Render()
	return true
}

func (p *Presenter) Toggle(id int) bool {
	if !p.store.Toggle(id) {
		return false
	}
	it, _ := p.store.Get(id)
	p.logger.Debug("item toggled", "id", id, "completed", it.Completed)
	p.Render()
	return true
}

// Delete removes the item once c confirms.
func (p *Presenter) Delete(id int, c store.Confirmer) bool {
	if !p.store.Remove(id, c) {
		return false
	}
	p.logger.Debug("item removed", "id", id)
	p.Render()
	return true
}

// EnterEditMode swaps the row's label and edit control for a text input
// and save/cancel controls. Other rows are left alone. A row that is
// already editing keeps its current input.
func (p *Presenter) EnterEditMode(id int) bool {
	i := p.tree.index(id)
	if i < 0 || p.tree.Rows[i].Editing() {
		return false
	}
	row := p.tree.Rows[i]
	text := row.Label()
	row.Nodes = []Node{
		{Kind: NodeCheckbox, Checked: row.Completed},
		{Kind: NodeInput, Text: text, Size: max(minInputSize, ansi.StringWidth(text))},
		{Kind: NodeSave, Text: p.labels.Save},
		{Kind: NodeCancel, Text: p.labels.Cancel},
		{Kind: NodeDelete, Text: p.labels.Delete},
	}
	p.tree.Rows[i] = row
	return true
}

// SetDraft stores what the user has typed into an editing row.
func (p *Presenter) SetDraft(id int, text string) {
	i := p.tree.index(id)
	if i < 0 {
		return
	}
	for j, n := range p.tree.Rows[i].Nodes {
		if n.Kind == NodeInput {
			p.tree.Rows[i].Nodes[j].Text = text
		}
	}
}

// Save commits the row's draft. A blank draft leaves the row editing.
func (p *Presenter) Save(id int) bool {
	row, ok := p.tree.Row(id)
	if !ok || !row.Editing() {
		return false
	}
	if !p.store.Rename(id, row.Draft()) {
		return false
	}
	it, _ := p.store.Get(id)
	p.logger.Debug("item renamed", "id", id, "text", it.Text)
	p.Render()
	return true
}

// Cancel throws away every unsaved edit by rendering from the store.
func (p *Presenter) Cancel(id int) {
	p.logger.Debug("edit cancelled", "id", id)
	p.Render()
}
