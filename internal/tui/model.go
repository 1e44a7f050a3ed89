// Package tui is the interactive terminal surface: a new-item entry, one
// row per item and the counters, all drawn from the presenter's tree.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tada/internal/presenter"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/ui"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Labels are the captions the TUI shows outside of rows.
type Labels struct {
	Edit, Delete, Save, Cancel string
	Add, Placeholder           string
}

type Options struct {
	Theme         ui.Theme
	Labels        Labels
	ConfirmPrompt string
}

type Model struct {
	p    *presenter.Presenter
	opts Options

	keys  keyMap
	help  help.Model
	entry textinput.Model
	list  list.Model

	// inputs holds the text input of every row in edit mode.
	inputs map[int]*textinput.Model

	listFocused bool
	// confirmID is the row waiting for a delete answer; 0 when none.
	confirmID int

	width, height int
}

func New(p *presenter.Presenter, opts Options) Model {
	if opts.ConfirmPrompt == "" {
		opts.ConfirmPrompt = store.DefaultConfirmPrompt
	}

	entry := textinput.New()
	entry.Prompt = "> "
	entry.Placeholder = opts.Labels.Placeholder
	entry.CharLimit = 0 // unlimited, like the row inputs
	entry.Focus()

	inputs := map[int]*textinput.Model{}
	l := list.New(nil, rowDelegate{theme: opts.Theme, inputs: inputs, width: defaultWidth}, defaultWidth, defaultHeight)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.Styles.PaginationStyle = opts.Theme.Muted

	m := Model{
		p:      p,
		opts:   opts,
		keys:   newKeyMap(opts.Labels),
		help:   help.New(),
		entry:  entry,
		list:   l,
		inputs: inputs,
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.resize()
	m.sync()
	return m
}

// Run starts the program and blocks until the user quits.
func Run(p *presenter.Presenter, opts Options) error {
	_, err := tea.NewProgram(New(p, opts), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.confirmID != 0 {
			return m.updateConfirm(msg)
		}
		if key.Matches(msg, m.keys.SwitchFocus) {
			m.setListFocus(!m.listFocused)
			return m, nil
		}
		if !m.listFocused {
			return m.updateEntry(msg)
		}
		if m.selectedEditing() {
			return m.updateEditing(msg)
		}
		return m.updateList(msg)
	}

	// Anything else (cursor blink) goes to whichever input has focus.
	if m.confirmID != 0 {
		return m, nil
	}
	if !m.listFocused {
		var cmd tea.Cmd
		m.entry, cmd = m.entry.Update(msg)
		return m, cmd
	}
	if id, ok := m.selectedID(); ok {
		if in, ok := m.inputs[id]; ok {
			var cmd tea.Cmd
			*in, cmd = in.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// updateConfirm handles the delete modal; nothing else reacts until it is
// answered.
func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		m.p.Delete(m.confirmID, store.Answer(true))
	case key.Matches(msg, m.keys.No):
		m.p.Delete(m.confirmID, store.Answer(false))
	default:
		return m, nil
	}
	m.confirmID = 0
	m.sync()
	return m, nil
}

func (m Model) updateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Add):
		if m.p.Add(m.entry.Value()) {
			m.entry.SetValue("")
			m.sync()
			m.list.Select(len(m.list.Items()) - 1)
		}
		return m, nil
	case msg.Type == tea.KeyEsc:
		m.setListFocus(true)
		return m, nil
	}
	var cmd tea.Cmd
	m.entry, cmd = m.entry.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id, hasRow := m.selectedID()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NewItem):
		m.setListFocus(false)
	case key.Matches(msg, m.keys.Up):
		m.list.CursorUp()
	case key.Matches(msg, m.keys.Down):
		m.list.CursorDown()
	case key.Matches(msg, m.keys.Top):
		m.list.Select(0)
	case key.Matches(msg, m.keys.Bottom):
		m.list.Select(len(m.list.Items()) - 1)
	case !hasRow:
	case key.Matches(msg, m.keys.Toggle):
		if m.p.Toggle(id) {
			m.sync()
		}
	case key.Matches(msg, m.keys.Edit):
		if m.p.EnterEditMode(id) {
			m.openInput(id)
			m.sync()
			return m, textinput.Blink
		}
	case key.Matches(msg, m.keys.Delete):
		m.askDelete(id)
	}
	m.focusSelectedInput()
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id, _ := m.selectedID()
	in := m.inputs[id]
	switch {
	case key.Matches(msg, m.keys.Save):
		m.p.SetDraft(id, in.Value())
		if m.p.Save(id) {
			m.sync()
		}
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.p.Cancel(id)
		m.sync()
		return m, nil
	case key.Matches(msg, m.keys.EditDelete):
		m.askDelete(id)
		return m, nil
	case msg.Type == tea.KeyUp:
		m.list.CursorUp()
		m.focusSelectedInput()
		return m, nil
	case msg.Type == tea.KeyDown:
		m.list.CursorDown()
		m.focusSelectedInput()
		return m, nil
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	m.p.SetDraft(id, in.Value())
	return m, cmd
}

func (m *Model) askDelete(id int) {
	m.confirmID = id
	m.keys.setMode(modeConfirm, false)
}

func (m *Model) openInput(id int) {
	row, ok := m.p.Tree().Row(id)
	if !ok {
		return
	}
	in := textinput.New()
	in.Prompt = ""
	in.SetValue(row.Draft())
	in.CursorEnd()
	for _, n := range row.Nodes {
		if n.Kind == presenter.NodeInput {
			in.Width = n.Size
		}
	}
	m.inputs[id] = &in
	m.focusSelectedInput()
}

// focusSelectedInput gives keyboard focus to the selected row's input.
func (m *Model) focusSelectedInput() {
	sel, _ := m.selectedID()
	for id, in := range m.inputs {
		if id == sel && m.listFocused {
			in.Focus()
		} else {
			in.Blur()
		}
	}
	m.keys.setMode(m.mode(), len(m.list.Items()) == 0)
}

func (m *Model) setListFocus(on bool) {
	m.listFocused = on
	if on {
		m.entry.Blur()
	} else {
		m.entry.Focus()
	}
	m.focusSelectedInput()
}

// sync rebuilds the list rows from the presenter's tree and drops inputs
// of rows that are no longer editing.
func (m *Model) sync() {
	tree := m.p.Tree()
	items := make([]list.Item, 0, len(tree.Rows))
	editing := map[int]bool{}
	for _, r := range tree.Rows {
		items = append(items, rowItem{row: r})
		if r.Editing() {
			editing[r.ID] = true
		}
	}
	for id := range m.inputs {
		if !editing[id] {
			delete(m.inputs, id)
		}
	}
	m.list.SetItems(items)
	if n := len(items); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
	m.focusSelectedInput()
}

func (m *Model) resize() {
	w := max(m.width-4, 20)
	// title, entry, blank, counters, help, borders
	h := max(m.height-9, 3)
	m.list.SetSize(w, h)
	m.list.SetDelegate(rowDelegate{theme: m.opts.Theme, inputs: m.inputs, width: w})
	m.help.Width = w
	m.entry.Width = max(w-len(m.entry.Prompt)-len(m.opts.Labels.Add)-4, 10)
}

func (m Model) mode() mode {
	switch {
	case m.confirmID != 0:
		return modeConfirm
	case !m.listFocused:
		return modeEntry
	case m.selectedEditing():
		return modeEditing
	}
	return modeList
}

func (m Model) selectedID() (int, bool) {
	it, ok := m.list.SelectedItem().(rowItem)
	if !ok {
		return 0, false
	}
	return it.row.ID, true
}

func (m Model) selectedEditing() bool {
	id, ok := m.selectedID()
	if !ok {
		return false
	}
	_, editing := m.inputs[id]
	return editing
}
