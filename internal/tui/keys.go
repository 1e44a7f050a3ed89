package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down, Top, Bottom key.Binding
	Toggle, Edit, Delete  key.Binding
	NewItem, SwitchFocus  key.Binding
	Add                   key.Binding
	Save, Cancel          key.Binding
	EditDelete            key.Binding
	Yes, No               key.Binding
	Quit, ForceQuit       key.Binding
}

func newKeyMap(labels Labels) keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:         key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Toggle:      key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Edit:        key.NewBinding(key.WithKeys("e"), key.WithHelp("e", labels.Edit)),
		Delete:      key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", labels.Delete)),
		NewItem:     key.NewBinding(key.WithKeys("a", "i"), key.WithHelp("a", "new item")),
		SwitchFocus: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch focus")),
		Add:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", labels.Add)),
		Save:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", labels.Save)),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", labels.Cancel)),
		EditDelete:  key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", labels.Delete)),
		Yes:         key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		No:          key.NewBinding(key.WithKeys("n", "N", "esc", "enter"), key.WithHelp("n/enter", "no")),
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// mode selects which bindings are live and shown in help.
type mode int

const (
	modeEntry mode = iota
	modeList
	modeEditing
	modeConfirm
)

func (k *keyMap) setMode(md mode, empty bool) {
	all := []*key.Binding{
		&k.Up, &k.Down, &k.Top, &k.Bottom, &k.Toggle, &k.Edit, &k.Delete,
		&k.NewItem, &k.Add, &k.Save, &k.Cancel, &k.EditDelete, &k.Yes, &k.No, &k.Quit,
	}
	for _, b := range all {
		b.SetEnabled(false)
	}
	k.SwitchFocus.SetEnabled(md == modeEntry || md == modeList || md == modeEditing)
	switch md {
	case modeEntry:
		k.Add.SetEnabled(true)
	case modeList:
		k.NewItem.SetEnabled(true)
		k.Quit.SetEnabled(true)
		if !empty {
			for _, b := range []*key.Binding{&k.Up, &k.Down, &k.Top, &k.Bottom, &k.Toggle, &k.Edit, &k.Delete} {
				b.SetEnabled(true)
			}
		}
	case modeEditing:
		k.Save.SetEnabled(true)
		k.Cancel.SetEnabled(true)
		k.EditDelete.SetEnabled(true)
	case modeConfirm:
		k.Yes.SetEnabled(true)
		k.No.SetEnabled(true)
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Add, k.Save, k.Cancel, k.EditDelete,
		k.Up, k.Down, k.Toggle, k.Edit, k.Delete, k.NewItem,
		k.Yes, k.No, k.SwitchFocus, k.Quit,
	}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Toggle, k.Edit, k.Delete, k.NewItem},
		{k.Add, k.Save, k.Cancel, k.EditDelete},
		{k.Yes, k.No, k.SwitchFocus, k.Quit},
	}
}
