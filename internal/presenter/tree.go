package presenter

import "github.com/Makepad-fr/tada/internal/model"

// NodeKind identifies one element of a row.
type NodeKind string

const (
	NodeCheckbox NodeKind = "checkbox"
	NodeLabel    NodeKind = "label"
	NodeInput    NodeKind = "input"
	NodeEdit     NodeKind = "edit"
	NodeSave     NodeKind = "save"
	NodeCancel   NodeKind = "cancel"
	NodeDelete   NodeKind = "delete"
)

// Node is a leaf of the display tree. Which fields are meaningful depends
// on Kind: Checked for checkboxes, Text for labels/inputs/buttons, Size for
// inputs.
type Node struct {
	Kind    NodeKind `json:"kind"`
	Text    string   `json:"text,omitempty"`
	Checked bool     `json:"checked,omitempty"`
	Size    int      `json:"size,omitempty"`
}

// Row is the display of one item.
// Viewing:  checkbox, label, edit, delete.
// Editing:  checkbox, input, save, cancel, delete.
type Row struct {
	ID        int    `json:"id"`
	Completed bool   `json:"completed"`
	Nodes     []Node `json:"nodes"`
}

// Tree is everything the list surface shows.
type Tree struct {
	Rows   []Row        `json:"rows"`
	Counts model.Counts `json:"counts"`
}

// Editing reports whether the row currently shows a text input.
func (r Row) Editing() bool {
	_, ok := r.node(NodeInput)
	return ok
}

// Draft is the input's value while editing.
func (r Row) Draft() string {
	n, _ := r.node(NodeInput)
	return n.Text
}

// Label is the item text shown while viewing.
func (r Row) Label() string {
	n, _ := r.node(NodeLabel)
	return n.Text
}

func (r Row) node(k NodeKind) (Node, bool) {
	for _, n := range r.Nodes {
		if n.Kind == k {
			return n, true
		}
	}
	return Node{}, false
}

// Row returns the row for id.
func (t Tree) Row(id int) (Row, bool) {
	i := t.index(id)
	if i < 0 {
		return Row{}, false
	}
	return t.Rows[i], true
}

func (t Tree) index(id int) int {
	for i, r := range t.Rows {
		if r.ID == id {
			return i
		}
	}
	return -1
}
