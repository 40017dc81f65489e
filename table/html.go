package table

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML renders tables as HTML `<table>` elements.
type HTML struct {
	Class string // CSS class of the table element, may be empty
}

// Render writes table t to w as an HTML fragment. The running sum of the
// last row is repeated in a `<tfoot>` section.
func (h HTML) Render(t *Table, w io.Writer) error {
	if t == nil {
		return ErrNoTable
	}
	return html.Render(w, h.Node(t))
}

// Node builds the HTML node tree for table t.
func (h HTML) Node(t *Table) *html.Node {
	table := element(atom.Table)
	if h.Class != "" {
		table.Attr = append(table.Attr, html.Attribute{Key: "class", Val: h.Class})
	}
	head := element(atom.Thead)
	tr := element(atom.Tr)
	for _, heading := range t.Headings() {
		tr.AppendChild(cell(atom.Th, heading))
	}
	head.AppendChild(tr)
	table.AppendChild(head)
	body := element(atom.Tbody)
	for _, row := range t.Rows {
		tr := element(atom.Tr)
		for _, c := range row.cells() {
			tr.AppendChild(cell(atom.Td, c))
		}
		body.AppendChild(tr)
	}
	table.AppendChild(body)
	foot := element(atom.Tfoot)
	tr = element(atom.Tr)
	tr.AppendChild(cell(atom.Th, t.Range.String()))
	tr.AppendChild(cell(atom.Td, ""))
	tr.AppendChild(cell(atom.Td, t.Total().String()))
	foot.AppendChild(tr)
	table.AppendChild(foot)
	return table
}

func element(a atom.Atom) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
}

func cell(a atom.Atom, text string) *html.Node {
	n := element(a)
	if text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
	return n
}
