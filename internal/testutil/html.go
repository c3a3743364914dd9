package testutil

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseHTML parses a rendered page.
func ParseHTML(t *testing.T, body string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// FindAll returns every element below n with the given tag, in document order.
func FindAll(n *html.Node, tag atom.Atom) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

// Find returns the first element below n with the given tag, or nil.
func Find(n *html.Node, tag atom.Atom) *html.Node {
	if all := FindAll(n, tag); len(all) > 0 {
		return all[0]
	}
	return nil
}

// Text returns the trimmed text content of n.
func Text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

// Attr returns the value of attribute key on n.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// TableBodies returns the cell text of every <tbody> row, one slice per
// table on the page.
func TableBodies(t *testing.T, body string) [][][]string {
	t.Helper()
	doc := ParseHTML(t, body)
	var tables [][][]string
	for _, tb := range FindAll(doc, atom.Tbody) {
		rows := [][]string{}
		for _, tr := range FindAll(tb, atom.Tr) {
			var cells []string
			for _, td := range FindAll(tr, atom.Td) {
				cells = append(cells, Text(td))
			}
			rows = append(rows, cells)
		}
		tables = append(tables, rows)
	}
	return tables
}

// TableBody returns the rows of the only table on the page.
func TableBody(t *testing.T, body string) [][]string {
	t.Helper()
	tables := TableBodies(t, body)
	if len(tables) != 1 {
		t.Fatalf("expected exactly one table, found %d", len(tables))
	}
	return tables[0]
}

// SidebarLinks returns the anchors inside the page's <aside>.
func SidebarLinks(t *testing.T, body string) []*html.Node {
	t.Helper()
	aside := Find(ParseHTML(t, body), atom.Aside)
	if aside == nil {
		t.Fatal("page has no sidebar")
	}
	return FindAll(aside, atom.A)
}

// Heading returns the text of the first <h1> in <main>, the page title.
func Heading(t *testing.T, body string) string {
	t.Helper()
	main := Find(ParseHTML(t, body), atom.Main)
	if main == nil {
		t.Fatal("page has no <main>")
	}
	h := Find(main, atom.H1)
	if h == nil {
		return ""
	}
	return Text(h)
}
