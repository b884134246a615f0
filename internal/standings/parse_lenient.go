package standings

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// parseLenient builds the full HTML5 tree, which repairs unclosed cells and rows the
// same way a browser would, then walks every <table> in document order.
func parseLenient(markup string) ([]RawTable, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}

	var tables []RawTable
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		b := &tableBuilder{}
		table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			// rows of nested tables belong to their own candidate
			if !tr.Closest("table").IsSelection(table) {
				return
			}
			row := &rowBuilder{section: rowSection(tr)}
			tr.ChildrenFiltered("td, th").Each(func(_ int, td *goquery.Selection) {
				cell := &cellBuilder{
					header:  goquery.NodeName(td) == "th",
					colSpan: parseSpan(td.AttrOr("colspan", "1")),
					rowSpan: parseSpan(td.AttrOr("rowspan", "1")),
				}
				for _, n := range td.Nodes {
					appendNodeText(cell, n)
				}
				row.cells = append(row.cells, cell)
			})
			b.rows = append(b.rows, row)
		})
		tables = append(tables, b.build())
	})
	return tables, nil
}

func rowSection(tr *goquery.Selection) section {
	parent := tr.Parent()
	if parent.Length() == 0 {
		return sectionBody
	}
	if sec, ok := sectionFor(goquery.NodeName(parent)); ok {
		return sec
	}
	return sectionBody
}

// appendNodeText collects the text under n, skipping nested tables and non-content
// elements.
func appendNodeText(cell *cellBuilder, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			cell.appendText(c.Data)
		case html.ElementNode:
			if c.Data == "table" || skippedElement(c.Data) {
				continue
			}
			if c.Data == "br" {
				cell.appendText(" ")
				continue
			}
			appendNodeText(cell, c)
		}
	}
}
