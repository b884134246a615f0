package standings

import (
	"fmt"
	"strings"
)

// tableHTML renders a well-formed table with a <thead> and n generated body rows.
func tableHTML(headers []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString("<table><thead><tr>")
	for _, h := range headers {
		fmt.Fprintf(&b, "<th>%s</th>", h)
	}
	b.WriteString("</tr></thead><tbody>")
	for _, r := range rows {
		b.WriteString("<tr>")
		for _, c := range r {
			fmt.Fprintf(&b, "<td>%s</td>", c)
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
	return b.String()
}

func genRows(n, width int, prefix string) [][]string {
	rows := make([][]string, n)
	for i := range rows {
		row := make([]string, width)
		for j := range row {
			row[j] = fmt.Sprintf("%s-%d-%d", prefix, i, j)
		}
		rows[i] = row
	}
	return rows
}

func page(body ...string) string {
	return "<html><head><title>Classificació</title></head><body>" + strings.Join(body, "\n") + "</body></html>"
}
