package export

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/javiermolinar/allot/internal/layout"
)

// HTML renders the grid as a standalone HTML table.
type HTML struct {
	Title string
}

// NewHTML creates an HTML renderer with the given page title.
func NewHTML(title string) *HTML {
	if title == "" {
		title = DefaultSheetName
	}
	return &HTML{Title: title}
}

// Format returns "html".
func (h *HTML) Format() string { return "html" }

// Extension returns "html".
func (h *HTML) Extension() string { return "html" }

// Render writes the HTML document to w.
func (h *HTML) Render(w io.Writer, g *layout.Grid) error {
	var b strings.Builder

	// One class per distinct style, in first-seen order.
	classes := make(map[layout.Style]string)
	var order []layout.Style
	for _, row := range g.Cells {
		for _, cell := range row {
			if _, ok := classes[cell.Style]; !ok {
				classes[cell.Style] = fmt.Sprintf("cellstyle%d", len(order)+1)
				order = append(order, cell.Style)
			}
		}
	}

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(h.Title))
	b.WriteString("<style>\n")
	b.WriteString(".table { border-collapse: collapse; table-layout: fixed; }\n")
	b.WriteString(".table td { padding: 4px 8px; overflow: hidden; }\n")
	for _, st := range order {
		fmt.Fprintf(&b, ".%s { %s }\n", classes[st], styleToCSS(st))
	}
	b.WriteString("</style>\n</head>\n<body>\n")

	b.WriteString("<table class=\"table\">\n")
	if len(g.ColWidths) > 0 {
		b.WriteString("<colgroup>")
		for _, w := range g.ColWidths {
			fmt.Fprintf(&b, "<col style=\"width:%.0fch\">", w)
		}
		b.WriteString("</colgroup>\n")
	}

	for r, row := range g.Cells {
		b.WriteString("<tr>")
		for c, cell := range row {
			if g.Covered(r, c) {
				continue
			}
			b.WriteString("<td class=\"")
			b.WriteString(classes[cell.Style])
			b.WriteString("\"")
			if m, ok := g.MergeAt(r, c); ok {
				if m.Cols() > 1 {
					fmt.Fprintf(&b, " colspan=\"%d\"", m.Cols())
				}
				if m.Rows() > 1 {
					fmt.Fprintf(&b, " rowspan=\"%d\"", m.Rows())
				}
			}
			b.WriteString(">")
			b.WriteString(html.EscapeString(cell.String()))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n</body>\n</html>\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing html: %w", err)
	}
	return nil
}

// styleToCSS converts a cell style to CSS declarations.
func styleToCSS(s layout.Style) string {
	var b strings.Builder
	if s.Bold {
		b.WriteString("font-weight:bold;")
	}
	if s.Border {
		b.WriteString("border:1px solid #000;")
	}
	if s.Centered {
		b.WriteString("text-align:center;vertical-align:middle;")
	}
	// Every cell carries a style class, so wrapping is decided here only.
	if s.Wrap {
		b.WriteString("white-space:normal;")
	} else {
		b.WriteString("white-space:nowrap;")
	}
	return b.String()
}
