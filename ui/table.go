package ui

import (
	"strings"
	"unicode/utf8"

	"github.com/logrusorgru/aurora"
)

const (
	tableIndent = "  "
	tableGap    = "    "
)

type Column struct {
	Name       string
	AlignRight bool
}

// Cell is a table value. Dim cells are printed in gray when colors are on.
type Cell struct {
	Text string
	Dim  bool
}

// Table lays rows out under a gray header. Widths are measured on the plain
// text so colored cells stay aligned.
func Table(color aurora.Aurora, columns []Column, rows [][]Cell) string {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = utf8.RuneCountInString(col.Name)
	}
	for _, row := range rows {
		for i := range columns {
			if i < len(row) {
				if n := utf8.RuneCountInString(row[i].Text); n > widths[i] {
					widths[i] = n
				}
			}
		}
	}

	var b strings.Builder
	header := make([]Cell, len(columns))
	for i, col := range columns {
		header[i] = Cell{Text: col.Name, Dim: true}
	}
	writeRow(&b, color, columns, widths, header)
	for _, row := range rows {
		writeRow(&b, color, columns, widths, row)
	}
	return b.String()
}

func writeRow(b *strings.Builder, color aurora.Aurora, columns []Column, widths []int, row []Cell) {
	var line strings.Builder
	line.WriteString(tableIndent)
	for i, col := range columns {
		var cell Cell
		if i < len(row) {
			cell = row[i]
		}
		pad := strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell.Text))
		text := cell.Text
		if cell.Dim {
			text = color.BrightBlack(cell.Text).String()
		}
		if i > 0 {
			line.WriteString(tableGap)
		}
		if col.AlignRight {
			line.WriteString(pad + text)
		} else {
			line.WriteString(text + pad)
		}
	}
	b.WriteString(strings.TrimRight(line.String(), " "))
	b.WriteString("\n")
}
