package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table is a titled, static table for plain command output such as the
// timeline printout. Rows are clipped to the header count.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// NewTable returns an empty table.
func NewTable(title string, headers ...string) *Table {
	return &Table{Title: title, Headers: headers}
}

// AddRow appends one row.
func (t *Table) AddRow(cells ...string) {
	if len(cells) > len(t.Headers) {
		cells = cells[:len(t.Headers)]
	}
	t.Rows = append(t.Rows, cells)
}

// View renders the table with the theme's colors. An empty table renders as
// nothing.
func (t *Table) View(styles Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	header := lipgloss.NewStyle().Foreground(styles.Theme.Foreground).Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Foreground(styles.Theme.Foreground).Padding(0, 1)
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.String).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		Headers(t.Headers...).
		Rows(t.Rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	var b strings.Builder
	if t.Title != "" {
		b.WriteString(styles.Heading.Render(t.Title))
		b.WriteString("\n\n")
	}
	b.WriteString(tbl.String())
	b.WriteString("\n")
	return b.String()
}
