package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"mosreport/internal/application"
	"mosreport/internal/application/commands"
	"mosreport/internal/domain"
)

const (
	colSymbol = 0
	colTotal  = 5
	colDCF    = 6
)

// Table writes the report as a bordered text table
func Table(w io.Writer, report *application.Report) error {
	rows := make([][]string, 0, len(report.Rows))
	for _, row := range report.Rows {
		rows = append(rows, row.Fields())
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(Border).
		Headers(domain.Header...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return HeaderCell
			case col == colSymbol:
				return SymbolCell
			case col == colTotal:
				return TotalCell
			case col >= colDCF && row >= 0 && row < len(rows) && rows[row][col] == domain.DefaultBuyPrice:
				return MissingCell
			default:
				return NumberCell
			}
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// Detail writes the per-category breakdown of one entity
func Detail(w io.Writer, detail *commands.EntityDetail) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s %s\n", Label.Render(detail.Entity.Name), MutedText.Render(detail.Entity.Path))
	for _, c := range detail.Categories {
		file := c.File
		if file == "" {
			file = MutedText.Render("(no snapshot)")
		}
		fmt.Fprintf(&sb, "  %-14s %-24s %s  %s\n",
			c.Category,
			file,
			c.Value,
			MutedText.Render(fmt.Sprintf("%d snapshots", detail.History[c.Category])),
		)
	}
	fmt.Fprintf(&sb, "  %-14s %s\n", "total-score", domain.FormatNumber(detail.Row.Total))

	_, err := io.WriteString(w, sb.String())
	return err
}
