package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"codetally/internal/domain"
	"codetally/internal/theme"
)

const (
	formatJSON  = "json"
	formatTable = "table"
)

// Contributor table columns
const (
	colRank = iota
	colAuthor
	colAdded
	colDeleted
	colTotal
	colNet
	colCommits
)

type scanOutput struct {
	Outcome      domain.ScanOutcome        `json:"outcome"`
	Repositories []domain.RepositoryReport `json:"repositories"`
	Total        domain.ScanTotals         `json:"total"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderScan writes every repository report followed by the overall totals
func renderScan(w io.Writer, result *domain.ScanResult) {
	if result.Outcome == domain.OutcomeNoRepositories {
		fmt.Fprintln(w, theme.MutedStyle.Render("No git repositories found."))
		return
	}
	for _, report := range result.Reports {
		renderReport(w, report)
	}
	renderTotals(w, result.Totals)
}

// renderReport writes one repository's header and contributor table
func renderReport(w io.Writer, report domain.RepositoryReport) {
	fmt.Fprintf(w, "%s %s\n", theme.RepositoryStyle.Render(report.Ref.Name), theme.MutedStyle.Render(report.Ref.Path))
	fmt.Fprintln(w, theme.MutedStyle.Render(fmt.Sprintf("Branch: %s, %d branches", report.Scope.Display(), len(report.Branches))))

	if len(report.Contributors) == 0 {
		fmt.Fprintf(w, "%s\n\n", theme.MutedStyle.Render("No contributors found."))
		return
	}

	rows := make([][]string, 0, len(report.Contributors))
	for i, c := range report.Contributors {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			c.Author,
			domain.FormatNumber(c.Added),
			domain.FormatNumber(c.Deleted),
			domain.FormatNumber(c.TotalChanges()),
			formatSigned(c.NetLines()),
			domain.FormatNumber(c.Commits),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(theme.BorderStyle).
		Headers("#", "Author", "Added", "Deleted", "Total", "Net", "Commits").
		Rows(rows...).
		StyleFunc(contributorCellStyle)
	fmt.Fprintf(w, "%s\n\n", t.String())
}

func contributorCellStyle(row, col int) lipgloss.Style {
	if row == table.HeaderRow {
		return theme.HeaderStyle
	}
	switch col {
	case colAuthor:
		return theme.CellStyle
	case colAdded:
		return theme.NumberStyle.Inherit(theme.AdditionsStyle)
	case colDeleted:
		return theme.NumberStyle.Inherit(theme.DeletionsStyle)
	default:
		return theme.NumberStyle
	}
}

// renderTotals writes the overall statistics block
func renderTotals(w io.Writer, totals domain.ScanTotals) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(theme.BorderStyle).
		Rows(
			[]string{"Repositories", domain.FormatNumber(totals.RepositoryCount)},
			[]string{"Contributors", domain.FormatNumber(totals.ContributorCount)},
			[]string{"Lines added", domain.FormatNumber(totals.TotalAdded)},
			[]string{"Lines deleted", domain.FormatNumber(totals.TotalDeleted)},
			[]string{"Total changes", domain.FormatNumber(totals.TotalChanges())},
			[]string{"Total commits", domain.FormatNumber(totals.TotalCommits)},
		).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return theme.CellStyle
			}
			return theme.NumberStyle
		})
	fmt.Fprintln(w, theme.TitleStyle.Render("Overall statistics"))
	fmt.Fprintln(w, t.String())
}

// formatSigned formats n with comma separators and an explicit sign
func formatSigned(n int) string {
	if n > 0 {
		return "+" + domain.FormatNumber(n)
	}
	return domain.FormatNumber(n)
}
