// Package export renders a board and its KPIs into an xlsx workbook. It is
// a read-only consumer: one sheet of summary metrics plus one sheet per
// column listing that column's cards.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"taskboard/internal/kpi"
	"taskboard/internal/model"
)

const summarySheet = "KPIs"

var cardHeader = []string{"Title", "Description", "Priority", "Tags", "Created", "Updated"}

// Workbook builds the export workbook for one board. The caller owns the
// returned file and is responsible for closing it.
func Workbook(board model.Board, kpis kpi.BoardKPIs) (*excelize.File, error) {
	f := excelize.NewFile()

	// The default sheet becomes the summary.
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if err := writeSummary(f, board, kpis); err != nil {
		return nil, err
	}

	used := map[string]int{summarySheet: 1}
	for _, col := range board.Columns {
		name := sheetName(col.Title, used)
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %q: %w", name, err)
		}
		if err := writeColumn(f, name, col); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func writeSummary(f *excelize.File, board model.Board, kpis kpi.BoardKPIs) error {
	rows := [][]any{
		{"Board", board.Title},
		{"Description", board.Description},
		{"Total Cards", kpis.TotalCards},
		{"Completed Cards", kpis.CompletedCards},
		{"Completion Rate (%)", kpis.CompletionRate},
		{"Average Time per Card (days)", kpis.AverageTimePerCard},
		{"Productivity Score", kpis.ProductivityScore},
		{"High Priority", kpis.PriorityDistribution.High},
		{"Medium Priority", kpis.PriorityDistribution.Medium},
		{"Low Priority", kpis.PriorityDistribution.Low},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}
	return nil
}

func writeColumn(f *excelize.File, sheet string, col model.Column) error {
	header := make([]any, len(cardHeader))
	for i, h := range cardHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, card := range col.Cards {
		row := []any{
			card.Title,
			card.Description,
			string(card.Priority),
			strings.Join(card.Tags, ", "),
			card.CreatedAt.Format(time.RFC3339),
			card.UpdatedAt.Format(time.RFC3339),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write card row: %w", err)
		}
	}
	return nil
}

// sheetName maps a column title to a legal, unique sheet name. Sheet names
// are capped at 31 characters and may not contain []:*?/\ characters;
// duplicate titles get a numeric suffix.
func sheetName(title string, used map[string]int) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\':
			return '_'
		}
		return r
	}, title)
	if name == "" {
		name = "Column"
	}
	if r := []rune(name); len(r) > 28 {
		name = string(r[:28])
	}

	base := name
	for n := used[base]; ; n++ {
		if n > 0 {
			name = fmt.Sprintf("%s %d", base, n+1)
		}
		if used[name] == 0 {
			used[base] = n + 1
			used[name] = 1
			return name
		}
	}
}
