package export_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/export"
	"taskboard/internal/kpi"
	"taskboard/internal/model"
)

func sampleBoard() model.Board {
	now := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	return model.Board{
		ID:          uuid.New(),
		Title:       "Sprint",
		Description: "two-week sprint",
		Columns: []model.Column{
			{
				ID:    uuid.New(),
				Title: "To Do",
				Color: model.ColorTodo,
				Cards: []model.Card{
					{
						ID:          uuid.New(),
						Title:       "write tests",
						Description: "for the export layer",
						Priority:    model.PriorityHigh,
						Tags:        []string{"go", "testing"},
						CreatedAt:   now,
						UpdatedAt:   now,
					},
				},
			},
			{ID: uuid.New(), Title: "Done", Color: model.ColorDone, Cards: []model.Card{}},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func sampleKPIs(boardID uuid.UUID) kpi.BoardKPIs {
	return kpi.BoardKPIs{
		BoardID:            boardID,
		BoardTitle:         "Sprint",
		TotalCards:         1,
		CompletedCards:     0,
		CompletionRate:     0,
		AverageTimePerCard: 2.5,
		ProductivityScore:  41,
		PriorityDistribution: kpi.PriorityCount{
			High: 1,
		},
	}
}

func TestWorkbook_SheetLayout(t *testing.T) {
	board := sampleBoard()

	f, err := export.Workbook(board, sampleKPIs(board.ID))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"KPIs", "To Do", "Done"}, f.GetSheetList())
}

func TestWorkbook_SummaryValues(t *testing.T) {
	board := sampleBoard()

	f, err := export.Workbook(board, sampleKPIs(board.ID))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("KPIs", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Sprint", title)

	total, err := f.GetCellValue("KPIs", "B3")
	require.NoError(t, err)
	assert.Equal(t, "1", total)

	high, err := f.GetCellValue("KPIs", "B8")
	require.NoError(t, err)
	assert.Equal(t, "1", high)
}

func TestWorkbook_CardRows(t *testing.T) {
	board := sampleBoard()

	f, err := export.Workbook(board, sampleKPIs(board.ID))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("To Do", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Title", header)

	title, err := f.GetCellValue("To Do", "A2")
	require.NoError(t, err)
	assert.Equal(t, "write tests", title)

	tags, err := f.GetCellValue("To Do", "D2")
	require.NoError(t, err)
	assert.Equal(t, "go, testing", tags)

	created, err := f.GetCellValue("To Do", "E2")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-15T10:30:00Z", created)
}

func TestWorkbook_DuplicateColumnTitles(t *testing.T) {
	board := sampleBoard()
	board.Columns = []model.Column{
		{ID: uuid.New(), Title: "Backlog", Cards: []model.Card{}},
		{ID: uuid.New(), Title: "Backlog", Cards: []model.Card{}},
		{ID: uuid.New(), Title: "Backlog", Cards: []model.Card{}},
	}

	f, err := export.Workbook(board, sampleKPIs(board.ID))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t,
		[]string{"KPIs", "Backlog", "Backlog 2", "Backlog 3"},
		f.GetSheetList())
}

func TestWorkbook_SanitizesColumnTitles(t *testing.T) {
	board := sampleBoard()
	board.Columns = []model.Column{
		{ID: uuid.New(), Title: "In/Out: review?", Cards: []model.Card{}},
		{ID: uuid.New(), Title: "", Cards: []model.Card{}},
	}

	f, err := export.Workbook(board, sampleKPIs(board.ID))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t,
		[]string{"KPIs", "In_Out_ review_", "Column"},
		f.GetSheetList())
}
