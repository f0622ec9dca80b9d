package store

import (
	"time"

	"github.com/google/uuid"

	"taskboard/internal/model"
)

// defaultSnapshot builds the seed state used when no prior data exists: one
// board with the three standard columns, set active.
func defaultSnapshot() model.Snapshot {
	now := time.Now()
	board := model.Board{
		ID:          uuid.New(),
		Title:       "Main Board",
		Description: "Default system board",
		Columns: []model.Column{
			{ID: uuid.New(), Title: "To Do", Cards: []model.Card{}, Color: model.ColorTodo, CreatedAt: now, UpdatedAt: now},
			{ID: uuid.New(), Title: "In Progress", Cards: []model.Card{}, Color: model.ColorInProgress, CreatedAt: now, UpdatedAt: now},
			{ID: uuid.New(), Title: "Done", Cards: []model.Card{}, Color: model.ColorDone, CreatedAt: now, UpdatedAt: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	id := board.ID
	return model.Snapshot{
		Boards:      []model.Board{board},
		ActiveBoard: &id,
	}
}
