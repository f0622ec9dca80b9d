package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Board is a single Kanban workspace: an ordered sequence of columns.
type Board struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Columns     []Column  `json:"columns"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewBoard builds a board with no columns. The title must be non-empty
// after trimming.
func NewBoard(title, description string) (Board, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Board{}, ErrEmptyTitle
	}
	now := time.Now()
	return Board{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Columns:     []Column{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Clone returns a deep copy of the board, its columns and their cards.
func (b Board) Clone() Board {
	columns := make([]Column, len(b.Columns))
	for i, col := range b.Columns {
		columns[i] = col.Clone()
	}
	b.Columns = columns
	return b
}
