package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Default column colors. The first three seed the default board; ColorDefault
// is used for columns created without an explicit color.
const (
	ColorTodo       = "#ef4444"
	ColorInProgress = "#f59e0b"
	ColorDone       = "#10b981"
	ColorDefault    = "#6366f1"
)

// Column is an ordered lane of cards inside a board. Its position in the
// board's column sequence is significant: cards in the last column are
// conventionally treated as completed.
type Column struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Cards     []Card    `json:"cards"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewColumn builds an empty column. The title must be non-empty after
// trimming; an empty color falls back to ColorDefault.
func NewColumn(title, color string) (Column, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Column{}, ErrEmptyTitle
	}
	if color == "" {
		color = ColorDefault
	}
	now := time.Now()
	return Column{
		ID:        uuid.New(),
		Title:     title,
		Cards:     []Card{},
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Clone returns a deep copy of the column and its cards.
func (col Column) Clone() Column {
	cards := make([]Card, len(col.Cards))
	for i, c := range col.Cards {
		cards[i] = c.Clone()
	}
	col.Cards = cards
	return col
}
