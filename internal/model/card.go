package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyTitle is returned when a board, column or card title is empty
// after trimming whitespace.
var ErrEmptyTitle = errors.New("title must not be empty")

// Priority of a card.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the three known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Card is a single work item. It is owned by exactly one column at a time;
// its position inside the column's card sequence is significant.
type Card struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    Priority  `json:"priority"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewCard builds a card with a fresh identity and timestamps. The title must
// be non-empty after trimming. An empty priority defaults to medium;
// whitespace-only tags are dropped.
func NewCard(title, description string, priority Priority, tags []string) (Card, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Card{}, ErrEmptyTitle
	}
	if priority == "" {
		priority = PriorityMedium
	}
	now := time.Now()
	return Card{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Priority:    priority,
		Tags:        NormalizeTags(tags),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// NormalizeTags trims each tag and drops empty ones, preserving order.
// Duplicates are kept.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// Clone returns a deep copy of the card.
func (c Card) Clone() Card {
	tags := make([]string, len(c.Tags))
	copy(tags, c.Tags)
	c.Tags = tags
	return c
}
