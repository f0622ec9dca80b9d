package store

import "errors"

// Common store errors. Not-found and out-of-range operations leave the
// snapshot untouched; there is no partial update.
var (
	// ErrBoardNotFound is returned when a board id is absent from the snapshot
	ErrBoardNotFound = errors.New("board not found")

	// ErrColumnNotFound is returned when a column id is absent from its board
	ErrColumnNotFound = errors.New("column not found")

	// ErrCardNotFound is returned when a card id is absent from its column
	ErrCardNotFound = errors.New("card not found")

	// ErrIndexOutOfRange is returned when a move references a source index
	// beyond the source column's card sequence
	ErrIndexOutOfRange = errors.New("source index out of range")
)
