package model

import "github.com/google/uuid"

// Snapshot is the complete board state at a point in time: all boards in
// insertion order plus the active board pointer. It is the unit of
// persistence and the input to KPI computation.
//
// Invariant: ActiveBoard, when non-nil, references a board present in Boards.
type Snapshot struct {
	Boards      []Board    `json:"boards"`
	ActiveBoard *uuid.UUID `json:"activeBoard"`
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	boards := make([]Board, len(s.Boards))
	for i, b := range s.Boards {
		boards[i] = b.Clone()
	}
	s.Boards = boards
	if s.ActiveBoard != nil {
		id := *s.ActiveBoard
		s.ActiveBoard = &id
	}
	return s
}

// TotalCards counts the cards across all columns of all boards.
func (s Snapshot) TotalCards() int {
	total := 0
	for _, b := range s.Boards {
		for _, col := range b.Columns {
			total += len(col.Cards)
		}
	}
	return total
}
