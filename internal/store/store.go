// Package store owns the in-memory board/column/card state. Every mutation
// validates its input, builds a new snapshot (entities are replaced, never
// edited in place) and hands the result to the persistence adapter. Failed
// operations leave the current snapshot untouched.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"taskboard/internal/model"
	"taskboard/internal/storage"
)

// Store holds the current snapshot and the persistence adapter notified on
// every successful mutation. Readers get deep copies, so a served snapshot
// never observes a later mutation.
type Store struct {
	mu      sync.RWMutex
	snap    model.Snapshot
	adapter storage.Adapter
}

// New hydrates a store from the adapter. Absent or unparsable prior state
// seeds a default board with the three standard columns.
func New(adapter storage.Adapter) *Store {
	s := &Store{adapter: adapter}

	snap, err := adapter.Load()
	if err != nil {
		log.Warnf("⚠️  Failed to load board state, seeding defaults: %v", err)
	}
	if snap != nil {
		s.snap = *snap
		return s
	}

	s.snap = defaultSnapshot()
	if err := adapter.Save(s.snap); err != nil {
		log.Warnf("⚠️  Failed to persist seeded board state: %v", err)
	}
	return s
}

// BoardUpdate carries the partial fields of an updateBoard call. Nil fields
// are left unchanged.
type BoardUpdate struct {
	Title       *string
	Description *string
}

// ColumnUpdate carries the partial fields of an updateColumn call.
type ColumnUpdate struct {
	Title *string
	Color *string
}

// CardData carries the caller-supplied fields of a new card.
type CardData struct {
	Title       string
	Description string
	Priority    model.Priority
	Tags        []string
}

// CardUpdate carries the partial fields of an updateCard call.
type CardUpdate struct {
	Title       *string
	Description *string
	Priority    *model.Priority
	Tags        *[]string
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Clone()
}

// CurrentBoard returns a copy of the active board, or nil when no board is
// active.
func (s *Store) CurrentBoard() *model.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap.ActiveBoard == nil {
		return nil
	}
	for _, b := range s.snap.Boards {
		if b.ID == *s.snap.ActiveBoard {
			board := b.Clone()
			return &board
		}
	}
	return nil
}

// Board returns a copy of the board with the given id.
func (s *Store) Board(boardID uuid.UUID) (*model.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.snap.Boards {
		if b.ID == boardID {
			board := b.Clone()
			return &board, nil
		}
	}
	return nil, ErrBoardNotFound
}

// CreateBoard appends a new empty board and makes it active.
func (s *Store) CreateBoard(title, description string) (uuid.UUID, error) {
	board, err := model.NewBoard(title, description)
	if err != nil {
		return uuid.Nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.snap.Clone()
	next.Boards = append(next.Boards, board)
	id := board.ID
	next.ActiveBoard = &id
	s.commit(next)
	return board.ID, nil
}

// UpdateBoard replaces the given fields and refreshes the board's updatedAt.
func (s *Store) UpdateBoard(boardID uuid.UUID, upd BoardUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.snap.Clone()

	board := findBoard(&next, boardID)
	if board == nil {
		return ErrBoardNotFound
	}
	if upd.Title != nil {
		title := strings.TrimSpace(*upd.Title)
		if title == "" {
			return model.ErrEmptyTitle
		}
		board.Title = title
	}
	if upd.Description != nil {
		board.Description = *upd.Description
	}
	board.UpdatedAt = time.Now()

	s.commit(next)
	return nil
}

// DeleteBoard removes the board. When the active board is deleted the
// pointer moves to the first remaining board, or nil if none remain.
func (s *Store) DeleteBoard(boardID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.snap.Clone()

	idx := -1
	for i, b := range next.Boards {
		if b.ID == boardID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrBoardNotFound
	}
	next.Boards = append(next.Boards[:idx], next.Boards[idx+1:]...)

	if next.ActiveBoard != nil && *next.ActiveBoard == boardID {
		if len(next.Boards) > 0 {
			id := next.Boards[0].ID
			next.ActiveBoard = &id
		} else {
			next.ActiveBoard = nil
		}
	}

	s.commit(next)
	return nil
}

// SetActiveBoard points the active-board reference at an existing board.
// Timestamps are not touched.
func (s *Store) SetActiveBoard(boardID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.snap.Clone()

	if findBoard(&next, boardID) == nil {
		return ErrBoardNotFound
	}
	id := boardID
	next.ActiveBoard = &id

	s.commit(next)
	return nil
}

// CreateColumn appends an empty column to the board.
func (s *Store) CreateColumn(boardID uuid.UUID, title, color string) (uuid.UUID, error) {
	column, err := model.NewColumn(title, color)
	if err != nil {
		return uuid.Nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.snap.Clone()

	board := findBoard(&next, boardID)
	if board == nil {
		return uuid.Nil, ErrBoardNotFound
	}
	board.Columns = append(board.Columns, column)
	board.UpdatedAt = time.Now()

	s.commit(next)
	return column.ID, nil
}

// UpdateColumn replaces the given fields and refreshes both column and
// board updatedAt.
func (s *Store) UpdateColumn(boardID, columnID uuid.UUID, upd ColumnUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.snap.Clone()

	board := findBoard(&next, boardID)
	if board == nil {
		return ErrBoardNotFound
	}
	column := findColumn(board, columnID)
	if column == nil {
		return ErrColumnNotFound
	}
	if upd.Title != nil {
		title := strings.TrimSpace(*upd.Title)
		if title == "" {
			return model.ErrEmptyTitle
		}
		column.Title = title
	}
	if upd.Color != nil {
		column.Color = *upd.Color
	}
	now := time.Now()
	column.UpdatedAt = now
	board.UpdatedAt = now

	s.commit(next)
	return nil
}

// DeleteColumn removes the column together with all of its cards.
func (s *Store) DeleteColumn(boardID, columnID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.snap.Clone()

	board := findBoard(&next, boardID)
	if board == nil {
		return ErrBoardNotFound
	}
	idx := -1
	for i, col := range board.Columns {
		if col.ID == columnID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrColumnNotFound
	}
	board.Columns = append(board.Columns[:idx], board.Columns[idx+1:]...)
	board.UpdatedAt = time.Now()

	s.commit(next)
	return nil
}

// CreateCard appends a card to the end of the column's card sequence.
func (s *Store) CreateCard(boardID, columnID uuid.UUID, data CardData) (uuid.UUID, error) {
	card, err := model.NewCard(data.Title, data.Description, data.Priority, data.Tags)
	if err != nil {
		return uuid.Nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.snap.Clone()

	board := findBoard(&next, boardID)
	if board == nil {
		return uuid.Nil, ErrBoardNotFound
	}
	column := findColumn(board, columnID)
	if column == nil {
		return uuid.Nil, ErrColumnNotFound
	}
	column.Cards = append(column.Cards, card)
	now := time.Now()
	column.UpdatedAt = now
	board.UpdatedAt = now

	s.commit(next)
	return card.ID, nil
}

// UpdateCard replaces the given fields and refreshes the card's updatedAt,
// even when the new values equal the old ones.
func (s *Store) UpdateCard(boardID, columnID, cardID uuid.UUID, upd CardUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.snap.Clone()

	board := findBoard(&next, boardID)
	if board == nil {
		return ErrBoardNotFound
	}
	column := findColumn(board, columnID)
	if column == nil {
		return ErrColumnNotFound
	}
	card := findCard(column, cardID)
	if card == nil {
		return ErrCardNotFound
	}
	if upd.Title != nil {
		title := strings.TrimSpace(*upd.Title)
		if title == "" {
			return model.ErrEmptyTitle
		}
		card.Title = title
	}
	if upd.Description != nil {
		card.Description = *upd.Description
	}
	if upd.Priority != nil {
		card.Priority = *upd.Priority
	}
	if upd.Tags != nil {
		card.Tags = model.NormalizeTags(*upd.Tags)
	}
	now := time.Now()
	card.UpdatedAt = now
	column.UpdatedAt = now
	board.UpdatedAt = now

	s.commit(next)
	return nil
}

// DeleteCard removes the card from its column's sequence.
func (s *Store) DeleteCard(boardID, columnID, cardID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.snap.Clone()

	board := findBoard(&next, boardID)
	if board == nil {
		return ErrBoardNotFound
	}
	column := findColumn(board, columnID)
	if column == nil {
		return ErrColumnNotFound
	}
	idx := -1
	for i, c := range column.Cards {
		if c.ID == cardID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrCardNotFound
	}
	column.Cards = append(column.Cards[:idx], column.Cards[idx+1:]...)
	now := time.Now()
	column.UpdatedAt = now
	board.UpdatedAt = now

	s.commit(next)
	return nil
}

// MoveCard removes the card at sourceIndex from the source column and
// inserts it at destIndex in the destination column. Source and destination
// may be the same column (a pure reorder). The destination index is clamped
// to the destination's card sequence after removal; a source index outside
// the source sequence rejects the whole operation.
func (s *Store) MoveCard(boardID, sourceColumnID, destColumnID uuid.UUID, sourceIndex, destIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.snap.Clone()

	board := findBoard(&next, boardID)
	if board == nil {
		return ErrBoardNotFound
	}
	source := findColumn(board, sourceColumnID)
	if source == nil {
		return ErrColumnNotFound
	}
	dest := findColumn(board, destColumnID)
	if dest == nil {
		return ErrColumnNotFound
	}
	if sourceIndex < 0 || sourceIndex >= len(source.Cards) {
		return ErrIndexOutOfRange
	}

	card := source.Cards[sourceIndex]
	source.Cards = append(source.Cards[:sourceIndex], source.Cards[sourceIndex+1:]...)

	if destIndex < 0 {
		destIndex = 0
	}
	if destIndex > len(dest.Cards) {
		destIndex = len(dest.Cards)
	}
	dest.Cards = append(dest.Cards, model.Card{})
	copy(dest.Cards[destIndex+1:], dest.Cards[destIndex:])
	dest.Cards[destIndex] = card

	now := time.Now()
	source.UpdatedAt = now
	dest.UpdatedAt = now
	board.UpdatedAt = now

	s.commit(next)
	return nil
}

// commit swaps in the new snapshot and notifies the adapter. Persistence
// failures are logged, not propagated: the in-memory state remains the
// source of truth for the session. Callers must hold the write lock.
func (s *Store) commit(next model.Snapshot) {
	s.snap = next
	if err := s.adapter.Save(next); err != nil {
		log.Warnf("⚠️  Failed to persist board state: %v", err)
	}
}

func findBoard(snap *model.Snapshot, id uuid.UUID) *model.Board {
	for i := range snap.Boards {
		if snap.Boards[i].ID == id {
			return &snap.Boards[i]
		}
	}
	return nil
}

func findColumn(board *model.Board, id uuid.UUID) *model.Column {
	for i := range board.Columns {
		if board.Columns[i].ID == id {
			return &board.Columns[i]
		}
	}
	return nil
}

func findCard(column *model.Column, id uuid.UUID) *model.Card {
	for i := range column.Cards {
		if column.Cards[i].ID == id {
			return &column.Cards[i]
		}
	}
	return nil
}
