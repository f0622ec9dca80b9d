package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskboard/internal/model"
)

// stateKey identifies the single row holding the board snapshot.
const stateKey = "board-state"

// BoardState is the key-value row backing the GORM adapter.
type BoardState struct {
	Key       string `gorm:"primaryKey;size:64"`
	Payload   string `gorm:"not null"`
	UpdatedAt time.Time
}

func (BoardState) TableName() string {
	return "board_states"
}

// GormAdapter persists the snapshot as a single key-value row. It only
// depends on *gorm.DB, so any dialector works; production opens SQLite.
type GormAdapter struct {
	db *gorm.DB
}

func NewGormAdapter(db *gorm.DB) *GormAdapter {
	return &GormAdapter{db: db}
}

// Migrate creates the backing table if it does not exist.
func (a *GormAdapter) Migrate() error {
	if err := a.db.AutoMigrate(&BoardState{}); err != nil {
		return fmt.Errorf("failed to migrate board state table: %w", err)
	}
	return nil
}

func (a *GormAdapter) Load() (*model.Snapshot, error) {
	var rec BoardState
	if err := a.db.First(&rec, "key = ?", stateKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load board state: %w", err)
	}

	var snap model.Snapshot
	if err := json.Unmarshal([]byte(rec.Payload), &snap); err != nil {
		log.Warnf("⚠️  Discarding unparsable board state row: %v", err)
		return nil, nil
	}
	return &snap, nil
}

func (a *GormAdapter) Save(snapshot model.Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode board state: %w", err)
	}

	rec := BoardState{Key: stateKey, Payload: string(payload), UpdatedAt: time.Now()}
	err = a.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to save board state: %w", err)
	}
	return nil
}
