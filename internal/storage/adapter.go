// Package storage provides the persistence adapters for board state: a
// single durable key-value slot holding one JSON document.
package storage

import "taskboard/internal/model"

// Adapter loads and saves the complete board snapshot.
//
// Load returns (nil, nil) when no prior state exists. A stored payload that
// cannot be parsed is treated the same way: it is discarded and logged,
// never surfaced as a fatal error, so the caller reseeds default state.
type Adapter interface {
	Load() (*model.Snapshot, error)
	Save(snapshot model.Snapshot) error
}
