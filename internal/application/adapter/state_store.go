// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/expense-planner/backend/internal/domain/entity"
)

// StateStore persists the whole collection bundle as a single document.
// There is no partial write: Save replaces the previous document entirely
// and the last write wins.
type StateStore interface {
	// Load reads the persisted state. It returns (nil, nil) when no state
	// has ever been saved.
	Load(ctx context.Context) (*entity.State, error)

	// Save writes the full state, replacing any previous document.
	Save(ctx context.Context, state *entity.State) error
}
