package dashboard

import (
	"context"
	"fmt"

	"github.com/expense-planner/backend/internal/application/adapter"
	"github.com/expense-planner/backend/internal/domain/entity"
)

// loadState reads the persisted state, initializing an empty normalized
// state when nothing has been saved yet.
func loadState(ctx context.Context, store adapter.StateStore) (*entity.State, error) {
	state, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	if state == nil {
		return entity.NewState(), nil
	}
	state.Normalize()
	return state, nil
}
