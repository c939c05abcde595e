// Package persistence implements the state store against the configured
// database. The whole state is written as one JSON document in a single row:
// the model assumes one active reader/writer, so last write wins and no
// row-level conflict resolution is attempted.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/expense-planner/backend/internal/application/adapter"
	"github.com/expense-planner/backend/internal/domain/entity"
	"github.com/expense-planner/backend/internal/integration/persistence/model"
)

// primaryDocumentID keys the single state row.
const primaryDocumentID = "primary"

// StateModel represents the state_documents table.
type StateModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	Document  []byte    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the StateModel.
func (StateModel) TableName() string {
	return "state_documents"
}

// stateRepository implements the adapter.StateStore interface.
type stateRepository struct {
	db *gorm.DB
}

// NewStateRepository creates a new database-backed state store instance.
func NewStateRepository(db *gorm.DB) adapter.StateStore {
	return &stateRepository{
		db: db,
	}
}

// Load reads the state document. A missing row means nothing has been saved
// yet and yields (nil, nil).
func (r *stateRepository) Load(ctx context.Context) (*entity.State, error) {
	var stateModel StateModel
	result := r.db.WithContext(ctx).Where("id = ?", primaryDocumentID).First(&stateModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	var document model.StateDocument
	if err := json.Unmarshal(stateModel.Document, &document); err != nil {
		return nil, fmt.Errorf("failed to decode state document: %w", err)
	}
	return document.ToEntity(), nil
}

// Save writes the full state document, replacing any previous version.
func (r *stateRepository) Save(ctx context.Context, state *entity.State) error {
	payload, err := json.Marshal(model.StateFromEntity(state))
	if err != nil {
		return fmt.Errorf("failed to encode state document: %w", err)
	}

	stateModel := StateModel{
		ID:       primaryDocumentID,
		Document: payload,
	}
	result := r.db.WithContext(ctx).Save(&stateModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
