package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/expense-planner/backend/internal/application/adapter"
	"github.com/expense-planner/backend/internal/domain/entity"
	"github.com/expense-planner/backend/internal/integration/persistence/model"
)

// stateKey holds the single state document in Redis.
const stateKey = "expense-planner:state"

// redisStateRepository implements the adapter.StateStore interface against
// Redis, storing the document as one JSON blob with no expiry.
type redisStateRepository struct {
	client *redis.Client
}

// NewRedisStateRepository creates a new Redis-backed state store instance.
func NewRedisStateRepository(client *redis.Client) adapter.StateStore {
	return &redisStateRepository{
		client: client,
	}
}

// Load reads the state document. A missing key yields (nil, nil).
func (r *redisStateRepository) Load(ctx context.Context) (*entity.State, error) {
	payload, err := r.client.Get(ctx, stateKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read state document: %w", err)
	}

	var document model.StateDocument
	if err := json.Unmarshal(payload, &document); err != nil {
		return nil, fmt.Errorf("failed to decode state document: %w", err)
	}
	return document.ToEntity(), nil
}

// Save writes the full state document, replacing any previous version.
func (r *redisStateRepository) Save(ctx context.Context, state *entity.State) error {
	payload, err := json.Marshal(model.StateFromEntity(state))
	if err != nil {
		return fmt.Errorf("failed to encode state document: %w", err)
	}

	if err := r.client.Set(ctx, stateKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to write state document: %w", err)
	}
	return nil
}
