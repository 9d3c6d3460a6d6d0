package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe3d/internal/entity"
)

var ErrSessionNotFound = errors.New("session not found")

const sessionKeyPrefix = "session:"

type SessionRepository interface {
	CreateOrUpdate(ctx context.Context, snapshot *entity.Snapshot) error
	GetByID(ctx context.Context, id string) (*entity.Snapshot, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbSession struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionRepository - keeps the live board of each browser session. A zero ttl keeps sessions forever.
func NewSessionRepository(client *redis.Client, ttl time.Duration) SessionRepository {
	return &dbSession{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbSession) CreateOrUpdate(ctx context.Context, snapshot *entity.Snapshot) error {
	sessionJSON, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("could not marshal session: %w", err)
	}

	err = that.client.Set(ctx, sessionKeyPrefix+snapshot.ID, sessionJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}

	return nil
}

func (that *dbSession) GetByID(ctx context.Context, id string) (*entity.Snapshot, error) {
	response, err := that.client.Get(ctx, sessionKeyPrefix+id).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.Snapshot{}, ErrSessionNotFound
	}

	if err != nil {
		return &entity.Snapshot{}, fmt.Errorf("failed to get session by id: %w", err)
	}

	var snapshot entity.Snapshot
	if err = json.Unmarshal([]byte(response), &snapshot); err != nil {
		return &entity.Snapshot{}, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &snapshot, nil
}

func (that *dbSession) DeleteByID(ctx context.Context, id string) error {
	err := that.client.Del(ctx, sessionKeyPrefix+id).Err()
	if err != nil {
		return fmt.Errorf("failed to delete session by ID: %w", err)
	}

	return nil
}
