package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe3d/internal/entity"
	"github.com/rocketscienceinc/tictactoe3d/testing/suite"
)

const sessionTTL = time.Hour

func newSnapshot(id string) *entity.Snapshot {
	snapshot := &entity.Snapshot{
		ID:            id,
		UserTeam:      entity.TeamO,
		IsPlayersTurn: true,
	}
	snapshot.Board[0][0] = entity.TeamX
	snapshot.Board[2][1] = entity.TeamO

	return snapshot
}

func TestSessionRepository_CreateOrUpdate(t *testing.T) {
	t.Run("CreateOrUpdate_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, sessionTTL)

		// Given: a session snapshot
		snapshot := newSnapshot("123")

		// When: CreateOrUpdate is called
		err := sessionRepo.CreateOrUpdate(ctx, snapshot)

		// Then: no error should be returned, and the key expires with the TTL
		require.NoError(t, err)

		ttl, err := st.Storage.TTL(ctx, "session:123").Result()
		require.NoError(t, err)
		assert.Positive(t, ttl)
		assert.LessOrEqual(t, ttl, sessionTTL)
	})

	t.Run("CreateOrUpdate_Overwrite", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, sessionTTL)

		// Given: a stored session
		snapshot := newSnapshot("123")
		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, snapshot))

		// When: the game ends and the session is saved again
		snapshot.IsOver = true
		snapshot.Winner = entity.TeamX
		err := sessionRepo.CreateOrUpdate(ctx, snapshot)

		// Then: the latest state should be stored
		require.NoError(t, err)

		retrieved, err := sessionRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.True(t, retrieved.IsOver)
		assert.Equal(t, entity.TeamX, retrieved.Winner)
	})
}

func TestSessionRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, sessionTTL)

		// Given: a stored session
		snapshot := newSnapshot("123")
		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, snapshot))

		// When: GetByID is called with existing ID
		retrieved, err := sessionRepo.GetByID(ctx, snapshot.ID)

		// Then: the retrieved session should match the saved one
		require.NoError(t, err)
		assert.Equal(t, snapshot, retrieved)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, sessionTTL)

		// When: GetByID is called with non-existent ID
		retrieved, err := sessionRepo.GetByID(ctx, "9999999")

		// Then: an ErrSessionNotFound error should be returned
		require.ErrorIs(t, err, ErrSessionNotFound)
		assert.Empty(t, retrieved.ID)
	})

	t.Run("GetByID_Corrupted", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, sessionTTL)

		// Given: a key holding something that is not a session
		require.NoError(t, st.Storage.Set(ctx, "session:broken", "not json", 0).Err())

		// When: GetByID is called
		_, err := sessionRepo.GetByID(ctx, "broken")

		// Then: an unmarshal error should be returned
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestSessionRepository_DeleteByID(t *testing.T) {
	ctx, st := suite.New(t)

	sessionRepo := NewSessionRepository(st.Storage, sessionTTL)

	// Given: a stored session
	snapshot := newSnapshot("123")
	require.NoError(t, sessionRepo.CreateOrUpdate(ctx, snapshot))

	// When: DeleteByID is called
	err := sessionRepo.DeleteByID(ctx, snapshot.ID)

	// Then: the session should be gone
	require.NoError(t, err)

	_, err = sessionRepo.GetByID(ctx, snapshot.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
