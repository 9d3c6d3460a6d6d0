package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTeam(t *testing.T) {
	t.Run("Parses known team names", func(t *testing.T) {
		// Given: the names used by the team selector
		names := map[string]Team{"X": TeamX, "x": TeamX, "O": TeamO, " o ": TeamO}

		for name, expected := range names {
			// When: parsing the name
			team, err := ParseTeam(name)

			// Then: the matching team should be returned
			require.NoError(t, err)
			assert.Equal(t, expected, team)
		}
	})

	t.Run("Rejects unknown names", func(t *testing.T) {
		// When: parsing a name that is not a team
		team, err := ParseTeam("Z")

		// Then: ErrUnknownTeam should be returned
		require.ErrorIs(t, err, ErrUnknownTeam)
		assert.Equal(t, TeamNone, team)
	})

	t.Run("Rejects an empty name", func(t *testing.T) {
		_, err := ParseTeam("")

		assert.ErrorIs(t, err, ErrUnknownTeam)
	})
}

func TestTeam_Opponent(t *testing.T) {
	assert.Equal(t, TeamO, TeamX.Opponent())
	assert.Equal(t, TeamX, TeamO.Opponent())
	assert.Equal(t, TeamNone, TeamNone.Opponent())
}

func TestTeam_IsValid(t *testing.T) {
	assert.True(t, TeamX.IsValid())
	assert.True(t, TeamO.IsValid())
	assert.False(t, TeamNone.IsValid())
	assert.False(t, Team(7).IsValid())
}

func TestTeam_JSON(t *testing.T) {
	t.Run("Board cells are encoded as team names", func(t *testing.T) {
		// Given: a board with both teams and empty cells
		board := Board{
			{TeamX, EmptyCell, TeamO},
		}

		// When: encoding the board
		data, err := json.Marshal(board)

		// Then: cells should be encoded as "X", "O" and ""
		require.NoError(t, err)
		assert.JSONEq(t, `[["X","","O"],["","",""],["","",""]]`, string(data))
	})

	t.Run("Unknown team values fail to encode", func(t *testing.T) {
		// When: encoding a team outside the enumeration
		_, err := json.Marshal(Team(9))

		// Then: an error should be returned
		assert.Error(t, err)
	})

	t.Run("Unknown team names fail to decode", func(t *testing.T) {
		// Given: a payload naming a team that does not exist
		var team Team

		// When: decoding it
		err := json.Unmarshal([]byte(`"Q"`), &team)

		// Then: ErrUnknownTeam should be returned
		assert.ErrorIs(t, err, ErrUnknownTeam)
	})
}
