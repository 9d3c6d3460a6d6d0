package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Team is a player side. TeamNone marks an empty cell and "no winner".
type Team uint8

const (
	TeamNone Team = iota
	TeamX
	TeamO
)

const EmptyCell = TeamNone

var ErrUnknownTeam = errors.New("unknown team")

// teamNames is the only place where teams are mapped to and from their names.
var teamNames = map[Team]string{
	TeamX: "X",
	TeamO: "O",
}

// ParseTeam - maps a team name ("X" or "O", case-insensitive) to its Team.
func ParseTeam(name string) (Team, error) {
	for team, teamName := range teamNames {
		if strings.EqualFold(strings.TrimSpace(name), teamName) {
			return team, nil
		}
	}

	return TeamNone, fmt.Errorf("%w: %q", ErrUnknownTeam, name)
}

func (that Team) String() string {
	return teamNames[that]
}

// IsValid reports whether the team is X or O.
func (that Team) IsValid() bool {
	_, ok := teamNames[that]
	return ok
}

// Opponent returns the other side, or TeamNone for an invalid team.
func (that Team) Opponent() Team {
	switch that {
	case TeamX:
		return TeamO
	case TeamO:
		return TeamX
	default:
		return TeamNone
	}
}

func (that Team) MarshalText() ([]byte, error) {
	if that == TeamNone {
		return []byte{}, nil
	}

	name, ok := teamNames[that]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTeam, uint8(that))
	}

	return []byte(name), nil
}

func (that *Team) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*that = TeamNone
		return nil
	}

	team, err := ParseTeam(string(text))
	if err != nil {
		return err
	}

	*that = team

	return nil
}
