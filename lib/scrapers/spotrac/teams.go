package spotrac

import (
	"fmt"
	"strings"

	_ "embed"

	"github.com/titanous/json5"
)

// Team is one entry of the static team registry.
type Team struct {
	Name   string `json:"name"`
	Abbrev string `json:"abbrev"`
	Slug   string `json:"slug"`
}

//go:embed teams.json5
var teamsRaw []byte

// keyed by lowercased full name and lowercased abbreviation
var teamIndex = loadTeams()

func loadTeams() map[string]Team {
	var teams []Team
	err := json5.Unmarshal(teamsRaw, &teams)
	if err != nil {
		panic(fmt.Sprintf("embedded team registry is broken: %v", err))
	}

	index := make(map[string]Team, len(teams)*2)
	for _, t := range teams {
		index[strings.ToLower(t.Name)] = t
		index[strings.ToLower(t.Abbrev)] = t
	}
	return index
}

// LookupTeam resolves a team's full name or abbreviation,
// case-insensitively, to its registry entry.
func LookupTeam(key string) (Team, error) {
	team, ok := teamIndex[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return Team{}, &UnknownTeamError{Key: key}
	}
	return team, nil
}
