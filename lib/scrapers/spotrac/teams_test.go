package spotrac

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupTeam(t *testing.T) {
	byName, err := LookupTeam("New Orleans Pelicans")
	require.NoError(t, err)
	require.Equal(t, "new-orleans-pelicans", byName.Slug)

	byAbbrev, err := LookupTeam("nop")
	require.NoError(t, err)
	require.Equal(t, byName, byAbbrev)

	upper, err := LookupTeam("NEW ORLEANS PELICANS")
	require.NoError(t, err)
	require.Equal(t, byName, upper)
}

func TestLookupTeamUnknown(t *testing.T) {
	_, err := LookupTeam("Seattle Supersonics")
	var unknownTeam *UnknownTeamError
	require.ErrorAs(t, err, &unknownTeam)
	require.Equal(t, "Seattle Supersonics", unknownTeam.Key)
}
