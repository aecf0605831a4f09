package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {
	require.Equal(t, "zion-williamson", Slug("Zion Williamson"))
	require.Equal(t, "shai-gilgeous-alexander", Slug("Shai Gilgeous-Alexander"))
	require.Equal(t, "lebron-james", Slug("  LeBron   James "))
}

func TestNormalizeName(t *testing.T) {
	require.Equal(t, "zion williamson", NormalizeName(" Zion  Williamson\n"))
	require.Equal(t, NormalizeName("ZION WILLIAMSON"), NormalizeName("zion williamson"))
}

func TestStripLabel(t *testing.T) {
	value, found := StripLabel("College: Duke", "College: ")
	require.True(t, found)
	require.Equal(t, "Duke", value)

	value, found = StripLabel("College: ", "College: ")
	require.True(t, found)
	require.Equal(t, "", value)

	_, found = StripLabel("Drafted: 2019 Rd 1", "College: ")
	require.False(t, found)
}
