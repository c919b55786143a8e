package icons

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in    string
		want  string
		found bool
	}{
		{in: "tooth", want: "tooth", found: true},
		{in: " Microscope ", want: "microscope", found: true},
		{in: "ShieldCheck", want: "shield", found: true},
		{in: "heart-pulse", want: "heart", found: true},
		{in: "CalendarDaysIcon", want: "calendar", found: true},
		{in: "", want: DefaultKey, found: false},
		{in: "unicorn", want: DefaultKey, found: false},
	}
	for _, tc := range cases {
		icon, ok := Lookup(tc.in)
		require.Equal(t, tc.want, icon.Key, tc.in)
		require.Equal(t, tc.found, ok, tc.in)
		require.NotEmpty(t, icon.Glyph)
	}
}

func TestKeysAreSortedAndResolvable(t *testing.T) {
	t.Parallel()

	keys := Keys()
	require.IsIncreasing(t, keys)
	for _, k := range keys {
		icon, ok := Lookup(k)
		require.True(t, ok)
		require.Equal(t, k, icon.Key)
	}
	require.Equal(t, DefaultKey, Resolve("nope").Key)
}
