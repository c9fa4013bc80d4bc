package trends

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectedRegions(t *testing.T) {
	t.Run("RepeatedParams", func(t *testing.T) {
		got := SelectedRegions([]string{"Beirut", "Akkar"})
		require.Equal(t, []string{"Beirut", "Akkar"}, got)
	})

	t.Run("CommaSeparated", func(t *testing.T) {
		got := SelectedRegions([]string{"Beirut,Akkar", "Tripoli"})
		require.Equal(t, []string{"Beirut", "Akkar", "Tripoli"}, got)
	})

	t.Run("TrimsAndDropsEmpty", func(t *testing.T) {
		got := SelectedRegions([]string{" Beirut , ", ""})
		require.Equal(t, []string{"Beirut"}, got)
	})

	t.Run("EmptyMeansNoFilter", func(t *testing.T) {
		require.Empty(t, SelectedRegions(nil))
	})
}
