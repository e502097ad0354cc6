package hash

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	require.Equal(t, xxhash.Sum64String("CI.PASC..BHZ"), ID("CI.PASC..BHZ"))
	require.Equal(t, ID("CI.PASC..BHZ"), ID("CI.PASC..BHZ"))
	require.NotEqual(t, ID("CI.PASC..BHZ"), ID("CI.PASC..BHN"))
	require.NotEqual(t, ID(""), ID(" "))
}
