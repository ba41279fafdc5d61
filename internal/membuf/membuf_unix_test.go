//go:build unix

package membuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Alloc_ZeroedAndWritable(t *testing.T) {
	data, cleanup, err := Alloc(4096)
	require.NoError(t, err)
	defer cleanup() //nolint:errcheck

	require.Len(t, data, 4096)
	for i, b := range data {
		require.Zero(t, b, "byte %d not zeroed", i)
	}

	data[0] = 0xAA
	data[4095] = 0xBB
	require.Equal(t, byte(0xAA), data[0])
	require.Equal(t, byte(0xBB), data[4095])
}

func Test_Alloc_ZeroSize(t *testing.T) {
	data, cleanup, err := Alloc(0)
	require.NoError(t, err)
	require.Empty(t, data)
	require.NoError(t, cleanup())
}

func Test_Cleanup_Idempotent(t *testing.T) {
	_, cleanup, err := Alloc(4096)
	require.NoError(t, err)
	require.NoError(t, cleanup())
	require.NoError(t, cleanup(), "second cleanup must be a no-op")
}

func Test_Alloc_NegativeSize(t *testing.T) {
	_, _, err := Alloc(-1)
	require.Error(t, err)
}
