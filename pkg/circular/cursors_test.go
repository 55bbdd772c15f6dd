package circular_test

import (
	"testing"

	"github.com/buildbarn/bb-ring-buffer/pkg/circular"
	"github.com/stretchr/testify/require"
)

func TestCursorsBookkeeping(t *testing.T) {
	var cursors circular.Cursors
	require.Equal(t, int64(0), cursors.Length())
	require.Equal(t, int64(10), cursors.SpaceAvailable(10))

	// Writing reduces the available space; reading gives it back.
	cursors.Advance(4)
	require.Equal(t, int64(4), cursors.Length())
	require.Equal(t, int64(6), cursors.SpaceAvailable(10))
	cursors.Retire(1)
	require.Equal(t, int64(3), cursors.Length())
	require.Equal(t, int64(7), cursors.SpaceAvailable(10))

	// Filling the buffer completely leaves no space.
	cursors.Advance(7)
	require.Equal(t, int64(10), cursors.Length())
	require.Equal(t, int64(0), cursors.SpaceAvailable(10))
}

func TestCursorsDrop(t *testing.T) {
	var cursors circular.Cursors
	cursors.Advance(6)

	// Dropping retires the oldest samples.
	cursors.Drop(2)
	require.Equal(t, int64(4), cursors.Length())
	require.Equal(t, uint64(2), cursors.Read)
	require.Equal(t, uint64(6), cursors.Write)

	// Dropping more samples than are buffered empties the buffer,
	// without moving the read cursor past the write cursor.
	cursors.Drop(100)
	require.Equal(t, int64(0), cursors.Length())
	require.Equal(t, uint64(6), cursors.Read)
	require.Equal(t, uint64(6), cursors.Write)
}
