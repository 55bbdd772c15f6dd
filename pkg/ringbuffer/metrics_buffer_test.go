package ringbuffer_test

import (
	"testing"

	"github.com/buildbarn/bb-ring-buffer/pkg/ringbuffer"
	"github.com/buildbarn/bb-ring-buffer/pkg/testutil"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMetricsBufferDelegation(t *testing.T) {
	base, err := ringbuffer.NewInMemoryBuffer[int](4)
	require.NoError(t, err)
	buffer := ringbuffer.NewMetricsBuffer(base, "delegation")

	// The decorator must pass results through unchanged.
	require.NoError(t, buffer.Write([]int{1, 2, 3}))
	require.Equal(t, 3, buffer.Len())
	require.Equal(t, 4, buffer.Cap())
	require.Equal(t, 1, buffer.SpaceAvailable())
	require.Equal(t, []int{1, 2, 3}, buffer.Snapshot())
	require.Equal(t, []int{1, 2}, buffer.ReadOverlap(2, 1))
	require.Equal(t, []int{2}, buffer.Read(1))

	testutil.RequireEqualStatus(
		t,
		status.Error(codes.ResourceExhausted, "Buffer has space for 3 samples, while 4 were provided"),
		buffer.Write([]int{4, 5, 6, 7}))

	buffer.ForceWrite([]int{4, 5, 6, 7})
	require.Equal(t, []int{4, 5, 6, 7}, buffer.ReadRemaining(-1))

	buffer.Clear()
	require.Equal(t, 0, buffer.Len())
}
