package circular

import (
	"math"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Range describes a contiguous run of physical positions [Begin, End)
// within the backing array. It can be applied to the array as a single
// subslice, without materializing the position of every element. Step
// is always 1; it is included so that serialized mappings remain
// self-describing.
type Range struct {
	Begin int32
	End   int32
	Step  int32
}

// Mapping is the physical addressing of a logical window: either a
// contiguous Range or an explicit sequence of per-element positions.
// Exactly one of the two cases is populated. Positions are 32 bits
// wide, so that mappings have the same representation regardless of
// the word size of the host.
type Mapping struct {
	// Range holds the contiguous case. It is only meaningful when
	// Indexes is nil.
	Range Range

	// Indexes holds the physical position of every element of a
	// window that crosses the end of the backing array. The i-th
	// logical offset of the window maps to position Indexes[i].
	Indexes []int32
}

// IsContiguous returns whether the window mapped to a single
// contiguous run of positions.
func (m Mapping) IsContiguous() bool {
	return m.Indexes == nil
}

// Length returns the number of logical positions covered by the
// mapping.
func (m Mapping) Length() int {
	if m.Indexes == nil {
		return int(m.Range.End - m.Range.Begin)
	}
	return len(m.Indexes)
}

// ResolveWindow computes the physical positions backing a window of
// length consecutive logical offsets starting at start, within a
// circular array of the provided capacity. The start offset is reduced
// modulo the capacity, so it does not need to be reduced by the caller.
//
// Whenever the window does not cross the end of the array, the
// returned mapping holds a contiguous Range. Only windows that wrap
// around cause an index sequence of exactly length elements to be
// allocated. Windows longer than the capacity are permitted and
// revisit positions.
//
// Negative start offsets are rejected, as are negative lengths and
// non-positive capacities. Because positions are 32 bits wide, the
// capacity may not exceed math.MaxInt32, and neither may the length of
// a window that wraps.
func ResolveWindow(start, length, capacity int64) (Mapping, error) {
	if length < 0 {
		return Mapping{}, status.Errorf(codes.InvalidArgument, "Length %d is negative", length)
	}
	if capacity <= 0 {
		return Mapping{}, status.Errorf(codes.InvalidArgument, "Capacity %d is not positive", capacity)
	}
	if capacity > math.MaxInt32 {
		return Mapping{}, status.Errorf(codes.InvalidArgument, "Capacity %d exceeds the maximum position %d", capacity, int64(math.MaxInt32))
	}
	if start < 0 {
		return Mapping{}, status.Errorf(codes.InvalidArgument, "Start offset %d is negative", start)
	}

	effectiveStart := start % capacity
	if length <= capacity-effectiveStart {
		return Mapping{
			Range: Range{
				Begin: int32(effectiveStart),
				End:   int32(effectiveStart + length),
				Step:  1,
			},
		}, nil
	}

	if length > math.MaxInt32 {
		return Mapping{}, status.Errorf(codes.InvalidArgument, "Wrapped window of length %d exceeds the maximum index sequence size %d", length, int64(math.MaxInt32))
	}
	indexes := make([]int32, length)
	position := int32(effectiveStart)
	for i := range indexes {
		indexes[i] = position
		position++
		if position == int32(capacity) {
			position = 0
		}
	}
	return Mapping{Indexes: indexes}, nil
}
