package ringbuffer

import (
	"math"

	"github.com/buildbarn/bb-ring-buffer/pkg/circular"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type inMemoryBuffer[T any] struct {
	data    []T
	cursors circular.Cursors
}

// NewInMemoryBuffer creates a Buffer that stores samples in a single
// preallocated slice of the provided capacity. Sample positions within
// the slice are computed through circular.ResolveWindow, so that reads
// and writes that do not cross the end of the slice are applied as
// plain contiguous copies.
func NewInMemoryBuffer[T any](capacity int64) (Buffer[T], error) {
	if capacity <= 0 {
		return nil, status.Errorf(codes.InvalidArgument, "Capacity %d is not positive", capacity)
	}
	if capacity > math.MaxInt32 {
		return nil, status.Errorf(codes.InvalidArgument, "Capacity %d exceeds the maximum position %d", capacity, int64(math.MaxInt32))
	}
	return &inMemoryBuffer[T]{
		data: make([]T, capacity),
	}, nil
}

func (b *inMemoryBuffer[T]) capacity() int64 {
	return int64(len(b.data))
}

// resolve maps a window of the logical sample stream to positions in
// the backing slice. The cursors guarantee that the window lies within
// the documented domain of ResolveWindow, so failures are programming
// errors.
func (b *inMemoryBuffer[T]) resolve(offset uint64, count int64) circular.Mapping {
	capacity := b.capacity()
	mapping, err := circular.ResolveWindow(int64(offset%uint64(capacity)), count, capacity)
	if err != nil {
		panic(err)
	}
	return mapping
}

func (b *inMemoryBuffer[T]) gather(mapping circular.Mapping) []T {
	out := make([]T, mapping.Length())
	if mapping.IsContiguous() {
		copy(out, b.data[mapping.Range.Begin:mapping.Range.End])
	} else {
		for i, position := range mapping.Indexes {
			out[i] = b.data[position]
		}
	}
	return out
}

func (b *inMemoryBuffer[T]) scatter(mapping circular.Mapping, data []T) {
	if mapping.IsContiguous() {
		copy(b.data[mapping.Range.Begin:mapping.Range.End], data)
	} else {
		for i, position := range mapping.Indexes {
			b.data[position] = data[i]
		}
	}
}

func (b *inMemoryBuffer[T]) Write(data []T) error {
	count := int64(len(data))
	if space := b.cursors.SpaceAvailable(b.capacity()); count > space {
		return status.Errorf(codes.ResourceExhausted, "Buffer has space for %d samples, while %d were provided", space, count)
	}
	b.scatter(b.resolve(b.cursors.Write, count), data)
	b.cursors.Advance(count)
	return nil
}

func (b *inMemoryBuffer[T]) ForceWrite(data []T) {
	capacity := b.capacity()
	if int64(len(data)) > capacity {
		data = data[int64(len(data))-capacity:]
	}
	count := int64(len(data))
	if overflow := count - b.cursors.SpaceAvailable(capacity); overflow > 0 {
		b.cursors.Drop(overflow)
	}
	b.scatter(b.resolve(b.cursors.Write, count), data)
	b.cursors.Advance(count)
}

func (b *inMemoryBuffer[T]) Read(count int) []T {
	if count <= 0 || int64(count) > b.cursors.Length() {
		return nil
	}
	out := b.gather(b.resolve(b.cursors.Read, int64(count)))
	b.cursors.Retire(int64(count))
	return out
}

func (b *inMemoryBuffer[T]) ReadRemaining(count int) []T {
	if buffered := b.cursors.Length(); count < 0 || int64(count) > buffered {
		count = int(buffered)
	}
	return b.Read(count)
}

func (b *inMemoryBuffer[T]) ReadOverlap(count, increment int) []T {
	if count <= 0 || int64(count) > b.cursors.Length() {
		return nil
	}
	if increment < 0 {
		increment = count
	}
	out := b.gather(b.resolve(b.cursors.Read, int64(count)))
	b.cursors.Drop(int64(increment))
	return out
}

func (b *inMemoryBuffer[T]) Snapshot() []T {
	return b.gather(b.resolve(b.cursors.Read, b.cursors.Length()))
}

func (b *inMemoryBuffer[T]) Clear() {
	b.cursors = circular.Cursors{}
}

func (b *inMemoryBuffer[T]) Len() int {
	return int(b.cursors.Length())
}

func (b *inMemoryBuffer[T]) Cap() int {
	return len(b.data)
}

func (b *inMemoryBuffer[T]) SpaceAvailable() int {
	return int(b.cursors.SpaceAvailable(b.capacity()))
}
