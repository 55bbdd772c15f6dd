package ringbuffer

// Buffer is a fixed-capacity circular container of samples. Writes
// append at the logical end of the stream, while reads consume from
// the logical start. The backing storage is allocated once; the buffer
// never grows or shrinks.
//
// Buffers do not permit concurrent access.
type Buffer[T any] interface {
	// Write appends samples to the buffer. It fails without
	// modifying the buffer when the data does not fit in the space
	// that is currently available.
	Write(data []T) error

	// ForceWrite appends samples to the buffer, discarding the
	// oldest buffered samples when there is not enough space
	// available. When the data is longer than the capacity of the
	// buffer, only its trailing samples are kept.
	ForceWrite(data []T)

	// Read consumes exactly count samples, returning them in
	// logical order. It returns nil without consuming anything
	// when count is not positive or more samples are requested
	// than are buffered.
	Read(count int) []T

	// ReadRemaining consumes up to count samples, clamping the
	// request to the number of samples buffered. A negative count
	// consumes everything.
	ReadRemaining(count int) []T

	// ReadOverlap returns count samples, but only consumes
	// increment of them, so that successive reads overlap. A
	// negative increment consumes the full count. Like Read, it
	// returns nil when more samples are requested than are
	// buffered.
	ReadOverlap(count, increment int) []T

	// Snapshot returns a copy of all buffered samples in logical
	// order, without consuming them.
	Snapshot() []T

	// Clear discards all buffered samples.
	Clear()

	// Len returns the number of samples currently buffered.
	Len() int

	// Cap returns the fixed capacity of the buffer.
	Cap() int

	// SpaceAvailable returns the number of samples that can be
	// written through Write without discarding buffered data.
	SpaceAvailable() int
}
