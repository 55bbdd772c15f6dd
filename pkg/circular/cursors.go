package circular

// Cursors is a pair of monotonically increasing logical offsets into
// the stream of samples held by a bounded buffer. Read is the offset
// of the oldest sample that is still buffered, while Write is the
// offset at which the next sample will be placed. The physical
// position of a logical offset is the offset reduced modulo the
// capacity of the buffer, which is tracked by the buffer itself.
type Cursors struct {
	Read  uint64
	Write uint64
}

// Length returns the number of samples currently buffered.
func (c *Cursors) Length() int64 {
	return int64(c.Write - c.Read)
}

// SpaceAvailable returns the number of samples that can still be
// written without overwriting buffered data.
func (c *Cursors) SpaceAvailable(capacity int64) int64 {
	return capacity - c.Length()
}

// Advance moves the write cursor forward after count samples have been
// stored. The caller is responsible for checking SpaceAvailable first.
func (c *Cursors) Advance(count int64) {
	c.Write += uint64(count)
}

// Retire moves the read cursor forward after count samples have been
// consumed. The caller is responsible for checking Length first.
func (c *Cursors) Retire(count int64) {
	c.Read += uint64(count)
}

// Drop retires up to count of the oldest buffered samples, to make
// room for a write that is permitted to overwrite old data. Dropping
// more samples than are buffered empties the buffer.
func (c *Cursors) Drop(count int64) {
	if count > c.Length() {
		count = c.Length()
	}
	c.Read += uint64(count)
}
