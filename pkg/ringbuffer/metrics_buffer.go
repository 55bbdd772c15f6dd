package ringbuffer

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	bufferOperationsPrometheusMetrics sync.Once

	bufferOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "ringbuffer",
			Name:      "buffer_operations_total",
			Help:      "Total number of operations performed against ring buffers.",
		},
		[]string{"name", "operation"})
)

type metricsBuffer[T any] struct {
	base Buffer[T]

	write         prometheus.Counter
	forceWrite    prometheus.Counter
	read          prometheus.Counter
	readRemaining prometheus.Counter
	readOverlap   prometheus.Counter
	snapshot      prometheus.Counter
	clear         prometheus.Counter
}

// NewMetricsBuffer is a decorator for Buffer that exposes the total
// number of operations performed against the underlying Buffer through
// Prometheus.
func NewMetricsBuffer[T any](base Buffer[T], name string) Buffer[T] {
	bufferOperationsPrometheusMetrics.Do(func() {
		prometheus.MustRegister(bufferOperationsTotal)
	})

	return &metricsBuffer[T]{
		base: base,

		write:         bufferOperationsTotal.WithLabelValues(name, "Write"),
		forceWrite:    bufferOperationsTotal.WithLabelValues(name, "ForceWrite"),
		read:          bufferOperationsTotal.WithLabelValues(name, "Read"),
		readRemaining: bufferOperationsTotal.WithLabelValues(name, "ReadRemaining"),
		readOverlap:   bufferOperationsTotal.WithLabelValues(name, "ReadOverlap"),
		snapshot:      bufferOperationsTotal.WithLabelValues(name, "Snapshot"),
		clear:         bufferOperationsTotal.WithLabelValues(name, "Clear"),
	}
}

func (b *metricsBuffer[T]) Write(data []T) error {
	b.write.Inc()
	return b.base.Write(data)
}

func (b *metricsBuffer[T]) ForceWrite(data []T) {
	b.forceWrite.Inc()
	b.base.ForceWrite(data)
}

func (b *metricsBuffer[T]) Read(count int) []T {
	b.read.Inc()
	return b.base.Read(count)
}

func (b *metricsBuffer[T]) ReadRemaining(count int) []T {
	b.readRemaining.Inc()
	return b.base.ReadRemaining(count)
}

func (b *metricsBuffer[T]) ReadOverlap(count, increment int) []T {
	b.readOverlap.Inc()
	return b.base.ReadOverlap(count, increment)
}

func (b *metricsBuffer[T]) Snapshot() []T {
	b.snapshot.Inc()
	return b.base.Snapshot()
}

func (b *metricsBuffer[T]) Clear() {
	b.clear.Inc()
	b.base.Clear()
}

func (b *metricsBuffer[T]) Len() int {
	return b.base.Len()
}

func (b *metricsBuffer[T]) Cap() int {
	return b.base.Cap()
}

func (b *metricsBuffer[T]) SpaceAvailable() int {
	return b.base.SpaceAvailable()
}
