package footprint

import "sync/atomic"

// IDSource hands out the unique ids stamped onto footprints and peaks.
// Implementations must be safe for concurrent use: detection pipelines
// construct footprints from many goroutines at once.
type IDSource interface {
	NextID() int64
}

// AtomicIDSource is the default IDSource: a monotonically increasing
// counter starting at 1. The zero value is ready to use.
type AtomicIDSource struct {
	n atomic.Int64
}

// NextID implements IDSource.
func (s *AtomicIDSource) NextID() int64 { return s.n.Add(1) }

var idSource IDSource = &AtomicIDSource{}

// SetIDSource replaces the package id source and returns the previous one.
// Tests install a fixed source to get deterministic ids; production code
// normally leaves the atomic default in place. Not safe to call concurrently
// with footprint construction.
func SetIDSource(s IDSource) IDSource {
	prev := idSource
	idSource = s
	return prev
}

func nextID() int64 { return idSource.NextID() }
