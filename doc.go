// Package footprint represents irregular regions of astronomical images as
// sorted run-length span lists, and provides the geometric and set-algebraic
// operations detection pipelines need: normalization, growing, clipping,
// mask intersection, rasterization, coordinate transformation, and heavy
// footprints that carry the pixel values under a region.
//
// # Representation
//
// A Footprint is an ordered list of Spans, each an inclusive run [x0, x1] of
// pixels on one row, plus a cached bounding box and pixel count, a list of
// Peaks, and an advisory region box naming the parent image's valid extent.
//
// Span lists start in insertion order. Normalize sorts them by (y, x0, x1)
// and merges overlapping or touching same-row runs into canonical form; most
// algorithms normalize their results before returning. Operations are
// correct on non-normalized footprints, just slower.
//
// # Construction
//
// Footprints come from geometric constructors (FromBox, FromDisk,
// FromEllipse), from explicit span lists (FromSpans), from above-threshold
// detection on an image plane (Detect), or by copying (Clone). Every
// construction draws a fresh id from the package's IDSource; ids never
// round-trip through serialization and are excluded from Equals.
//
// # Heavy Footprints
//
// MakeHeavy samples the image, mask, and variance values under a footprint
// into three parallel buffers in span order, so the data can be extracted
// from or reinserted into an image without keeping the source around. The
// out-of-region policy is explicit: the zero HeavyCtrl fails loudly rather
// than guessing.
//
// # Concurrency
//
// Individual footprints are not synchronized; callers own exclusive access
// for mutation. The only shared state is the id counter, which is atomic so
// parallel pipelines can construct footprints concurrently. Callers that
// need to mutate a shared footprint clone it first.
package footprint
