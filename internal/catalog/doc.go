// Package catalog names the epoch formats and dispatches conversions.
//
// Each format is an immutable Descriptor: a (divisor, offset, kind) triple
// consumed by the generic transform in the epoch package, or routed to one
// of its two special-case transforms. The twelve built-in descriptors are
// process-lifetime constants; a Registry layers caller-defined uniform
// formats, loaded from CUE definition files, on top of them.
package catalog
