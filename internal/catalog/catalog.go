package catalog

import (
	"errors"
	"fmt"
)

// builtins is the full built-in format set, ordered for display. Never
// mutated after init.
var builtins = []Descriptor{
	{Name: "apfs", Unit: "nanoseconds", Divisor: 1_000_000_000, OffsetSeconds: 0, Kind: KindUniform, Epoch: "1970-01-01"},
	{Name: "chrome", Unit: "microseconds", Divisor: 1_000_000, OffsetSeconds: -11_644_473_600, Kind: KindUniform, Epoch: "1601-01-01"},
	{Name: "cocoa", Unit: "seconds", Divisor: 1, OffsetSeconds: 978_307_200, Kind: KindUniform, Epoch: "2001-01-01"},
	{Name: "google_calendar", Unit: "seconds in 32-day months", Kind: KindNonUniformMonth32, Epoch: "1969-12-31"},
	{Name: "icq", Unit: "fractional days", Kind: KindFractionalDay, Epoch: "1899-12-30"},
	{Name: "java", Unit: "milliseconds", Divisor: 1000, OffsetSeconds: 0, Kind: KindUniform, Epoch: "1970-01-01"},
	{Name: "mozilla", Unit: "microseconds", Divisor: 1_000_000, OffsetSeconds: 0, Kind: KindUniform, Epoch: "1970-01-01"},
	{Name: "symbian", Unit: "microseconds", Divisor: 1_000_000, OffsetSeconds: -62_167_219_200, Kind: KindUniform, Epoch: "0000-01-01"},
	{Name: "unix", Unit: "seconds", Divisor: 1, OffsetSeconds: 0, Kind: KindUniform, Epoch: "1970-01-01"},
	{Name: "uuid_v1", Unit: "hectonanoseconds", Divisor: 10_000_000, OffsetSeconds: -12_219_292_800, Kind: KindUniform, Epoch: "1582-10-15"},
	{Name: "windows_date", Unit: "hectonanoseconds", Divisor: 10_000_000, OffsetSeconds: -62_135_596_800, Kind: KindUniform, Epoch: "0001-01-01"},
	{Name: "windows_file", Unit: "hectonanoseconds", Divisor: 10_000_000, OffsetSeconds: -11_644_473_600, Kind: KindUniform, Epoch: "1601-01-01"},
}

// UnknownFormatError reports a name with no catalog entry.
type UnknownFormatError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("UNKNOWN_FORMAT: no format named %q", e.Name)
}

// IsUnknownFormat returns true if the error is an unknown-format lookup.
// Uses errors.As to handle wrapped errors.
func IsUnknownFormat(err error) bool {
	var ue *UnknownFormatError
	return errors.As(err, &ue)
}

// Builtins returns the built-in descriptors in display order. The returned
// slice is a copy; callers may not reach the shared set.
func Builtins() []Descriptor {
	out := make([]Descriptor, len(builtins))
	copy(out, builtins)
	return out
}

// Lookup finds a built-in descriptor by name.
func Lookup(name string) (Descriptor, error) {
	for _, d := range builtins {
		if d.Name == name {
			return d, nil
		}
	}
	return Descriptor{}, &UnknownFormatError{Name: name}
}

// Registry is a format catalog: the built-in set plus any caller-defined
// formats. The zero value is not usable; call NewRegistry.
//
// A Registry is immutable after loading; all lookups are read-only and safe
// for concurrent use.
type Registry struct {
	byName map[string]Descriptor
	order  []string
}

// NewRegistry returns a registry seeded with the built-in formats.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]Descriptor, len(builtins))}
	for _, d := range builtins {
		r.byName[d.Name] = d
		r.order = append(r.order, d.Name)
	}
	return r
}

// Register adds a caller-defined format. Names must be unique across the
// whole registry, built-ins included; uniform formats must carry a positive
// divisor that evenly divides one billion (so sub-second remainders scale
// exactly to nanoseconds).
func (r *Registry) Register(d Descriptor) error {
	if d.Name == "" {
		return fmt.Errorf("format name must not be empty")
	}
	if _, exists := r.byName[d.Name]; exists {
		return fmt.Errorf("format %q already defined", d.Name)
	}
	if d.Kind == KindUniform {
		if d.Divisor <= 0 {
			return fmt.Errorf("format %q: divisor must be positive, got %d", d.Name, d.Divisor)
		}
		if 1_000_000_000%d.Divisor != 0 {
			return fmt.Errorf("format %q: divisor %d does not divide one billion", d.Name, d.Divisor)
		}
	}
	r.byName[d.Name] = d
	r.order = append(r.order, d.Name)
	return nil
}

// Lookup finds a descriptor by name.
func (r *Registry) Lookup(name string) (Descriptor, error) {
	d, ok := r.byName[name]
	if !ok {
		return Descriptor{}, &UnknownFormatError{Name: name}
	}
	return d, nil
}

// Descriptors returns every registered descriptor: built-ins in display
// order, then custom formats in registration order.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}
