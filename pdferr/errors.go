package pdferr

import (
	"errors"
	"fmt"
)

// Sentinel errors usable with errors.Is. Each concrete error type below
// implements Is(target error) so that errors.Is(err, ErrOutOfBounds)
// succeeds without the caller needing to know the concrete type.
var (
	ErrOutOfBounds        = errors.New("neopdf: coordinate out of range")
	ErrSubgridNotFound     = errors.New("neopdf: no subgrid contains point")
	ErrUnknownFlavor       = errors.New("neopdf: unknown flavor id")
	ErrInvalidInput        = errors.New("neopdf: invalid input")
	ErrDegenerateGrid      = errors.New("neopdf: degenerate grid")
	ErrIO                  = errors.New("neopdf: i/o error")
	ErrCorrupt             = errors.New("neopdf: corrupt archive")
	ErrUnsupportedVersion  = errors.New("neopdf: unsupported archive version")
)

// OutOfBoundsError reports a coordinate outside the knot range of the
// named axis.
type OutOfBoundsError struct {
	Axis     string
	Value    float64
	Min, Max float64
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("neopdf: %s=%g out of range [%g, %g]", e.Axis, e.Value, e.Min, e.Max)
}

func (e *OutOfBoundsError) Is(target error) bool { return target == ErrOutOfBounds }

// SubgridNotFoundError reports that no subgrid in a GridArray contains
// the requested (x, Q²) point.
type SubgridNotFoundError struct {
	X, Q2 float64
}

func (e *SubgridNotFoundError) Error() string {
	return fmt.Sprintf("neopdf: no subgrid contains x=%g, q2=%g", e.X, e.Q2)
}

func (e *SubgridNotFoundError) Is(target error) bool { return target == ErrSubgridNotFound }

// UnknownFlavorError reports a PDG flavor id absent from a GridArray's
// flavor list.
type UnknownFlavorError struct {
	PID int
}

func (e *UnknownFlavorError) Error() string {
	return fmt.Sprintf("neopdf: unknown flavor id %d", e.PID)
}

func (e *UnknownFlavorError) Is(target error) bool { return target == ErrUnknownFlavor }

// InvalidInputError reports a structurally invalid request: a
// non-positive coordinate on a log-scaled axis, a NaN coordinate, or a
// point vector whose length does not match the interpolation config's
// arity.
type InvalidInputError struct {
	Reason string
	Value  float64
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("neopdf: invalid input: %s (value=%g)", e.Reason, e.Value)
}

func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

// DegenerateGridError reports two adjacent equal knots, or fewer knots
// on an axis than a strategy requires.
type DegenerateGridError struct {
	Axis  string
	Index int
}

func (e *DegenerateGridError) Error() string {
	return fmt.Sprintf("neopdf: degenerate grid on axis %s at index %d", e.Axis, e.Index)
}

func (e *DegenerateGridError) Is(target error) bool { return target == ErrDegenerateGrid }

// IOError wraps an underlying I/O failure encountered while reading or
// writing a container archive.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string { return fmt.Sprintf("neopdf: %s: %v", e.Op, e.Err) }
func (e *IOError) Unwrap() error { return e.Err }
func (e *IOError) Is(target error) bool { return target == ErrIO }

// CorruptError reports a container archive whose framing does not
// match the expected layout.
type CorruptError struct {
	Reason string
}

func (e *CorruptError) Error() string { return fmt.Sprintf("neopdf: corrupt archive: %s", e.Reason) }
func (e *CorruptError) Is(target error) bool { return target == ErrCorrupt }

// UnsupportedVersionError reports a metadata or member payload encoded
// with a version this reader does not understand.
type UnsupportedVersionError struct {
	Got, Want uint32
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("neopdf: unsupported version %d (expected %d)", e.Got, e.Want)
}

func (e *UnsupportedVersionError) Is(target error) bool { return target == ErrUnsupportedVersion }
