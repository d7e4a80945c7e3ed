// Package readval provides sources of sequential integers.
//
// Every source yields one integer per call to Int and reports exhaustion or
// malformed data as an error; none of them fall back to a default value.
package readval

import (
	"github.com/pkg/errors"
)

var (
	// ErrExhausted is returned once a source has no more integers.
	ErrExhausted = errors.New("input exhausted")
	// ErrNotInteger is returned for a token that is not a base-10 integer
	// representable as an int.
	ErrNotInteger = errors.New("not an integer")
	// ErrTruncated is returned when binary input ends inside a record.
	ErrTruncated = errors.New("truncated record")
)

// Source yields integers in order.
type Source interface {
	Int() (int, error)
}

// Fixed is a Source over an in-memory sequence.
type Fixed struct {
	vals []int
	next int
}

var _ Source = (*Fixed)(nil)

// NewFixed returns a source yielding vals in order.
func NewFixed(vals ...int) *Fixed {
	return &Fixed{vals: vals}
}

// Int returns the next value, or ErrExhausted after the last one.
func (f *Fixed) Int() (int, error) {
	if f.next >= len(f.vals) {
		return 0, errors.Wrapf(ErrExhausted, "after %d values", len(f.vals))
	}
	v := f.vals[f.next]
	f.next++
	return v, nil
}
