package randkit

import "fmt"

// Generator draws uniform random integers from an explicit Source.
// Substituting a deterministic Source makes draws reproducible in tests.
type Generator struct {
	src Source
}

// New returns a Generator backed by src.
func New(src Source) *Generator {
	return &Generator{src: src}
}

// Int64Range returns a uniform random integer in [min, max] inclusive.
// It returns ErrInvalidRange if min > max. A degenerate range (min == max)
// returns that value without consuming the source. The span max-min+1 must
// fit in an int64.
func (g *Generator) Int64Range(min, max int64) (int64, error) {
	if min > max {
		return 0, fmt.Errorf("%w: min=%d max=%d", ErrInvalidRange, min, max)
	}

	if min == max {
		return min, nil
	}

	return min + g.src.Int64N(max-min+1), nil
}

// IntRange returns a uniform random integer in [min, max] inclusive.
// It returns ErrInvalidRange if min > max.
func (g *Generator) IntRange(min, max int) (int, error) {
	n, err := g.Int64Range(int64(min), int64(max))
	if err != nil {
		return 0, err
	}

	return int(n), nil
}

var global = New(defaultSource{})

// Int64Range returns a uniform random integer in [min, max] inclusive,
// drawn from the shared default source. It returns ErrInvalidRange
// if min > max.
func Int64Range(min, max int64) (int64, error) {
	return global.Int64Range(min, max)
}

// IntRange returns a uniform random integer in [min, max] inclusive,
// drawn from the shared default source. It returns ErrInvalidRange
// if min > max.
func IntRange(min, max int) (int, error) {
	return global.IntRange(min, max)
}
