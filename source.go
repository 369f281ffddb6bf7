package randkit

import (
	cryptorand "crypto/rand"
	"math/big"
	"math/rand/v2"
)

// Source is the underlying uniform integer primitive. Int64N returns a value
// drawn uniformly from [0, n). Callers must only pass n > 0.
type Source interface {
	Int64N(n int64) int64
}

// defaultSource draws from math/rand/v2's process-global state, which is
// safe for concurrent use.
type defaultSource struct{}

func (defaultSource) Int64N(n int64) int64 {
	return rand.Int64N(n)
}

// CryptoSource is a Source that draws from crypto/rand. Use it when draws
// should come from the system entropy pool instead of the seeded
// pseudo-random state. It panics if the entropy reader fails.
type CryptoSource struct{}

func (CryptoSource) Int64N(n int64) int64 {
	v, err := cryptorand.Int(cryptorand.Reader, big.NewInt(n))
	if err != nil {
		panic(err)
	}

	return v.Int64()
}
