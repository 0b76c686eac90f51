package rng

import (
	"crypto/rand"
	"math"
	"math/big"
)

// Crypto wraps the crypto/rand library
// It is used when no seed is configured, so runs are not reproducible.
type Crypto struct{}

// Intn returns a random number from 0 <= x < n
func (c Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}

// New returns a generator for seed. A seed of 0 returns a Crypto generator.
func New(seed int64) Generator {
	if seed == 0 {
		return Crypto{}
	}

	return NewSeeded(seed)
}

// Seed returns a positive seed drawn from g
// Decks only accept positive seeds when they should be reproducible.
func Seed(g Generator) int64 {
	return int64(g.Intn(math.MaxInt32)) + 1
}
