package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrypto_Intn(t *testing.T) {
	a := assert.New(t)

	c := Crypto{}
	found := make(map[int]bool)
	// it's possible this could fail, but not likely
	for i := 0; i < 1000; i++ {
		found[c.Intn(5)] = true
	}

	a.True(found[0])
	a.True(found[1])
	a.True(found[2])
	a.True(found[3])
	a.True(found[4])
	a.False(found[5])
}

func TestNew(t *testing.T) {
	a := assert.New(t)

	a.IsType(Crypto{}, New(0))
	a.Equal(NewSeeded(42).Intn(1000), New(42).Intn(1000))

	for i := 0; i < 100; i++ {
		a.Greater(Seed(Crypto{}), int64(0))
	}

	a.Equal(Seed(NewSeeded(7)), Seed(NewSeeded(7)))
}
