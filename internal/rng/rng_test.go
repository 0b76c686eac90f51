package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSeeded(t *testing.T) {
	a := assert.New(t)

	g1 := NewSeeded(99)
	g2 := NewSeeded(99)
	for i := 0; i < 100; i++ {
		n := g1.Intn(13)
		a.Equal(n, g2.Intn(13))
		a.True(n >= 0 && n < 13)
	}
}
