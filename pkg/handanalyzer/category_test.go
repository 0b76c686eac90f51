package handanalyzer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("Five of a kind", FiveOfAKind.String())
	a.Equal("Big bobtail", BigBobtail.String())
	a.Equal("Two pair", TwoPair.String())
	a.Equal("High card", HighCard.String())
	a.Equal("full-house", FullHouse.Slug())
	a.Equal("bobtail-straight", BobtailStraight.Slug())

	a.PanicsWithValue("unknown category: 99", func() {
		_ = Category(99).String()
	})
}

func TestCategory_strengthOrder(t *testing.T) {
	a := assert.New(t)

	for _, categories := range [][]Category{standardCategories, allCategories} {
		for i := 1; i < len(categories); i++ {
			a.Greater(int(categories[i-1]), int(categories[i]))
		}
	}

	a.Len(allCategories, 14)
	for _, c := range allCategories {
		a.True(c.IsValid())
		if c.IsExtended() {
			a.NotContains(standardCategories, c)
		} else {
			a.Contains(standardCategories, c)
		}
	}
}

func TestParseCategory(t *testing.T) {
	a := assert.New(t)

	for _, c := range allCategories {
		parsed, err := ParseCategory(c.Slug())
		a.NoError(err)
		a.Equal(c, parsed)

		parsed, err = ParseCategory(c.String())
		a.NoError(err)
		a.Equal(c, parsed)
	}

	c, err := ParseCategory(" Straight Flush ")
	a.NoError(err)
	a.Equal(StraightFlush, c)

	c, err = ParseCategory("royal-flush")
	a.Equal(NoCategory, c)
	a.True(errors.Is(err, ErrInvalidParameter))
}

func Test_sizedCategories(t *testing.T) {
	a := assert.New(t)

	c, err := kindCategory(4)
	a.NoError(err)
	a.Equal(FourOfAKind, c)

	_, err = kindCategory(6)
	a.EqualError(err, "expected n-of-a-kind between 2 and 5, got 6")

	c, err = flushCategory(4)
	a.NoError(err)
	a.Equal(BobtailFlush, c)

	_, err = flushCategory(3)
	a.True(errors.Is(err, ErrInvalidParameter))

	c, err = straightCategory(3, true)
	a.NoError(err)
	a.Equal(LittleBobtail, c)

	_, err = straightCategory(3, false)
	a.EqualError(err, "expected straight size between 4 and 5, got 3")

	_, err = straightCategory(6, true)
	a.True(errors.Is(err, ErrInvalidParameter))
}
