package handanalyzer

import (
	"fmt"
	"pokerrank/pkg/deck"
	"strings"
)

// Signature orders ranked hands
// Category decides first, then Values are compared one by one, higher wins.
type Signature struct {
	Category Category     `json:"category"`
	Values   []deck.Value `json:"values"`
}

// Compare returns 1 if s beats other, -1 if other beats s, and 0 on a tie
func (s Signature) Compare(other Signature) int {
	if s.Category != other.Category {
		if s.Category > other.Category {
			return 1
		}

		return -1
	}

	return CompareValues(s.Values, other.Values)
}

// Beats returns true if s is stronger than other
func (s Signature) Beats(other Signature) bool {
	return s.Compare(other) > 0
}

// Equal returns true if neither signature beats the other
func (s Signature) Equal(other Signature) bool {
	return s.Compare(other) == 0
}

// IsRoyal returns true for an ace-high straight flush
func (s Signature) IsRoyal() bool {
	return s.Category == StraightFlush && len(s.Values) > 0 && s.Values[0] == deck.Ace
}

func (s Signature) String() string {
	values := make([]string, len(s.Values))
	for i, v := range s.Values {
		values[i] = v.String()
	}

	return fmt.Sprintf("%s [%s]", s.Category, strings.Join(values, ", "))
}

// CompareValues compares a and b element by element, higher values first
// The first difference decides. If one is a prefix of the other, the shorter one is lower.
func CompareValues(a, b []deck.Value) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] > b[i] {
			return 1
		} else if a[i] < b[i] {
			return -1
		}
	}

	switch {
	case len(a) > len(b):
		return 1
	case len(a) < len(b):
		return -1
	default:
		return 0
	}
}
