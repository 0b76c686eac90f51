package mux

import (
	"errors"
	"net/http"
	"pokerrank/internal/rng"
	"pokerrank/pkg/deck"
	"strconv"
)

const maxDealt = 52
const defaultDealt = 7

type dealResponse struct {
	Seed  int64       `json:"seed"`
	Start int64       `json:"start"`
	Hands []dealtHand `json:"hands"`
}

type dealtHand struct {
	Cards  string       `json:"cards"`
	Result rankResponse `json:"result"`
}

// getDeal deals hands from freshly shuffled decks and ranks them
// Hand n is dealt from a deck shuffled with seed+n, so pages can be fetched in any order.
func (m *Mux) getDeal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, rows, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		seed := rng.Seed(rng.Crypto{})
		if s := r.FormValue("seed"); s != "" {
			if seed, err = strconv.ParseInt(s, 10, 64); err != nil || seed <= 0 {
				writeJSONError(w, http.StatusBadRequest, errors.New("seed must be a positive integer"))
				return
			}
		}

		dealt := max(defaultDealt, m.options.HandSize)
		if s := r.FormValue("dealt"); s != "" {
			if dealt, err = strconv.Atoi(s); err != nil || dealt < m.options.HandSize || dealt > maxDealt {
				writeJSONError(w, http.StatusBadRequest, errors.New("dealt must be between the hand size and 52"))
				return
			}
		}

		resp := dealResponse{
			Seed:  seed,
			Start: start,
			Hands: make([]dealtHand, 0, rows),
		}

		d := deck.New()
		for i := int64(0); i < int64(rows); i++ {
			d.Shuffle(seed + start + i)
			hand, err := d.DrawN(dealt)
			if err != nil {
				writeJSONError(w, http.StatusInternalServerError, err)
				return
			}

			result, err := m.ranker.Rank(hand, m.wilds)
			if err != nil {
				writeRankError(w, err)
				return
			}

			resp.Hands = append(resp.Hands, dealtHand{
				Cards:  hand.String(),
				Result: newRankResponse(result),
			})
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
