package mux

import (
	"errors"
	"net/http"
	"pokerrank/internal/render"
	"pokerrank/pkg/deck"
	"pokerrank/pkg/handanalyzer"

	"github.com/gorilla/mux"
)

type rankPayload struct {
	// Cards is a comma separated list of card tokens, i.e., 14c,2c,**
	Cards string `json:"cards"`

	// Wilds are the wild card designations. Nil uses the server's wild cards
	Wilds *string `json:"wilds"`

	HandSize int   `json:"handSize"`
	Extended *bool `json:"extended"`
}

type cardResponse struct {
	Card  string `json:"card"`
	Index int    `json:"index"`
	As    string `json:"as,omitempty"`
}

type rankResponse struct {
	Category    string         `json:"category"`
	Slug        string         `json:"slug"`
	Values      []int          `json:"values"`
	Royal       bool           `json:"royal"`
	Rank        []cardResponse `json:"rank"`
	Fill        []cardResponse `json:"fill"`
	Description string         `json:"description"`
}

type categoryResponse struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Extended bool   `json:"extended"`
}

func newCardResponses(cards []handanalyzer.HandCard) []cardResponse {
	responses := make([]cardResponse, len(cards))
	for i, card := range cards {
		responses[i] = cardResponse{
			Card:  deck.CardToString(card.Card),
			Index: card.Index,
		}

		if card.IsTamed() {
			suit := "*"
			if card.TamedSuit != deck.NoSuit {
				suit = card.TamedSuit.Token()
			}

			responses[i].As = card.TamedValue.Token() + suit
		}
	}

	return responses
}

func newRankResponse(result *handanalyzer.Result) rankResponse {
	values := make([]int, len(result.Signature.Values))
	for i, v := range result.Signature.Values {
		values[i] = int(v)
	}

	return rankResponse{
		Category:    result.Category().String(),
		Slug:        result.Category().Slug(),
		Values:      values,
		Royal:       result.Signature.IsRoyal(),
		Rank:        newCardResponses(result.RankCards),
		Fill:        newCardResponses(result.FillCards),
		Description: render.Describe(result),
	}
}

// parse returns the ranker, cards, and wild cards of a request
func (m *Mux) parse(p rankPayload) (*handanalyzer.Ranker, []deck.Card, []deck.Card, error) {
	ranker, err := m.rankerFor(p.HandSize, p.Extended)
	if err != nil {
		return nil, nil, nil, err
	}

	cards, err := deck.ParseCards(p.Cards)
	if err != nil {
		return nil, nil, nil, err
	}

	wilds := m.wilds
	if p.Wilds != nil {
		if wilds, err = deck.ParseCards(*p.Wilds); err != nil {
			return nil, nil, nil, err
		}
	}

	return ranker, cards, wilds, nil
}

func (m *Mux) rank(p rankPayload) (*rankResponse, error) {
	ranker, cards, wilds, err := m.parse(p)
	if err != nil {
		return nil, err
	}

	result, err := ranker.Rank(cards, wilds)
	if err != nil {
		return nil, err
	}

	resp := newRankResponse(result)
	return &resp, nil
}

func (m *Mux) getCategory() http.HandlerFunc {
	categories := handanalyzer.Categories(true)
	payload := make([]categoryResponse, len(categories))
	for i, c := range categories {
		payload[i] = categoryResponse{
			Name:     c.String(),
			Slug:     c.Slug(),
			Extended: c.IsExtended(),
		}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, payload)
	}
}

func (m *Mux) postRank() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p rankPayload
		if !decodeRequest(w, r, &p) {
			return
		}

		resp, err := m.rank(p)
		if err != nil {
			writeRankError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func (m *Mux) postRankCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, err := handanalyzer.ParseCategory(mux.Vars(r)["category"])
		if err != nil {
			writeJSONError(w, http.StatusNotFound, err)
			return
		}

		var p rankPayload
		if !decodeRequest(w, r, &p) {
			return
		}

		ranker, cards, wilds, err := m.parse(p)
		if err != nil {
			writeRankError(w, err)
			return
		}

		result, ok, err := ranker.RankAs(cards, wilds, category)
		if err != nil {
			writeRankError(w, err)
			return
		}

		if !ok {
			writeJSONError(w, http.StatusNotFound, errors.New("hand does not make "+category.String()))
			return
		}

		writeJSON(w, http.StatusOK, newRankResponse(result))
	}
}

func (m *Mux) postProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p rankPayload
		if !decodeRequest(w, r, &p) {
			return
		}

		ranker, cards, wilds, err := m.parse(p)
		if err != nil {
			writeRankError(w, err)
			return
		}

		results, err := ranker.Profile(cards, wilds)
		if err != nil {
			writeRankError(w, err)
			return
		}

		resp := make([]rankResponse, len(results))
		for i, result := range results {
			resp[i] = newRankResponse(result)
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
