package mux

import (
	"net/http"
	"pokerrank/pkg/deck"
	"pokerrank/pkg/handanalyzer"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	logger  logrus.FieldLogger
	version string
	options handanalyzer.Options
	wilds   []deck.Card
	ranker  *handanalyzer.Ranker
}

// NewMux returns a new HTTP mux
// Requests that do not set their own hand size, extended flag, or wild cards use opts and wilds.
func NewMux(logger logrus.FieldLogger, version string, opts handanalyzer.Options, wilds []deck.Card) (*Mux, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	ranker, err := handanalyzer.NewRanker(logger, opts)
	if err != nil {
		return nil, err
	}

	this := &Mux{
		Router:  gmux.NewRouter(),
		logger:  logger,
		version: version,
		options: opts,
		wilds:   append([]deck.Card(nil), wilds...),
		ranker:  ranker,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/category").Handler(this.getCategory())
	r.Methods(http.MethodPost).Path("/rank").Handler(this.postRank())
	r.Methods(http.MethodPost).Path("/rank/{category:[a-z-]+}").Handler(this.postRankCategory())
	r.Methods(http.MethodPost).Path("/profile").Handler(this.postProfile())
	r.Methods(http.MethodGet).Path("/deal").Handler(this.getDeal())
	r.Methods(http.MethodGet).Path("/ws").Handler(this.getWS())

	return this, nil
}

// rankerFor returns the ranker for a request's options
func (m *Mux) rankerFor(handSize int, extended *bool) (*handanalyzer.Ranker, error) {
	opts := m.options
	if handSize != 0 {
		opts.HandSize = handSize
	}

	if extended != nil {
		opts.Extended = *extended
	}

	if opts == m.options {
		return m.ranker, nil
	}

	return handanalyzer.NewRanker(m.logger, opts)
}
