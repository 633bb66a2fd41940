package service

import (
	"context"
	"strings"
	"time"

	"github.com/iliyamo/airline-seat-reservation/internal/model"
)

// SearchQuery carries the parameters of a one-way flight search.
// Persons is the party size: a flight qualifies only when it has
// strictly more Available seats of Class than Persons.
type SearchQuery struct {
	From    string
	To      string
	Date    time.Time
	Persons int
	Class   string
}

// FlightMatch is a flight that satisfied a search, joined to its
// route airports.
type FlightMatch struct {
	Flight model.Flight  `json:"flight"`
	From   model.Airport `json:"from"`
	To     model.Airport `json:"to"`
}

// SearchResult is a FlightMatch enriched with the best promotion
// discount active at the search date, when one exists.
type SearchResult struct {
	FlightMatch
	DiscountRate *float64 `json:"discount_rate,omitempty"`
}

// RoundTripResult holds both legs of a two-way search.  The legs are
// produced by two independent one-way searches and share no state.
type RoundTripResult struct {
	Outbound []SearchResult `json:"outbound"`
	Return   []SearchResult `json:"return"`
}

// RouteOption is one destination reachable from a suggestion origin.
type RouteOption struct {
	FlightID       uint64   `json:"flight_id"`
	BasePriceCents uint32   `json:"base_price_cents"`
	Location       string   `json:"location"`
	Country        string   `json:"country"`
	DiscountRate   *float64 `json:"discount_rate,omitempty"`
}

// SearchStore is the read-side port the search engine consumes.
// Implementations run snapshot reads; results may be momentarily
// stale relative to in-flight bookings, which search tolerates.
type SearchStore interface {
	// MatchFlights returns flights whose route airports match the
	// query, whose scheduled or delay-updated departure equals the
	// query date, and whose Available seat count for the class is
	// strictly greater than Persons.
	MatchFlights(ctx context.Context, q SearchQuery) ([]FlightMatch, error)

	// BestDiscountAt returns the highest discount rate among the
	// flight's promotions whose window contains ref
	// (start < ref <= end).  Ties break toward the lowest promotion
	// ID so the answer is stable.  ok is false when no window matches.
	BestDiscountAt(ctx context.Context, flightID uint64, ref time.Time) (rate float64, ok bool, err error)

	// BestCurrentDiscount is the forward-looking variant used by
	// suggestions: the window must satisfy start < now and end > now.
	BestCurrentDiscount(ctx context.Context, flightID uint64) (rate float64, ok bool, err error)

	// DeparturesFrom lists every flight leaving the given origin with
	// its destination and base fare.
	DeparturesFrom(ctx context.Context, origin string) ([]RouteOption, error)
}

// SearchService answers availability-filtered flight searches and
// destination suggestions.
type SearchService struct {
	store SearchStore
}

// NewSearchService returns a SearchService backed by the given store.
func NewSearchService(store SearchStore) *SearchService {
	return &SearchService{store: store}
}

// Search returns every flight matching the query, each enriched with
// the best promotion discount active on the travel date.  It fails
// with ErrNoFlights when nothing matches.
func (s *SearchService) Search(ctx context.Context, q SearchQuery) ([]SearchResult, error) {
	q.From = strings.TrimSpace(q.From)
	q.To = strings.TrimSpace(q.To)
	if q.From == "" || q.To == "" || q.Date.IsZero() || q.Persons < 0 || !model.ValidClass(q.Class) {
		return nil, ErrValidation
	}

	matches, err := s.store.MatchFlights(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ErrNoFlights
	}

	out := make([]SearchResult, 0, len(matches))
	for _, m := range matches {
		r := SearchResult{FlightMatch: m}
		rate, ok, err := s.store.BestDiscountAt(ctx, m.Flight.ID, q.Date)
		if err != nil {
			return nil, err
		}
		if ok {
			r.DiscountRate = &rate
		}
		out = append(out, r)
	}
	return out, nil
}

// SearchRoundTrip runs the one-way search twice: once as given and
// once with origin/destination swapped on the return date.  Either
// leg failing (including ErrNoFlights) fails the whole call.
func (s *SearchService) SearchRoundTrip(ctx context.Context, q SearchQuery, returnDate time.Time) (*RoundTripResult, error) {
	if returnDate.IsZero() {
		return nil, ErrValidation
	}

	outbound, err := s.Search(ctx, q)
	if err != nil {
		return nil, err
	}

	back := q
	back.From, back.To = q.To, q.From
	back.Date = returnDate
	ret, err := s.Search(ctx, back)
	if err != nil {
		return nil, err
	}

	return &RoundTripResult{Outbound: outbound, Return: ret}, nil
}

// Suggest lists destinations reachable from an origin together with
// base fares and any promotion currently running.  It fails with
// ErrNoFlights when no flight departs from the origin.
func (s *SearchService) Suggest(ctx context.Context, from string) ([]RouteOption, error) {
	from = strings.TrimSpace(from)
	if from == "" {
		return nil, ErrValidation
	}

	options, err := s.store.DeparturesFrom(ctx, from)
	if err != nil {
		return nil, err
	}
	if len(options) == 0 {
		return nil, ErrNoFlights
	}

	for i := range options {
		rate, ok, err := s.store.BestCurrentDiscount(ctx, options[i].FlightID)
		if err != nil {
			return nil, err
		}
		if ok {
			r := rate
			options[i].DiscountRate = &r
		}
	}
	return options, nil
}
