package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/airline-seat-reservation/internal/model"
)

// fakeSearchStore serves canned matches and discounts and records the
// queries it receives.
type fakeSearchStore struct {
	matches    map[string][]FlightMatch // keyed From|To
	discounts  map[uint64]float64       // per flight, date-window variant
	current    map[uint64]float64       // per flight, now-window variant
	departures map[string][]RouteOption

	queries []SearchQuery
}

func (f *fakeSearchStore) MatchFlights(_ context.Context, q SearchQuery) ([]FlightMatch, error) {
	f.queries = append(f.queries, q)
	return f.matches[q.From+"|"+q.To], nil
}

func (f *fakeSearchStore) BestDiscountAt(_ context.Context, flightID uint64, _ time.Time) (float64, bool, error) {
	rate, ok := f.discounts[flightID]
	return rate, ok, nil
}

func (f *fakeSearchStore) BestCurrentDiscount(_ context.Context, flightID uint64) (float64, bool, error) {
	rate, ok := f.current[flightID]
	return rate, ok, nil
}

func (f *fakeSearchStore) DeparturesFrom(_ context.Context, origin string) ([]RouteOption, error) {
	return f.departures[origin], nil
}

var _ SearchStore = (*fakeSearchStore)(nil)

func match(id uint64, from, to string) FlightMatch {
	return FlightMatch{
		Flight: model.Flight{ID: id},
		From:   model.Airport{Location: from},
		To:     model.Airport{Location: to},
	}
}

func searchFixture() (*SearchService, *fakeSearchStore) {
	store := &fakeSearchStore{
		matches: map[string][]FlightMatch{
			"Oslo|Berlin": {match(1, "Oslo", "Berlin"), match(2, "Oslo", "Berlin")},
			"Berlin|Oslo": {match(3, "Berlin", "Oslo")},
		},
		discounts:  map[uint64]float64{1: 0.25},
		current:    map[uint64]float64{5: 0.10},
		departures: map[string][]RouteOption{},
	}
	return NewSearchService(store), store
}

func query(from, to string) SearchQuery {
	return SearchQuery{
		From:    from,
		To:      to,
		Date:    time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC),
		Persons: 2,
		Class:   model.ClassEconomy,
	}
}

func TestSearchValidation(t *testing.T) {
	svc, _ := searchFixture()
	ctx := context.Background()

	cases := []SearchQuery{
		{To: "Berlin", Date: time.Now(), Class: model.ClassEconomy},      // missing origin
		{From: "Oslo", Date: time.Now(), Class: model.ClassEconomy},      // missing destination
		{From: "Oslo", To: "Berlin", Class: model.ClassEconomy},          // zero date
		{From: "Oslo", To: "Berlin", Date: time.Now(), Class: "Premium"}, // unknown class
		{From: "Oslo", To: "Berlin", Date: time.Now(), Persons: -1, Class: model.ClassEconomy},
	}
	for _, q := range cases {
		_, err := svc.Search(ctx, q)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestSearchEnrichesDiscounts(t *testing.T) {
	svc, _ := searchFixture()

	results, err := svc.Search(context.Background(), query("Oslo", "Berlin"))
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Flight 1 has an active promotion, flight 2 does not.
	require.NotNil(t, results[0].DiscountRate)
	assert.InDelta(t, 0.25, *results[0].DiscountRate, 1e-9)
	assert.Nil(t, results[1].DiscountRate)
}

// availabilitySearchStore filters matches by a seeded per-flight open
// seat count, the way the store's availability subquery does.
type availabilitySearchStore struct {
	fakeSearchStore
	available map[uint64]int
}

func (f *availabilitySearchStore) MatchFlights(ctx context.Context, q SearchQuery) ([]FlightMatch, error) {
	all, err := f.fakeSearchStore.MatchFlights(ctx, q)
	if err != nil {
		return nil, err
	}
	out := make([]FlightMatch, 0, len(all))
	for _, m := range all {
		if f.available[m.Flight.ID] > q.Persons {
			out = append(out, m)
		}
	}
	return out, nil
}

func TestSearchThresholdStrictlyGreater(t *testing.T) {
	store := &availabilitySearchStore{
		fakeSearchStore: fakeSearchStore{
			matches: map[string][]FlightMatch{
				"Oslo|Berlin": {match(1, "Oslo", "Berlin")},
			},
		},
		available: map[uint64]int{1: 3},
	}
	svc := NewSearchService(store)

	// Three open seats cover a party of two with a seat to spare.
	q := query("Oslo", "Berlin")
	q.Persons = 2
	results, err := svc.Search(context.Background(), q)
	require.NoError(t, err)
	assert.Len(t, results, 1)

	// A party equal to the open seat count must not match: the
	// threshold is strictly greater, never greater-or-equal.
	q.Persons = 3
	_, err = svc.Search(context.Background(), q)
	assert.ErrorIs(t, err, ErrNoFlights)

	q.Persons = 4
	_, err = svc.Search(context.Background(), q)
	assert.ErrorIs(t, err, ErrNoFlights)
}

func TestSearchForwardsPartySize(t *testing.T) {
	svc, store := searchFixture()
	q := query("Oslo", "Berlin")
	q.Persons = 5

	_, err := svc.Search(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, store.queries, 1)
	assert.Equal(t, 5, store.queries[0].Persons)
}

func TestSearchNoFlights(t *testing.T) {
	svc, _ := searchFixture()
	_, err := svc.Search(context.Background(), query("Oslo", "Tokyo"))
	assert.ErrorIs(t, err, ErrNoFlights)
}

func TestSearchTrimsWhitespace(t *testing.T) {
	svc, store := searchFixture()
	_, err := svc.Search(context.Background(), query("  Oslo ", " Berlin "))
	require.NoError(t, err)
	require.NotEmpty(t, store.queries)
	assert.Equal(t, "Oslo", store.queries[0].From)
	assert.Equal(t, "Berlin", store.queries[0].To)
}

func TestSearchRoundTripSwapsLegs(t *testing.T) {
	svc, store := searchFixture()
	returnDate := time.Date(2026, 6, 8, 10, 0, 0, 0, time.UTC)

	result, err := svc.SearchRoundTrip(context.Background(), query("Oslo", "Berlin"), returnDate)
	require.NoError(t, err)
	assert.Len(t, result.Outbound, 2)
	assert.Len(t, result.Return, 1)

	require.Len(t, store.queries, 2)
	ret := store.queries[1]
	assert.Equal(t, "Berlin", ret.From)
	assert.Equal(t, "Oslo", ret.To)
	assert.Equal(t, returnDate, ret.Date)
	// Party size and class carry over unchanged.
	assert.Equal(t, 2, ret.Persons)
	assert.Equal(t, model.ClassEconomy, ret.Class)
}

func TestSearchRoundTripFailsWhenReturnLegEmpty(t *testing.T) {
	svc, store := searchFixture()
	// Outbound matches exist, the swapped leg does not.
	delete(store.matches, "Berlin|Oslo")

	_, err := svc.SearchRoundTrip(context.Background(), query("Oslo", "Berlin"), time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrNoFlights)
}

func TestSearchRoundTripValidation(t *testing.T) {
	svc, _ := searchFixture()
	_, err := svc.SearchRoundTrip(context.Background(), query("Oslo", "Berlin"), time.Time{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSuggest(t *testing.T) {
	svc, store := searchFixture()
	store.departures["Oslo"] = []RouteOption{
		{FlightID: 5, BasePriceCents: 12000, Location: "Berlin", Country: "Germany"},
		{FlightID: 6, BasePriceCents: 22000, Location: "Rome", Country: "Italy"},
	}

	options, err := svc.Suggest(context.Background(), "Oslo")
	require.NoError(t, err)
	require.Len(t, options, 2)

	// Flight 5 has a promotion running right now, flight 6 does not.
	require.NotNil(t, options[0].DiscountRate)
	assert.InDelta(t, 0.10, *options[0].DiscountRate, 1e-9)
	assert.Nil(t, options[1].DiscountRate)
}

func TestSuggestNoDepartures(t *testing.T) {
	svc, _ := searchFixture()
	_, err := svc.Suggest(context.Background(), "Tromso")
	assert.ErrorIs(t, err, ErrNoFlights)
}

func TestSuggestValidation(t *testing.T) {
	svc, _ := searchFixture()
	_, err := svc.Suggest(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrValidation)
}
