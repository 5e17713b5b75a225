package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umeshpagere/cepl-kumbh-mela/internal/directory"
)

func newTestSearchService() SearchService {
	return NewSearchService(directory.Default())
}

func TestSearchTrains_FragmentMatchesFullStationName(t *testing.T) {
	svc := newTestSearchService()

	trains, err := svc.SearchTrains(context.Background(), "Mumbai CST", "Nashik", "2027-08-15")
	require.NoError(t, err)
	require.NotEmpty(t, trains)

	names := make([]string, len(trains))
	for i, tr := range trains {
		assert.Equal(t, "Mumbai CST", tr.From)
		assert.Equal(t, "Nashik Road", tr.To, `"Nashik Road" contains "Nashik"`)
		names[i] = tr.Name
	}
	assert.Contains(t, names, "PANCHAVATI EXP")
}

func TestSearchTrains_QueryContainingStationNameMatches(t *testing.T) {
	svc := newTestSearchService()

	// containment works in both directions: a query longer than the
	// timetable value still matches
	trains, err := svc.SearchTrains(context.Background(), "Central Mumbai CST", "Nashik Road Station", "2027-08-15")
	require.NoError(t, err)
	require.NotEmpty(t, trains)
	for _, tr := range trains {
		assert.Equal(t, "Mumbai CST", tr.From)
	}
}

func TestSearchTrains_CaseInsensitive(t *testing.T) {
	svc := newTestSearchService()

	trains, err := svc.SearchTrains(context.Background(), "pune", "nashik", "2027-08-15")
	require.NoError(t, err)
	require.Len(t, trains, 2)
	assert.Equal(t, "AZAD HIND EXP", trains[0].Name)
	assert.Equal(t, "PUNE NAGPUR EXP", trains[1].Name)
}

func TestSearchTrains_DateTakesNoPartInMatching(t *testing.T) {
	svc := newTestSearchService()
	ctx := context.Background()

	a, err := svc.SearchTrains(ctx, "New Delhi", "Nashik", "2027-08-15")
	require.NoError(t, err)
	b, err := svc.SearchTrains(ctx, "New Delhi", "Nashik", "1999-01-01")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestSearchTrains_BlankEndpointMatchesNothing(t *testing.T) {
	svc := newTestSearchService()
	ctx := context.Background()

	cases := []struct{ from, to string }{
		{"", ""},
		{"", "Nashik"},
		{"Mumbai CST", ""},
		{"   ", "Nashik"},
	}

	for _, tc := range cases {
		trains, err := svc.SearchTrains(ctx, tc.from, tc.to, "2027-08-15")
		require.NoError(t, err)
		assert.Empty(t, trains, "from=%q to=%q", tc.from, tc.to)
	}
}

func TestSearchTrains_NoMatches(t *testing.T) {
	svc := newTestSearchService()

	trains, err := svc.SearchTrains(context.Background(), "Jaipur", "Howrah", "2027-08-15")
	require.NoError(t, err)
	assert.Empty(t, trains)
}

func TestSearchTrains_DirectoryOrderPreserved(t *testing.T) {
	svc := newTestSearchService()

	trains, err := svc.SearchTrains(context.Background(), "Mumbai", "Nashik", "2027-08-15")
	require.NoError(t, err)
	require.Len(t, trains, 3)
	assert.Equal(t, "PANCHAVATI EXP", trains[0].Name)
	assert.Equal(t, "CSMT AMI EXP", trains[1].Name)
	assert.Equal(t, "LTT MANMAD EXP", trains[2].Name)
}

func TestLookupStations_ByCode(t *testing.T) {
	svc := newTestSearchService()

	stations, err := svc.LookupStations(context.Background(), "nk")
	require.NoError(t, err)
	require.Len(t, stations, 1)
	assert.Equal(t, "NK", stations[0].Code)
	assert.Equal(t, "Nashik Road", stations[0].Name)
}

func TestLookupStations_ByNameSubstring(t *testing.T) {
	svc := newTestSearchService()

	stations, err := svc.LookupStations(context.Background(), "Mumbai")
	require.NoError(t, err)
	require.Len(t, stations, 4)
	assert.Equal(t, "CSMT", stations[0].Code)
}

func TestLookupStations_BlankQueryMatchesNothing(t *testing.T) {
	svc := newTestSearchService()

	for _, query := range []string{"", "   "} {
		stations, err := svc.LookupStations(context.Background(), query)
		require.NoError(t, err)
		assert.Empty(t, stations, "query=%q", query)
	}
}

func TestLookupStations_NoMatches(t *testing.T) {
	svc := newTestSearchService()

	stations, err := svc.LookupStations(context.Background(), "zzz")
	require.NoError(t, err)
	assert.Empty(t, stations)
}
