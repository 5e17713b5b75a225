package service

import (
	"context"
	"strings"

	"github.com/umeshpagere/cepl-kumbh-mela/internal/directory"
	"github.com/umeshpagere/cepl-kumbh-mela/internal/models"
)

type SearchService interface {
	SearchTrains(ctx context.Context, fromStation, toStation, date string) ([]models.Train, error)
	LookupStations(ctx context.Context, stationName string) ([]models.Station, error)
}

type searchService struct {
	dir *directory.Directory
}

func NewSearchService(dir *directory.Directory) SearchService {
	return &searchService{dir: dir}
}

// SearchTrains returns the timetable legs whose endpoints match the query,
// in directory order. A leg matches when either side of each endpoint pair
// contains the other, case-insensitively, so a full station name and a short
// fragment both work ("Nashik" matches "Nashik Road" and vice versa).
// The date is accepted for wire compatibility but takes no part in matching;
// timetable rows carry their own running days.
// A blank endpoint matches nothing; an empty substring would otherwise match
// every row.
func (s *searchService) SearchTrains(ctx context.Context, fromStation, toStation, date string) ([]models.Train, error) {
	if strings.TrimSpace(fromStation) == "" || strings.TrimSpace(toStation) == "" {
		return nil, nil
	}

	var matches []models.Train
	for _, t := range s.dir.Trains() {
		if containsEither(t.From, fromStation) && containsEither(t.To, toStation) {
			matches = append(matches, t)
		}
	}
	return matches, nil
}

// LookupStations matches stations whose name or code contains the query
// substring, case-insensitively. A blank query matches nothing.
func (s *searchService) LookupStations(ctx context.Context, stationName string) ([]models.Station, error) {
	if strings.TrimSpace(stationName) == "" {
		return nil, nil
	}

	query := strings.ToLower(stationName)
	var matches []models.Station
	for _, st := range s.dir.Stations() {
		if strings.Contains(strings.ToLower(st.Name), query) ||
			strings.Contains(strings.ToLower(st.Code), query) {
			matches = append(matches, st)
		}
	}
	return matches, nil
}

func containsEither(a, b string) bool {
	a, b = strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(a, b) || strings.Contains(b, a)
}
