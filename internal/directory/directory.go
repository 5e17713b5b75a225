// Package directory holds the station and train timetable consulted by
// search. The directory is immutable for the lifetime of the process: it is
// loaded once at startup and only ever read afterwards, so concurrent
// handlers need no coordination.
package directory

import "github.com/umeshpagere/cepl-kumbh-mela/internal/models"

type Directory struct {
	stations []models.Station
	trains   []models.Train
}

func New(stations []models.Station, trains []models.Train) *Directory {
	return &Directory{stations: stations, trains: trains}
}

// Default returns a directory built from the bundled sample timetable.
func Default() *Directory {
	return New(SampleStations(), SampleTrains())
}

func (d *Directory) Stations() []models.Station {
	return d.stations
}

func (d *Directory) Trains() []models.Train {
	return d.trains
}
