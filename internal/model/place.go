// Package model defines the core domain types for the directory.
package model

import (
	"math"

	"github.com/rotisserie/eris"
)

// Place is one catalog entry: a listing with coordinates and two parallel
// rich-text representations of the same content. TextUser is shown to end
// users; TextChannel additionally carries a leading reference-number line.
type Place struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	TextUser    string  `json:"text_user"`
	TextChannel string  `json:"text_channel"`
}

// Validate checks that the place has a name and usable coordinates.
func (p Place) Validate() error {
	if p.Name == "" {
		return eris.New("place: name is required")
	}
	if !(Coordinate{Lat: p.Lat, Lng: p.Lng}).Valid() {
		return eris.Errorf("place: invalid coordinates (%v, %v)", p.Lat, p.Lng)
	}
	return nil
}

// DisplayText returns the user-facing representation, falling back to the
// channel representation when the user text is missing.
func (p Place) DisplayText() string {
	if p.TextUser != "" {
		return p.TextUser
	}
	return p.TextChannel
}

// Representations returns pointers to every text representation of the
// place, in a fixed order. Mutation applies the same edit to each.
func (p *Place) Representations() []*string {
	return []*string{&p.TextUser, &p.TextChannel}
}

// Coordinate is a latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether both values are finite and in range.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) || math.IsNaN(c.Lng) || math.IsInf(c.Lng, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}
