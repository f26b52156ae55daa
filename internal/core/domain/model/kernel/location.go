package kernel

import (
	"errors"
	"fmt"
	"math"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// LatMin is the minimum valid latitude in degrees.
	LatMin = -90.0
	// LatMax is the maximum valid latitude in degrees.
	LatMax = 90.0
	// LngMin is the minimum valid longitude in degrees.
	LngMin = -180.0
	// LngMax is the maximum valid longitude in degrees.
	LngMax = 180.0

	// earthRadiusKm is the mean Earth radius used by the haversine formula.
	earthRadiusKm = 6371.0
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly
// initialized Location. Locations must be created via NewLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location is an immutable geocoordinate value object. Coordinates are
// validated once at construction; every derived Location (see Shifted) stays
// within bounds, so position overwrites can never fail.
//
// Example:
//
//	loc, err := kernel.NewLocation(-23.5616, -46.6560)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(loc) // Location(-23.561600,-46.656000)
type Location struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewLocation creates a Location with the given latitude and longitude in
// decimal degrees. Returns an error if either coordinate is out of bounds or
// not a finite number.
func NewLocation(lat, lng float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLat(lat), loc.setLng(lng)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate checks that the Location was created through NewLocation.
// The zero value fails this check.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Lat returns the latitude in decimal degrees.
func (l Location) Lat() float64 {
	return l.lat
}

// Lng returns the longitude in decimal degrees.
func (l Location) Lng() float64 {
	return l.lng
}

// String implements fmt.Stringer.
func (l Location) String() string {
	return fmt.Sprintf("Location(%f,%f)", l.lat, l.lng)
}

// IsEqual compares two locations coordinate-wise. Both must be properly
// constructed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l.lat == other.lat && l.lng == other.lng, nil
}

// DistanceKmTo returns the great-circle (haversine) distance to other in
// kilometers. Both locations must be properly constructed.
func (l Location) DistanceKmTo(other Location) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := l.lat * math.Pi / 180
	lat2 := other.lat * math.Pi / 180
	dLat := (other.lat - l.lat) * math.Pi / 180
	dLng := (other.lng - l.lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c, nil
}

// Shifted returns a new Location displaced by the given deltas, clamped to the
// valid coordinate range. Clamping instead of failing keeps frequent position
// overwrites infallible.
func (l Location) Shifted(dLat, dLng float64) (Location, error) {
	if err := l.Validate(); err != nil {
		return Location{}, err
	}

	return NewLocation(
		clamp(l.lat+dLat, LatMin, LatMax),
		clamp(l.lng+dLng, LngMin, LngMax),
	)
}

// setLat sets the latitude with validation.
// Pointer receiver is intentional: private setters self-encapsulate the
// bounds check during construction.
func (l *Location) setLat(lat float64) error {
	if math.IsNaN(lat) || lat < LatMin || lat > LatMax {
		return errs.NewValueIsOutOfRangeError("lat", lat, LatMin, LatMax)
	}

	l.lat = lat
	return nil
}

// setLng sets the longitude with validation.
func (l *Location) setLng(lng float64) error {
	if math.IsNaN(lng) || lng < LngMin || lng > LngMax {
		return errs.NewValueIsOutOfRangeError("lng", lng, LngMin, LngMax)
	}

	l.lng = lng
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
