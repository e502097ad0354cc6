package trace

import (
	"fmt"
	"math"

	"github.com/seislab/sacio/errs"
)

// MeanEarthRadiusKm is the spherical-earth radius used to convert
// great-circle arc length to kilometers.
const MeanEarthRadiusKm = 6371.0

// DistAz holds the derived station/event geometry: great-circle distance in
// degrees and kilometers, azimuth (initial bearing from event to station)
// and back-azimuth (station to event), both in [0, 360) degrees.
type DistAz struct {
	DistanceDeg float64
	DistanceKm  float64
	Azimuth     float64
	BackAzimuth float64
}

// GreatCircle computes the spherical-earth distance and azimuth between the
// event and station coordinates stored in the header.
//
// All trigonometry runs in double precision even though the header stores
// single-precision coordinates, bounding round-trip error; callers that
// compare against stored header values should narrow the result to float32.
//
// Returns:
//   - DistAz: Derived geometry
//   - error: errs.ErrMissingCoordinate when any of stla, stlo, evla, evlo
//     is unset
func (r *Record) GreatCircle() (DistAz, error) {
	stla, stlo, ok := r.StationLocation()
	if !ok {
		return DistAz{}, fmt.Errorf("%w: station", errs.ErrMissingCoordinate)
	}
	evla, evlo, ok := r.EventLocation()
	if !ok {
		return DistAz{}, fmt.Errorf("%w: event", errs.ErrMissingCoordinate)
	}

	return greatCircle(evla, evlo, stla, stlo), nil
}

// ComputeDistAz derives gcarc, dist, az and baz from the station and event
// coordinates and stores them in the header. It is a no-op unless the
// lcalda flag is set and all four coordinates are present, matching the
// reference toolchain.
func (r *Record) ComputeDistAz() {
	if !r.CalcDistAz() {
		return
	}
	da, err := r.GreatCircle()
	if err != nil {
		return
	}

	r.floats["gcarc"] = float32(da.DistanceDeg)
	r.floats["dist"] = float32(da.DistanceKm)
	r.floats["az"] = float32(da.Azimuth)
	r.floats["baz"] = float32(da.BackAzimuth)
}

// greatCircle computes the haversine distance and initial bearings between
// (lat1, lon1) and (lat2, lon2), in degrees.
func greatCircle(lat1, lon1, lat2, lon2 float64) DistAz {
	phi1 := lat1 * math.Pi / 180.0
	phi2 := lat2 * math.Pi / 180.0
	dphi := (lat2 - lat1) * math.Pi / 180.0
	dlam := (lon2 - lon1) * math.Pi / 180.0

	sinDphi := math.Sin(dphi / 2)
	sinDlam := math.Sin(dlam / 2)
	h := sinDphi*sinDphi + math.Cos(phi1)*math.Cos(phi2)*sinDlam*sinDlam
	arc := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return DistAz{
		DistanceDeg: arc * 180.0 / math.Pi,
		DistanceKm:  arc * MeanEarthRadiusKm,
		Azimuth:     bearing(phi1, phi2, dlam),
		BackAzimuth: bearing(phi2, phi1, -dlam),
	}
}

// bearing returns the initial bearing from point 1 to point 2, normalized
// to [0, 360) degrees.
func bearing(phi1, phi2, dlam float64) float64 {
	y := math.Sin(dlam) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dlam)
	deg := math.Atan2(y, x) * 180.0 / math.Pi

	return math.Mod(deg+360.0, 360.0)
}
