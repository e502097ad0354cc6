package trace

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seislab/sacio/errs"
)

func TestGreatCircleQuarterArc(t *testing.T) {
	r := New()
	require.NoError(t, r.SetEventLocation(0.0, 0.0, 10.0))
	require.NoError(t, r.SetStationLocation(0.0, 90.0, 0.0))

	da, err := r.GreatCircle()
	require.NoError(t, err)
	require.InDelta(t, 90.0, da.DistanceDeg, 1e-9)
	require.InDelta(t, 90.0*math.Pi/180.0*MeanEarthRadiusKm, da.DistanceKm, 1e-6)
	require.InDelta(t, 90.0, da.Azimuth, 1e-9)
	require.InDelta(t, 270.0, da.BackAzimuth, 1e-9)
}

func TestGreatCircleRegional(t *testing.T) {
	r := New()
	require.NoError(t, r.SetEventLocation(33.0, -117.0, 12.0))
	require.NoError(t, r.SetStationLocation(34.0, -118.0, 300.0))

	da, err := r.GreatCircle()
	require.NoError(t, err)
	require.InDelta(t, 1.3020443, da.DistanceDeg, 1e-4)
	require.InDelta(t, 144.78072, da.DistanceKm, 1e-3)
	require.InDelta(t, 320.45066, da.Azimuth, 1e-3)
	require.InDelta(t, 139.89870, da.BackAzimuth, 1e-3)
}

func TestGreatCircleSwapSymmetry(t *testing.T) {
	fwd := greatCircle(33.0, -117.0, 34.0, -118.0)
	rev := greatCircle(34.0, -118.0, 33.0, -117.0)

	require.InDelta(t, fwd.DistanceDeg, rev.DistanceDeg, 1e-12)
	require.InDelta(t, fwd.Azimuth, rev.BackAzimuth, 1e-12)
	require.InDelta(t, fwd.BackAzimuth, rev.Azimuth, 1e-12)
}

func TestGreatCircleMissingCoordinates(t *testing.T) {
	r := New()
	_, err := r.GreatCircle()
	require.ErrorIs(t, err, errs.ErrMissingCoordinate)

	require.NoError(t, r.SetStationLocation(34.0, -118.0, 0.0))
	_, err = r.GreatCircle()
	require.ErrorIs(t, err, errs.ErrMissingCoordinate)
}

func TestComputeDistAzStoresHeader(t *testing.T) {
	r := New()
	require.NoError(t, r.SetEventLocation(33.0, -117.0, 12.0))

	// Only the event is known yet, so nothing is derived.
	_, ok, err := r.Numeric("gcarc")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, r.SetStationLocation(34.0, -118.0, 300.0))

	da, err := r.GreatCircle()
	require.NoError(t, err)

	for name, want := range map[string]float64{
		"gcarc": da.DistanceDeg,
		"dist":  da.DistanceKm,
		"az":    da.Azimuth,
		"baz":   da.BackAzimuth,
	} {
		v, ok, err := r.Numeric(name)
		require.NoError(t, err)
		require.True(t, ok, name)
		require.InDelta(t, want, v, 1e-3, name)
	}
}

func TestComputeDistAzRespectsFlag(t *testing.T) {
	r := New()
	r.SetCalcDistAz(false)
	require.NoError(t, r.SetEventLocation(33.0, -117.0, 12.0))
	require.NoError(t, r.SetStationLocation(34.0, -118.0, 300.0))

	_, ok, err := r.Numeric("gcarc")
	require.NoError(t, err)
	require.False(t, ok)
}
