package trace

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seislab/sacio/errs"
	"github.com/seislab/sacio/format"
)

func TestNewDefaults(t *testing.T) {
	r := New()

	require.Equal(t, 6, r.Version())
	require.Equal(t, format.FileTypeTime, r.FileType())
	require.Equal(t, 0, r.Npts())
	require.True(t, r.EvenlySpaced())
	require.True(t, r.Mutability())
	require.True(t, r.CalcDistAz())

	_, ok := r.Delta()
	require.False(t, ok)

	set, err := r.IsSet("stla")
	require.NoError(t, err)
	require.False(t, set)
}

func TestNumericAccessors(t *testing.T) {
	r := New()

	t.Run("set get clear", func(t *testing.T) {
		require.NoError(t, r.SetNumeric("user0", 42.5))

		v, ok, err := r.Numeric("user0")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, 42.5, v)

		require.NoError(t, r.ClearNumeric("user0"))
		_, ok, err = r.Numeric("user0")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("int field narrows", func(t *testing.T) {
		require.NoError(t, r.SetNumeric("nevid", 1234.0))
		v, ok, err := r.Numeric("nevid")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, 1234.0, v)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, _, err := r.Numeric("bogus")
		require.ErrorIs(t, err, errs.ErrUnknownField)
		require.ErrorIs(t, r.SetNumeric("bogus", 1), errs.ErrUnknownField)
	})

	t.Run("string field rejected", func(t *testing.T) {
		_, _, err := r.Numeric("kstnm")
		require.ErrorIs(t, err, errs.ErrTypeMismatch)
		require.ErrorIs(t, r.SetNumeric("kstnm", 1), errs.ErrTypeMismatch)
		require.ErrorIs(t, r.ClearNumeric("kstnm"), errs.ErrTypeMismatch)
	})
}

func TestStringAccessors(t *testing.T) {
	r := New()

	t.Run("set get", func(t *testing.T) {
		require.NoError(t, r.SetString("kstnm", "PASC"))
		v, err := r.String("kstnm")
		require.NoError(t, err)
		require.Equal(t, "PASC", v)
	})

	t.Run("exact width fits", func(t *testing.T) {
		require.NoError(t, r.SetString("kstnm", "ABCDEFGH"))
		v, err := r.String("kstnm")
		require.NoError(t, err)
		require.Equal(t, "ABCDEFGH", v)
	})

	t.Run("overlong rejected not truncated", func(t *testing.T) {
		err := r.SetString("kstnm", "ABCDEFGHI")
		require.ErrorIs(t, err, errs.ErrStringTooLong)

		// The previous value must be untouched.
		v, err := r.String("kstnm")
		require.NoError(t, err)
		require.Equal(t, "ABCDEFGH", v)
	})

	t.Run("wide event name field", func(t *testing.T) {
		require.NoError(t, r.SetString("kevnm", "LOMA PRIETA 1989"))
		require.ErrorIs(t, r.SetString("kevnm", "LOMA PRIETA 1989 M6.9"), errs.ErrStringTooLong)
	})

	t.Run("empty unsets", func(t *testing.T) {
		require.NoError(t, r.SetString("kstnm", ""))
		set, err := r.IsSet("kstnm")
		require.NoError(t, err)
		require.False(t, set)
	})

	t.Run("numeric field rejected", func(t *testing.T) {
		_, err := r.String("delta")
		require.ErrorIs(t, err, errs.ErrTypeMismatch)
		require.ErrorIs(t, r.SetString("delta", "x"), errs.ErrTypeMismatch)
	})
}

func TestCoordinateValidation(t *testing.T) {
	r := New()

	require.ErrorIs(t, r.SetStationLocation(91.0, 0.0, 0.0), errs.ErrBadLatitude)
	require.ErrorIs(t, r.SetStationLocation(0.0, 361.0, 0.0), errs.ErrBadLongitude)
	require.ErrorIs(t, r.SetEventLocation(-90.5, 0.0, 0.0), errs.ErrBadLatitude)
	require.ErrorIs(t, r.SetEventLocation(0.0, -360.5, 0.0), errs.ErrBadLongitude)

	require.NoError(t, r.SetStationLocation(34.0, -118.0, 100.0))
	lat, lon, ok := r.StationLocation()
	require.True(t, ok)
	require.InDelta(t, 34.0, lat, 1e-6)
	require.InDelta(t, -118.0, lon, 1e-6)

	_, _, ok = r.EventLocation()
	require.False(t, ok)
}

func TestChannelCode(t *testing.T) {
	r := New()
	require.Equal(t, "...", r.ChannelCode())

	require.NoError(t, r.SetString("knetwk", "CI"))
	require.NoError(t, r.SetString("kstnm", "PASC"))
	require.NoError(t, r.SetString("kcmpnm", "BHZ"))
	require.Equal(t, "CI.PASC..BHZ", r.ChannelCode())

	require.NoError(t, r.SetString("khole", "00"))
	require.Equal(t, "CI.PASC.00.BHZ", r.ChannelCode())
}

func TestNComps(t *testing.T) {
	r := New()
	require.Equal(t, 1, r.NComps())

	r.ints["leven"] = 0
	require.Equal(t, 2, r.NComps())

	r.ints["leven"] = 1
	r.SetFileType(format.FileTypeRealImag)
	require.Equal(t, 2, r.NComps())

	r.SetFileType(format.FileTypeAmpPhase)
	require.Equal(t, 2, r.NComps())

	r.SetFileType(format.FileTypeXYZ)
	require.Equal(t, 1, r.NComps())
}

func TestSetDataSyncsNpts(t *testing.T) {
	r := New()
	r.SetData([]float32{1, 2, 3, 4})

	require.Equal(t, 4, r.Npts())
	npts, ok, err := r.Numeric("npts")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 4.0, npts)
}
