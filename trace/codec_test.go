package trace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/seislab/sacio/endian"
	"github.com/seislab/sacio/errs"
	"github.com/seislab/sacio/format"
	"github.com/seislab/sacio/schema"
)

func sampleRecord(t *testing.T) *Record {
	t.Helper()

	r := FromAmp([]float32{0.5, -1.25, 3.0, 0.0, 2.5}, 10.0, 0.025)
	require.NoError(t, r.SetString("knetwk", "CI"))
	require.NoError(t, r.SetString("kstnm", "PASC"))
	require.NoError(t, r.SetString("kcmpnm", "BHZ"))
	require.NoError(t, r.SetString("kevnm", "NORTHRIDGE"))
	r.SetReferenceTime(time.Date(1994, time.January, 17, 12, 30, 55, 0, time.UTC))
	require.NoError(t, r.SetStationLocation(34.0, -118.0, 250.0))
	require.NoError(t, r.SetEventLocation(34.213, -118.537, 18.2))

	return r
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	r := sampleRecord(t)

	data, err := r.Encode()
	require.NoError(t, err)
	require.Len(t, data, schema.HeaderSize+5*4)

	got, err := Decode(data)
	require.NoError(t, err)
	require.Empty(t, got.Warnings())

	require.Equal(t, r.Data(), got.Data())
	require.Equal(t, r.Npts(), got.Npts())

	for _, name := range []string{"delta", "b", "e", "depmin", "depmax", "depmen", "stla", "stlo", "evla", "evlo", "gcarc", "dist", "az", "baz"} {
		want, wantOK, err := r.Numeric(name)
		require.NoError(t, err)
		gotV, gotOK, err := got.Numeric(name)
		require.NoError(t, err)
		require.Equal(t, wantOK, gotOK, name)
		require.Equal(t, want, gotV, name)
	}

	for _, name := range []string{"knetwk", "kstnm", "kcmpnm", "kevnm", "khole"} {
		want, err := r.String(name)
		require.NoError(t, err)
		gotV, err := got.String(name)
		require.NoError(t, err)
		require.Equal(t, want, gotV, name)
	}

	// A second encode must reproduce the stream byte for byte.
	again, err := got.Encode()
	require.NoError(t, err)
	require.Equal(t, data, again)
}

func TestDecodeSniffsByteOrder(t *testing.T) {
	r := sampleRecord(t)

	for _, engine := range []endian.EndianEngine{
		endian.GetBigEndianEngine(),
		endian.GetLittleEndianEngine(),
	} {
		r.SetByteOrder(engine)
		data, err := r.Encode()
		require.NoError(t, err)

		got, err := Decode(data)
		require.NoError(t, err)
		require.Equal(t, engine, got.ByteOrder())
		require.Equal(t, 6, got.Version())
		require.Equal(t, r.Data(), got.Data())
	}
}

func TestSniffByteOrderImplausible(t *testing.T) {
	_, err := SniffByteOrder(make([]byte, schema.HeaderSize))
	require.ErrorIs(t, err, errs.ErrHeaderLayout)

	_, err = SniffByteOrder(make([]byte, 8))
	require.ErrorIs(t, err, errs.ErrTruncatedInput)
}

func TestDecodeTruncated(t *testing.T) {
	r := sampleRecord(t)
	data, err := r.Encode()
	require.NoError(t, err)

	t.Run("header", func(t *testing.T) {
		_, err := Decode(data[:schema.HeaderSize-4])
		require.ErrorIs(t, err, errs.ErrTruncatedInput)
	})

	t.Run("data section", func(t *testing.T) {
		_, err := Decode(data[:schema.HeaderSize+8])
		require.ErrorIs(t, err, errs.ErrTruncatedInput)
	})
}

func TestDecodeRejectsBadStructure(t *testing.T) {
	engine := endian.GetBigEndianEngine()

	t.Run("negative npts", func(t *testing.T) {
		data, err := sampleRecord(t).Encode()
		require.NoError(t, err)
		off := schema.NptsWord * schema.WordSize
		engine.PutUint32(data[off:off+4], 0xFFFFFFFF)

		_, err = Decode(data)
		require.ErrorIs(t, err, errs.ErrHeaderLayout)
	})

	t.Run("unknown file type", func(t *testing.T) {
		data, err := sampleRecord(t).Encode()
		require.NoError(t, err)
		f, err := schema.FieldByName("iftype")
		require.NoError(t, err)
		off := f.Word * schema.WordSize
		engine.PutUint32(data[off:off+4], 99)

		_, err = Decode(data)
		require.ErrorIs(t, err, errs.ErrHeaderLayout)
	})
}

func TestDecodeNonPrintableString(t *testing.T) {
	data, err := sampleRecord(t).Encode()
	require.NoError(t, err)

	f, err := schema.FieldByName("kstnm")
	require.NoError(t, err)
	data[f.Word*schema.WordSize+2] = 0x01

	t.Run("advisory by default", func(t *testing.T) {
		got, err := Decode(data)
		require.NoError(t, err)
		require.Len(t, got.Warnings(), 1)
		require.ErrorIs(t, got.Warnings()[0], errs.ErrHeaderLayout)
	})

	t.Run("fatal in strict mode", func(t *testing.T) {
		_, err := Decode(data, WithStrictMode())
		require.ErrorIs(t, err, errs.ErrHeaderLayout)
	})
}

func TestReservedWordsPreserved(t *testing.T) {
	data, err := sampleRecord(t).Encode()
	require.NoError(t, err)

	// Plant distinctive bit patterns in one reserved float word and one
	// reserved int word.
	engine := endian.GetBigEndianEngine()
	engine.PutUint32(data[63*schema.WordSize:63*schema.WordSize+4], 0xDEADBEEF)
	engine.PutUint32(data[84*schema.WordSize:84*schema.WordSize+4], 0x01020304)

	got, err := Decode(data)
	require.NoError(t, err)

	require.NoError(t, got.SetNumeric("delta", 0.5))
	out, err := got.Encode()
	require.NoError(t, err)

	require.Equal(t, uint32(0xDEADBEEF), engine.Uint32(out[63*schema.WordSize:63*schema.WordSize+4]))
	require.Equal(t, uint32(0x01020304), engine.Uint32(out[84*schema.WordSize:84*schema.WordSize+4]))
}

func TestEncodeTwoComponent(t *testing.T) {
	t.Run("uneven series round trip", func(t *testing.T) {
		r := FromAmp([]float32{1, 2, 3}, 0.0, 1.0)
		r.ints["leven"] = 0
		r.SetComp2([]float32{0.0, 0.7, 2.9})
		r.RefreshExtrema()
		require.Equal(t, 2, r.NComps())

		data, err := r.Encode()
		require.NoError(t, err)
		require.Len(t, data, schema.HeaderSize+3*4*2)

		got, err := Decode(data)
		require.NoError(t, err)
		require.False(t, got.EvenlySpaced())
		require.Equal(t, r.Data(), got.Data())
		require.Equal(t, r.Comp2(), got.Comp2())

		b, ok := got.Begin()
		require.True(t, ok)
		require.InDelta(t, 0.0, b, 1e-9)
		e, ok := got.End()
		require.True(t, ok)
		require.InDelta(t, 2.9, e, 1e-6)
	})

	t.Run("spectral pair round trip", func(t *testing.T) {
		r := FromAmp([]float32{1, 2, 3, 4}, 0.0, 0.25)
		r.SetFileType(format.FileTypeAmpPhase)
		r.SetComp2([]float32{0.1, 0.2, 0.3, 0.4})
		require.Equal(t, 2, r.NComps())

		data, err := r.Encode()
		require.NoError(t, err)

		got, err := Decode(data)
		require.NoError(t, err)
		require.True(t, got.IsSpectral())
		require.True(t, got.IsAmpPhase())
		require.Equal(t, r.Comp2(), got.Comp2())
	})

	t.Run("component length mismatch", func(t *testing.T) {
		r := FromAmp([]float32{1, 2, 3}, 0.0, 1.0)
		r.SetFileType(format.FileTypeRealImag)
		r.SetComp2([]float32{1, 2})

		_, err := r.Encode()
		require.ErrorIs(t, err, errs.ErrPointCountMismatch)
	})
}

func TestEncodeSyncsNpts(t *testing.T) {
	r := FromAmp([]float32{1, 2, 3}, 0.0, 1.0)
	r.ints["npts"] = 999

	data, err := r.Encode()
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, 3, got.Npts())

	npts, ok, err := got.Numeric("npts")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 3.0, npts)
}

func TestEncodeEmptyRecord(t *testing.T) {
	r := New()

	data, err := r.Encode()
	require.NoError(t, err)
	require.Len(t, data, schema.HeaderSize)

	got, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, 0, got.Npts())
	require.Equal(t, 6, got.Version())
	require.True(t, got.IsTime())

	_, ok := got.Delta()
	require.False(t, ok)
}
