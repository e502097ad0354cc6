package compress

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seislab/sacio/format"
)

// samplePayload builds a payload resembling an encoded seismogram: a sparse
// header region followed by a smooth float32 waveform.
func samplePayload(n int) []byte {
	buf := make([]byte, 0, 632+n*4)
	header := make([]byte, 632)
	for i := 0; i < 632; i += 4 {
		binary.BigEndian.PutUint32(header[i:], math.Float32bits(-12345.0))
	}
	buf = append(buf, header...)
	for i := 0; i < n; i++ {
		v := float32(math.Sin(2.0 * math.Pi * float64(i%50) / 50.0))
		buf = binary.BigEndian.AppendUint32(buf, math.Float32bits(v))
	}

	return buf
}

func TestCreateCodec(t *testing.T) {
	for _, typ := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := CreateCodec(typ, "payload")
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := CreateCodec(format.CompressionType(0xFF), "payload")
	require.Error(t, err)
}

func TestGetCodec(t *testing.T) {
	codec, err := GetCodec(format.CompressionZstd)
	require.NoError(t, err)
	require.NotNil(t, codec)

	_, err = GetCodec(format.CompressionType(0xFF))
	require.Error(t, err)
}

func TestCodecRoundTrip(t *testing.T) {
	payload := samplePayload(4096)

	for _, typ := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := GetCodec(typ)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, restored)
		})
	}
}

func TestCodecCompresses(t *testing.T) {
	// The sentinel-filled header region alone should shrink substantially.
	payload := samplePayload(4096)

	for _, typ := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(typ)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(payload), "codec %s", typ)
	}
}

func TestCodecEmptyInput(t *testing.T) {
	for _, typ := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(typ)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)

		restored, err := codec.Decompress(compressed)
		require.NoError(t, err)
		require.Empty(t, restored)
	}
}
