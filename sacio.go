// Package sacio reads and writes SAC (Seismic Analysis Code) binary files:
// a fixed 632-byte header of 158 four-byte words followed by one or two
// float32 data components.
//
// # Core Features
//
//   - Full header schema: every named float, integer, logical, enumerated
//     and string field with its word offset and byte width
//   - Byte-order fidelity: big- and little-endian streams, sniffed from the
//     header version word when the order is unknown
//   - Round-trip safety: reserved header words are carried through
//     decode-mutate-encode cycles bit for bit
//   - Derived values: amplitude extrema with staleness tracking, spherical
//     great-circle distance and azimuth, reference-time assembly
//   - Trace archives: many records in one indexed container with optional
//     Zstd, S2 or LZ4 payload compression and xxHash64 key lookups
//
// # Basic Usage
//
// Reading, inspecting and rewriting a file:
//
//	import "github.com/seislab/sacio"
//
//	rec, err := sacio.Load("event.sac")
//	if err != nil {
//	    return err
//	}
//
//	delta, _ := rec.Delta()
//	station, _ := rec.String("kstnm")
//	fmt.Printf("%s sampled at %gs, %d points\n", station, delta, rec.Npts())
//
//	rec.SetData(filtered)
//	rec.RefreshExtrema()
//	err = sacio.Save("event.sac", rec)
//
// Building a record from scratch:
//
//	rec := trace.FromAmp(samples, 0.0, 0.01)
//	rec.SetReferenceTime(originTime)
//	rec.SetString("kstnm", "PASC")
//	err := sacio.Save("synth.sac", rec)
//
// Bundling records into a compressed archive:
//
//	enc, _ := archive.NewEncoder(time.Now(), archive.WithCompression(format.CompressionZstd))
//	enc.Add("CI.PASC..BHZ", rec)
//	data, _ := enc.Finish()
//
// # Package Structure
//
// This package provides file-level convenience wrappers around the trace
// package. For in-memory decoding and encoding use the trace package
// directly; for multi-record containers use the archive package.
package sacio

import (
	"fmt"
	"os"

	"github.com/seislab/sacio/internal/hash"
	"github.com/seislab/sacio/trace"
)

// Load reads and decodes the SAC file at path.
//
// Parameters:
//   - path: File to read
//   - opts: Optional decode configuration (trace.WithByteOrder,
//     trace.WithStrictMode)
//
// Returns:
//   - *trace.Record: The decoded record
//   - error: File system or decode errors
func Load(path string, opts ...trace.DecodeOption) (*trace.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	rec, err := trace.Decode(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return rec, nil
}

// Save encodes rec and writes it to path, replacing any existing file.
func Save(path string, rec *trace.Record) error {
	data, err := rec.Encode()
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// TraceID computes the 64-bit archive lookup ID for a trace key, typically
// its net.sta.loc.chan channel code.
func TraceID(key string) uint64 {
	return hash.ID(key)
}
