// Package archive bundles multiple SAC records into a single indexed,
// optionally compressed container.
//
// An archive holds a 32-byte header, a fixed-size index keyed by xxHash64
// trace IDs, and a payload of concatenated encoded records. The index can
// be scanned without touching the payload, so a single trace can be pulled
// out of a large event archive cheaply.
package archive

import (
	"fmt"
	"time"

	"github.com/seislab/sacio/compress"
	"github.com/seislab/sacio/errs"
	"github.com/seislab/sacio/format"
	"github.com/seislab/sacio/internal/hash"
	"github.com/seislab/sacio/internal/options"
	"github.com/seislab/sacio/internal/pool"
	"github.com/seislab/sacio/section"
	"github.com/seislab/sacio/trace"
)

// Encoder accumulates records and serializes them into one archive.
//
// Encoder is not safe for concurrent use. Add every record, then call
// Finish exactly once.
type Encoder struct {
	header   *section.ArchiveHeader
	codec    compress.Codec
	entries  []section.IndexEntry
	seen     map[uint64]struct{}
	payload  *pool.ByteBuffer
	finished bool
}

// EncoderOption is a functional option for configuring an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithCompression sets the payload compression algorithm. The default is
// Zstd.
func WithCompression(typ format.CompressionType) EncoderOption {
	return options.New(func(e *Encoder) error {
		codec, err := compress.CreateCodec(typ, "archive payload")
		if err != nil {
			return err
		}

		e.codec = codec
		e.header.Flag.SetCompression(typ)

		return nil
	})
}

// WithLittleEndian makes the encoder write the index and all record
// payloads in little-endian byte order.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.header.Flag.WithLittleEndian()
	})
}

// WithBigEndian makes the encoder write the index and all record payloads
// in big-endian byte order. This is the default.
func WithBigEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.header.Flag.WithBigEndian()
	})
}

// NewEncoder creates an archive encoder stamped with the given creation
// time.
//
// Parameters:
//   - createdAt: Creation timestamp recorded in the archive header
//   - opts: Optional configuration (compression, byte order)
//
// Returns:
//   - *Encoder: Configured encoder
//   - error: Option validation errors
func NewEncoder(createdAt time.Time, opts ...EncoderOption) (*Encoder, error) {
	enc := &Encoder{
		header:  section.NewArchiveHeader(createdAt),
		seen:    make(map[uint64]struct{}),
		payload: pool.GetPayloadBuffer(),
	}

	codec, err := compress.GetCodec(enc.header.Flag.Compression())
	if err != nil {
		return nil, err
	}
	enc.codec = codec

	if err := options.Apply(enc, opts...); err != nil {
		pool.PutPayloadBuffer(enc.payload)
		return nil, err
	}

	return enc, nil
}

// Add encodes rec and appends it to the archive under the given key.
//
// The key is hashed with xxHash64 to form the trace ID, so two distinct
// keys must not collide within one archive. Records are re-encoded in the
// archive's byte order regardless of their own setting.
//
// Returns:
//   - error: errs.ErrDuplicateTrace if the key was already added,
//     errs.ErrEncoderFinished after Finish, or record encoding errors
func (e *Encoder) Add(key string, rec *trace.Record) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}

	id := hash.ID(key)
	if _, dup := e.seen[id]; dup {
		return fmt.Errorf("%w: %q", errs.ErrDuplicateTrace, key)
	}

	encoded, err := e.encodeRecord(rec)
	if err != nil {
		return fmt.Errorf("encode trace %q: %w", key, err)
	}

	offset := e.payload.Len()
	e.payload.MustWrite(encoded)

	e.seen[id] = struct{}{}
	e.entries = append(e.entries, section.NewIndexEntry(
		id, uint32(offset), uint32(len(encoded)), uint32(rec.Npts()),
	))

	return nil
}

// Count returns the number of records added so far.
func (e *Encoder) Count() int {
	return len(e.entries)
}

// Finish compresses the payload and assembles the final archive bytes.
// The encoder cannot be reused afterwards.
//
// Returns:
//   - []byte: Complete archive (header, index, compressed payload)
//   - error: errs.ErrEncoderFinished on reuse, or compression errors
func (e *Encoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}
	e.finished = true
	defer func() {
		pool.PutPayloadBuffer(e.payload)
		e.payload = nil
	}()

	compressed, err := e.codec.Compress(e.payload.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compress archive payload: %w", err)
	}

	e.header.TraceCount = uint32(len(e.entries))
	e.header.PayloadOffset = uint32(section.HeaderSize + len(e.entries)*section.IndexEntrySize)

	engine := e.header.Flag.GetEndianEngine()

	out := make([]byte, 0, int(e.header.PayloadOffset)+len(compressed))
	out = append(out, e.header.Bytes()...)
	for _, entry := range e.entries {
		out = entry.AppendBytes(out, engine)
	}
	out = append(out, compressed...)

	return out, nil
}

// encodeRecord serializes rec in the archive's byte order, restoring the
// record's own byte order afterwards.
func (e *Encoder) encodeRecord(rec *trace.Record) ([]byte, error) {
	archiveEngine := e.header.Flag.GetEndianEngine()
	recEngine := rec.ByteOrder()

	if recEngine == archiveEngine {
		return rec.Encode()
	}

	rec.SetByteOrder(archiveEngine)
	defer rec.SetByteOrder(recEngine)

	return rec.Encode()
}
