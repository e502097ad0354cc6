package archive

import (
	"fmt"
	"time"

	"github.com/seislab/sacio/compress"
	"github.com/seislab/sacio/errs"
	"github.com/seislab/sacio/format"
	"github.com/seislab/sacio/internal/hash"
	"github.com/seislab/sacio/section"
	"github.com/seislab/sacio/trace"
)

// Decoder reads traces back out of a serialized archive.
//
// The payload is decompressed once up front; individual traces are decoded
// lazily on Get or At. A Decoder is safe for concurrent reads.
type Decoder struct {
	header  section.ArchiveHeader
	entries []section.IndexEntry
	byID    map[uint64]int
	payload []byte
}

// NewDecoder parses and validates the archive structure and decompresses
// its payload.
//
// Parameters:
//   - data: Complete archive bytes
//
// Returns:
//   - *Decoder: Ready decoder
//   - error: Header, index, or decompression errors
func NewDecoder(data []byte) (*Decoder, error) {
	header, err := section.ParseArchiveHeader(data)
	if err != nil {
		return nil, err
	}
	if err := header.Validate(); err != nil {
		return nil, err
	}
	if uint64(len(data)) < uint64(header.PayloadOffset) {
		return nil, errs.ErrTruncatedInput
	}

	engine := header.Flag.GetEndianEngine()

	entries := make([]section.IndexEntry, header.TraceCount)
	byID := make(map[uint64]int, header.TraceCount)
	for i := range entries {
		start := int(header.IndexOffset) + i*section.IndexEntrySize
		if err := entries[i].Parse(data[start:start+section.IndexEntrySize], engine); err != nil {
			return nil, err
		}
		byID[entries[i].TraceID] = i
	}

	codec, err := compress.GetCodec(header.Flag.Compression())
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(data[header.PayloadOffset:])
	if err != nil {
		return nil, fmt.Errorf("decompress archive payload: %w", err)
	}

	for _, entry := range entries {
		end := uint64(entry.Offset) + uint64(entry.Length)
		if end > uint64(len(payload)) {
			return nil, errs.ErrInvalidIndexOffsets
		}
	}

	return &Decoder{
		header:  header,
		entries: entries,
		byID:    byID,
		payload: payload,
	}, nil
}

// Count returns the number of traces in the archive.
func (d *Decoder) Count() int {
	return len(d.entries)
}

// CreatedAt returns the archive creation time.
func (d *Decoder) CreatedAt() time.Time {
	return d.header.CreatedAtTime()
}

// Compression returns the payload compression type.
func (d *Decoder) Compression() format.CompressionType {
	return d.header.Flag.Compression()
}

// Entries returns the raw index entries in archive order.
func (d *Decoder) Entries() []section.IndexEntry {
	return d.entries
}

// Get decodes the trace stored under the given key.
//
// Returns:
//   - *trace.Record: Decoded record
//   - error: errs.ErrTraceNotFound if the key is absent, or decoding errors
func (d *Decoder) Get(key string) (*trace.Record, error) {
	i, ok := d.byID[hash.ID(key)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrTraceNotFound, key)
	}

	return d.At(i)
}

// Has reports whether a trace is stored under the given key.
func (d *Decoder) Has(key string) bool {
	_, ok := d.byID[hash.ID(key)]
	return ok
}

// At decodes the i-th trace in archive order.
func (d *Decoder) At(i int) (*trace.Record, error) {
	if i < 0 || i >= len(d.entries) {
		return nil, fmt.Errorf("%w: index %d", errs.ErrTraceNotFound, i)
	}

	entry := d.entries[i]
	raw := d.payload[entry.Offset : uint64(entry.Offset)+uint64(entry.Length)]

	return trace.Decode(raw, trace.WithByteOrder(d.header.Flag.GetEndianEngine()))
}
