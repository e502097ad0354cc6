package section

import (
	"github.com/seislab/sacio/endian"
	"github.com/seislab/sacio/errs"
)

// IndexEntry locates one encoded trace within the archive payload section.
//
// Entries are fixed at 24 bytes so the index can be scanned without
// decompressing the payload:
//
//	byte offset 0-7:   TraceID (xxHash64 of the trace key)
//	byte offset 8-11:  Offset into the decompressed payload
//	byte offset 12-15: Length of the encoded trace in bytes
//	byte offset 16-19: Npts, the sample count of the first data component
//	byte offset 20-23: reserved, must be zero
type IndexEntry struct {
	// TraceID is the xxHash64 of the trace key, typically its channel code.
	TraceID uint64
	// Offset is the byte offset of the encoded trace within the
	// decompressed payload section.
	Offset uint32
	// Length is the byte length of the encoded trace.
	Length uint32
	// Npts is the sample count of the trace's first data component,
	// duplicated here so tools can size reads without decoding headers.
	Npts uint32
}

// NewIndexEntry creates an index entry for an encoded trace.
func NewIndexEntry(traceID uint64, offset, length, npts uint32) IndexEntry {
	return IndexEntry{
		TraceID: traceID,
		Offset:  offset,
		Length:  length,
		Npts:    npts,
	}
}

// Parse parses the index entry from a byte slice using the given engine.
//
// Returns:
//   - error: ErrInvalidIndexEntrySize if data is not 24 bytes
func (e *IndexEntry) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) != IndexEntrySize {
		return errs.ErrInvalidIndexEntrySize
	}

	e.TraceID = engine.Uint64(data[0:8])
	e.Offset = engine.Uint32(data[8:12])
	e.Length = engine.Uint32(data[12:16])
	e.Npts = engine.Uint32(data[16:20])

	return nil
}

// AppendBytes appends the serialized entry to buf using the given engine.
func (e IndexEntry) AppendBytes(buf []byte, engine endian.EndianEngine) []byte {
	buf = engine.AppendUint64(buf, e.TraceID)
	buf = engine.AppendUint32(buf, e.Offset)
	buf = engine.AppendUint32(buf, e.Length)
	buf = engine.AppendUint32(buf, e.Npts)
	buf = append(buf, 0, 0, 0, 0)

	return buf
}
