package section

import (
	"math"
	"time"
	"unsafe"

	"github.com/seislab/sacio/errs"
)

// ArchiveHeader represents the fixed-size header section at the start of a
// trace archive.
type ArchiveHeader struct {
	// CreatedAt is the archive creation time, a unix timestamp in microseconds.
	CreatedAt int64 // byte offset 4-11
	// TraceCount is the number of traces stored in the archive.
	TraceCount uint32 // byte offset 12-15
	// IndexOffset is the byte offset to the start of the trace index section.
	IndexOffset uint32 // byte offset 16-19
	// PayloadOffset is the byte offset to the start of the payload section.
	// It records the offset after the index section.
	PayloadOffset uint32 // byte offset 20-23

	// Flag is a packed field for various flags and the magic number.
	Flag ArchiveFlag // byte offset 0-2, byte 3 reserved

	// Bytes 24-31 are reserved and must be zero.
}

// NewArchiveHeader creates a new ArchiveHeader with the given creation time.
// The trace count and payload offset are set when the encoder finishes.
func NewArchiveHeader(createdAt time.Time) *ArchiveHeader {
	return &ArchiveHeader{
		CreatedAt:   createdAt.UnixMicro(),
		Flag:        NewArchiveFlag(),
		IndexOffset: IndexOffsetOffset,
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly 32 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 32 bytes, or flag validation errors
func (h *ArchiveHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// The Options field itself is always little-endian so the endianness
	// flag can be read before an engine is chosen.
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.CompressionType = data[2]

	engine := h.Flag.GetEndianEngine()

	createdAtUint := engine.Uint64(data[4:12])
	h.CreatedAt = *(*int64)(unsafe.Pointer(&createdAtUint))

	h.TraceCount = engine.Uint32(data[12:16])
	h.IndexOffset = engine.Uint32(data[16:20])
	h.PayloadOffset = engine.Uint32(data[20:24])

	return h.Flag.Validate()
}

// Bytes serializes the ArchiveHeader into a byte slice.
func (h *ArchiveHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := h.Flag.GetEndianEngine()

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.CompressionType
	engine.PutUint64(b[4:12], *(*uint64)(unsafe.Pointer(&h.CreatedAt)))
	engine.PutUint32(b[12:16], h.TraceCount)
	engine.PutUint32(b[16:20], h.IndexOffset)
	engine.PutUint32(b[20:24], h.PayloadOffset)

	return b
}

// CreatedAtTime returns the creation time as a time.Time object.
func (h *ArchiveHeader) CreatedAtTime() time.Time {
	return time.UnixMicro(h.CreatedAt)
}

// Validate checks the structural consistency of the header offsets against
// the declared trace count.
func (h *ArchiveHeader) Validate() error {
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	if h.IndexOffset != IndexOffsetOffset {
		return errs.ErrInvalidIndexOffsets
	}

	indexEnd := uint64(h.IndexOffset) + uint64(h.TraceCount)*IndexEntrySize
	if indexEnd > math.MaxUint32 {
		return errs.ErrInvalidTraceCount
	}
	if uint64(h.PayloadOffset) != indexEnd {
		return errs.ErrInvalidIndexOffsets
	}

	return nil
}

// ParseArchiveHeader parses an ArchiveHeader from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least 32 bytes)
//
// Returns:
//   - ArchiveHeader: Parsed header struct
//   - error: ErrInvalidHeaderSize or flag validation errors
func ParseArchiveHeader(data []byte) (ArchiveHeader, error) {
	if len(data) < HeaderSize {
		return ArchiveHeader{}, errs.ErrInvalidHeaderSize
	}

	h := ArchiveHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return ArchiveHeader{}, err
	}

	return h, nil
}
