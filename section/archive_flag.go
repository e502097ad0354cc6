package section

import (
	"github.com/seislab/sacio/endian"
	"github.com/seislab/sacio/errs"
	"github.com/seislab/sacio/format"
)

// ArchiveFlag represents the packed flag field at the start of the archive
// header.
type ArchiveFlag struct {
	// Options is a packed field for various options.
	// Bit 0 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 1-3 are reserved for future use, must be set to 0.
	// Bits 4-15 are the magic number identifying the archive format:
	//   - 0x5AC0 (0b0101_1010_1100_0000): Trace archive format v1
	Options uint16

	// CompressionType is an enum indicating the compression applied to the
	// payload section.
	CompressionType uint8
}

var validCompressions = map[uint8]struct{}{
	uint8(format.CompressionNone): {},
	uint8(format.CompressionZstd): {},
	uint8(format.CompressionS2):   {},
	uint8(format.CompressionLZ4):  {},
}

// NewArchiveFlag creates a new ArchiveFlag with default settings: the v1
// magic number, big-endian payload, Zstd compression.
func NewArchiveFlag() ArchiveFlag {
	flag := ArchiveFlag{
		Options:         MagicArchiveV1Opt,
		CompressionType: uint8(format.CompressionZstd),
	}
	flag.WithBigEndian()

	return flag
}

// IsLittleEndian returns whether the archive payload is little-endian.
func (f ArchiveFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the archive payload is big-endian.
func (f ArchiveFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *ArchiveFlag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *ArchiveFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetEndianEngine returns the byte-order engine matching the endianness
// flag.
func (f ArchiveFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// GetMagicNumber returns the magic number from the Options field.
func (f ArchiveFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber checks if the magic number is valid.
func (f ArchiveFlag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicArchiveV1Opt
}

// Compression returns the payload compression type.
func (f ArchiveFlag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression type.
func (f *ArchiveFlag) SetCompression(compression format.CompressionType) {
	f.CompressionType = uint8(compression)
}

// Validate checks if the flag field contains valid values.
func (f ArchiveFlag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrInvalidMagicNumber
	}

	if (f.Options & ReservedBitsMask) != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if _, ok := validCompressions[f.CompressionType]; !ok {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}
