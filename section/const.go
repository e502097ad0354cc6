package section

const (
	// Bit masks for the Options field
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0)
	ReservedBitsMask = 0x000E // Mask for reserved bits (bits 1-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// Magic number (bits 4-15)
	MagicArchiveV1Opt = 0x5AC0 // version 1 magic number for the trace archive format

	// Offsets and section sizes in the archive file
	HeaderSize        = 32         // fixed archive header size in bytes
	IndexEntrySize    = 24         // fixed index entry size in bytes
	IndexOffsetOffset = HeaderSize // byte offset where the index section starts
)
