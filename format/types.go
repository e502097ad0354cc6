// Package format defines the enumerated values shared across the sacio module:
// the SAC header enumerations (file type, amplitude type, zero-time reference,
// event type) and the archive compression enum.
//
// SAC stores enumerations as int32 header words; the reserved value -12345
// means "not set" for every enumerated field.
package format

type (
	// FileType is the SAC iftype header value describing the file contents.
	FileType int32
	// DataType is the SAC idep header value describing the amplitude units.
	DataType int32
	// ZeroTime is the SAC iztype header value naming the timing mark the
	// reference time is aligned to.
	ZeroTime int32
	// EventType is the SAC ievtyp header value.
	EventType int32

	// CompressionType selects the payload compression of a trace archive.
	CompressionType uint8
)

// Header sentinel values. A field holding its region's sentinel is unset.
const (
	FloatUndef  float32 = -12345.0
	IntUndef    int32   = -12345
	StringUndef         = "-12345  "
)

const (
	FileTypeTime     FileType = 1  // evenly or unevenly spaced time series
	FileTypeRealImag FileType = 2  // spectral file, real/imaginary pair
	FileTypeAmpPhase FileType = 3  // spectral file, amplitude/phase pair
	FileTypeXY       FileType = 4  // general x versus y data
	FileTypeXYZ      FileType = 51 // general 3-D data
)

const (
	DataTypeNone         DataType = DataType(IntUndef)
	DataTypeDisplacement DataType = 6
	DataTypeVelocity     DataType = 7
	DataTypeAcceleration DataType = 8
	DataTypeVolts        DataType = 50
)

const (
	ZeroTimeNone ZeroTime = ZeroTime(IntUndef)
	ZeroTimeB    ZeroTime = 9  // begin time
	ZeroTimeDay  ZeroTime = 10 // midnight of reference day
	ZeroTimeO    ZeroTime = 11 // event origin time
	ZeroTimeA    ZeroTime = 12 // first arrival time
	ZeroTimeT0   ZeroTime = 13
	ZeroTimeT1   ZeroTime = 14
	ZeroTimeT2   ZeroTime = 15
	ZeroTimeT3   ZeroTime = 16
	ZeroTimeT4   ZeroTime = 17
	ZeroTimeT5   ZeroTime = 18
	ZeroTimeT6   ZeroTime = 19
	ZeroTimeT7   ZeroTime = 20
	ZeroTimeT8   ZeroTime = 21
	ZeroTimeT9   ZeroTime = 22
)

const (
	EventTypeNone              EventType = EventType(IntUndef)
	EventTypeNuclearShot       EventType = 37
	EventTypeNuclearPreShot    EventType = 38
	EventTypeNuclearPostShot   EventType = 39
	EventTypeEarthquake        EventType = 40
	EventTypeForeshock         EventType = 41
	EventTypeAftershock        EventType = 42
	EventTypeChemicalExplosion EventType = 43
	EventTypeOther             EventType = 44
	EventTypeQuarryBlast       EventType = 72
	EventTypeQuarryBlast1      EventType = 73
	EventTypeQuarryBlast2      EventType = 74
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone stores the payload uncompressed.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 block compression.
)

// Spectral reports whether the file type stores a two-component spectral
// pair (real/imaginary or amplitude/phase).
func (t FileType) Spectral() bool {
	return t == FileTypeRealImag || t == FileTypeAmpPhase
}

// Valid reports whether t is one of the file types defined by the format.
func (t FileType) Valid() bool {
	switch t {
	case FileTypeTime, FileTypeRealImag, FileTypeAmpPhase, FileTypeXY, FileTypeXYZ:
		return true
	default:
		return false
	}
}

func (t FileType) String() string {
	switch t {
	case FileTypeTime:
		return "Time"
	case FileTypeRealImag:
		return "RealImag"
	case FileTypeAmpPhase:
		return "AmpPhase"
	case FileTypeXY:
		return "XY"
	case FileTypeXYZ:
		return "XYZ"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
