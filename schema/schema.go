// Package schema is the single source of truth for the SAC header layout.
//
// The SAC header is 158 four-byte words (632 bytes) in a fixed order that
// never varies between files. Words 0-69 hold float32 fields, words 70-109
// hold int32 fields (some of which are logical flags or enumerations stored
// as int32), and words 110-157 hold fixed-width ASCII strings. Most strings
// pack two 4-byte words into one 8-byte field; the event name (kevnm) packs
// four words into a 16-byte field.
//
// A handful of words are reserved by the format for future use. They carry
// no name, are not addressable through the field table, and must be carried
// through byte-for-byte on decode/encode round trips.
package schema

import (
	"fmt"

	"github.com/seislab/sacio/errs"
)

// Header layout constants.
const (
	NumWords   = 158           // header length in 4-byte words
	WordSize   = 4             // every header slot is a 4-byte word
	HeaderSize = NumWords * WordSize // 632 bytes

	FloatWords  = 70  // words 0-69
	IntWords    = 40  // words 70-109
	StringStart = 110 // first string-region word

	// NptsWord and VersionWord locate the fields the codec needs before the
	// full header is decoded: npts drives the data section length, nvhdr
	// drives byte-order sniffing.
	NptsWord    = 79
	VersionWord = 76
)

// Kind is the semantic interpretation of a header slot.
type Kind uint8

const (
	KindFloat32 Kind = iota + 1
	KindInt32
	KindLogical // 0/1 flag stored as int32
	KindEnum    // enumerated value stored as int32
	KindString  // fixed-width ASCII, space padded
)

func (k Kind) String() string {
	switch k {
	case KindFloat32:
		return "float32"
	case KindInt32:
		return "int32"
	case KindLogical:
		return "logical"
	case KindEnum:
		return "enum"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Field describes one named slot in the header.
type Field struct {
	Name  string
	Word  int  // word offset into the header
	Kind  Kind
	Width int // byte width: 4 for numerics, 8 or 16 for strings
}

// Numeric reports whether the field is addressed through the numeric
// accessors (float, int, logical and enum slots all qualify).
func (f Field) Numeric() bool {
	return f.Kind != KindString
}

// Words returns the number of header words the field spans.
func (f Field) Words() int {
	return f.Width / WordSize
}

func floats(names ...string) []Field {
	fields := make([]Field, 0, len(names))
	for i, name := range names {
		fields = append(fields, Field{Name: name, Word: i, Kind: KindFloat32, Width: WordSize})
	}

	return fields
}

// fieldTable lists every named header field in file order. Gaps between
// consecutive words are the format's reserved slots.
var fieldTable = buildTable()

func buildTable() []Field {
	// Float region, words 0-62. Words 63-69 are reserved.
	table := floats(
		"delta", "depmin", "depmax", "scale", "odelta",
		"b", "e", "o", "a", "fmt",
		"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7", "t8", "t9",
		"f",
		"resp0", "resp1", "resp2", "resp3", "resp4",
		"resp5", "resp6", "resp7", "resp8", "resp9",
		"stla", "stlo", "stel", "stdp",
		"evla", "evlo", "evel", "evdp", "mag",
		"user0", "user1", "user2", "user3", "user4",
		"user5", "user6", "user7", "user8", "user9",
		"dist", "az", "baz", "gcarc",
		"sb", "sdelta", "depmen", "cmpaz", "cmpinc",
		"xminimum", "xmaximum", "yminimum", "ymaximum",
	)

	ints := []Field{
		{Name: "nzyear", Word: 70, Kind: KindInt32},
		{Name: "nzjday", Word: 71, Kind: KindInt32},
		{Name: "nzhour", Word: 72, Kind: KindInt32},
		{Name: "nzmin", Word: 73, Kind: KindInt32},
		{Name: "nzsec", Word: 74, Kind: KindInt32},
		{Name: "nzmsec", Word: 75, Kind: KindInt32},
		{Name: "nvhdr", Word: 76, Kind: KindInt32},
		{Name: "norid", Word: 77, Kind: KindInt32},
		{Name: "nevid", Word: 78, Kind: KindInt32},
		{Name: "npts", Word: 79, Kind: KindInt32},
		{Name: "nsnpts", Word: 80, Kind: KindInt32},
		{Name: "nwfid", Word: 81, Kind: KindInt32},
		{Name: "nxsize", Word: 82, Kind: KindInt32},
		{Name: "nysize", Word: 83, Kind: KindInt32},
		// word 84 reserved
		{Name: "iftype", Word: 85, Kind: KindEnum},
		{Name: "idep", Word: 86, Kind: KindEnum},
		{Name: "iztype", Word: 87, Kind: KindEnum},
		// word 88 reserved
		{Name: "iinst", Word: 89, Kind: KindEnum},
		{Name: "istreg", Word: 90, Kind: KindEnum},
		{Name: "ievreg", Word: 91, Kind: KindEnum},
		{Name: "ievtyp", Word: 92, Kind: KindEnum},
		{Name: "iqual", Word: 93, Kind: KindEnum},
		{Name: "isynth", Word: 94, Kind: KindEnum},
		{Name: "imagtyp", Word: 95, Kind: KindEnum},
		{Name: "imagsrc", Word: 96, Kind: KindEnum},
		// words 97-104 reserved
		{Name: "leven", Word: 105, Kind: KindLogical},
		{Name: "lpspol", Word: 106, Kind: KindLogical},
		{Name: "lovrok", Word: 107, Kind: KindLogical},
		{Name: "lcalda", Word: 108, Kind: KindLogical},
		// word 109 reserved
	}
	for i := range ints {
		ints[i].Width = WordSize
	}
	table = append(table, ints...)

	// String region, words 110-157. kevnm spans four words; every other
	// field spans two.
	word := StringStart
	stringNames := []string{
		"kstnm", "kevnm", "khole", "ko", "ka",
		"kt0", "kt1", "kt2", "kt3", "kt4",
		"kt5", "kt6", "kt7", "kt8", "kt9",
		"kf", "kuser0", "kuser1", "kuser2",
		"kcmpnm", "knetwk", "kdatrd", "kinst",
	}
	for _, name := range stringNames {
		width := 8
		if name == "kevnm" {
			width = 16
		}
		table = append(table, Field{Name: name, Word: word, Kind: KindString, Width: width})
		word += width / WordSize
	}

	return table
}

var (
	byName = func() map[string]Field {
		m := make(map[string]Field, len(fieldTable))
		for _, f := range fieldTable {
			m[f.Name] = f
		}

		return m
	}()

	byWord = func() map[int]Field {
		m := make(map[int]Field, NumWords)
		for _, f := range fieldTable {
			for w := f.Word; w < f.Word+f.Words(); w++ {
				m[w] = f
			}
		}

		return m
	}()
)

// Fields returns the full field table in file order.
//
// The returned slice is shared; callers must not modify it.
func Fields() []Field {
	return fieldTable
}

// FieldByName looks up a field by its header name (e.g. "delta", "npts",
// "kstnm").
//
// Returns:
//   - Field: The field descriptor
//   - error: errs.ErrUnknownField if the name is not part of the schema
func FieldByName(name string) (Field, error) {
	f, ok := byName[name]
	if !ok {
		return Field{}, fmt.Errorf("%w: %q", errs.ErrUnknownField, name)
	}

	return f, nil
}

// FieldAtOffset returns the field occupying the given word offset. Multi-word
// string fields are returned for any word within their span.
//
// Returns:
//   - Field: The field descriptor
//   - error: errs.ErrUnmappedOffset if the word is reserved header space
func FieldAtOffset(word int) (Field, error) {
	if word < 0 || word >= NumWords {
		return Field{}, fmt.Errorf("%w: word %d outside header", errs.ErrUnmappedOffset, word)
	}

	f, ok := byWord[word]
	if !ok {
		return Field{}, fmt.Errorf("%w: word %d is reserved", errs.ErrUnmappedOffset, word)
	}

	return f, nil
}

// IsReserved reports whether the given header word is reserved/unused space.
// Reserved words must be preserved byte-for-byte on round trips.
func IsReserved(word int) bool {
	if word < 0 || word >= NumWords {
		return false
	}
	_, ok := byWord[word]

	return !ok
}
