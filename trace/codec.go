package trace

import (
	"fmt"
	"math"
	"strings"

	"github.com/seislab/sacio/endian"
	"github.com/seislab/sacio/errs"
	"github.com/seislab/sacio/format"
	"github.com/seislab/sacio/internal/options"
	"github.com/seislab/sacio/schema"
)

type decodeConfig struct {
	engine endian.EndianEngine // nil means sniff from the header
	strict bool
}

// DecodeOption configures Decode.
type DecodeOption = options.Option[*decodeConfig]

// WithByteOrder supplies the byte order of the input stream, bypassing the
// sniffing heuristic.
func WithByteOrder(engine endian.EndianEngine) DecodeOption {
	return options.NoError(func(cfg *decodeConfig) {
		cfg.engine = engine
	})
}

// WithStrictMode turns advisory header-layout findings (such as
// non-printable bytes in a string field) into fatal decode errors.
func WithStrictMode() DecodeOption {
	return options.NoError(func(cfg *decodeConfig) {
		cfg.strict = true
	})
}

// SniffByteOrder guesses the byte order of a SAC stream from the header
// version word (nvhdr): the order under which the version decodes to a
// plausible value wins. Big-endian, the traditional SAC order, is tried
// first.
//
// Returns:
//   - endian.EndianEngine: The detected byte order
//   - error: errs.ErrTruncatedInput or errs.ErrHeaderLayout when neither
//     order yields a plausible version
func SniffByteOrder(data []byte) (endian.EndianEngine, error) {
	off := schema.VersionWord * schema.WordSize
	if len(data) < off+schema.WordSize {
		return nil, fmt.Errorf("%w: %d bytes, need %d for version word",
			errs.ErrTruncatedInput, len(data), off+schema.WordSize)
	}

	engines := []endian.EndianEngine{
		endian.GetBigEndianEngine(),
		endian.GetLittleEndianEngine(),
	}
	for _, engine := range engines {
		v := int32(engine.Uint32(data[off : off+schema.WordSize]))
		if v >= 1 && v <= 10 {
			return engine, nil
		}
	}

	return nil, fmt.Errorf("%w: header version implausible in either byte order", errs.ErrHeaderLayout)
}

// Decode parses a complete SAC file from data: the fixed 632-byte header
// followed by npts float32 samples per component.
//
// Decode fails fast and whole: a malformed input produces an error and no
// record, never a partially populated one. Structural advisory findings are
// collected on the record (see Record.Warnings) unless WithStrictMode makes
// them fatal.
//
// Parameters:
//   - data: Complete file contents
//   - opts: WithByteOrder, WithStrictMode
//
// Returns:
//   - *Record: The decoded record
//   - error: errs.ErrTruncatedInput, errs.ErrHeaderLayout
func Decode(data []byte, opts ...DecodeOption) (*Record, error) {
	cfg := &decodeConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if len(data) < schema.HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes, header needs %d",
			errs.ErrTruncatedInput, len(data), schema.HeaderSize)
	}

	engine := cfg.engine
	if engine == nil {
		var err error
		if engine, err = SniffByteOrder(data); err != nil {
			return nil, err
		}
	}

	r := New()
	r.engine = engine

	for _, f := range schema.Fields() {
		off := f.Word * schema.WordSize
		switch f.Kind {
		case schema.KindFloat32:
			r.floats[f.Name] = math.Float32frombits(engine.Uint32(data[off : off+schema.WordSize]))
		case schema.KindString:
			value, warn := decodeString(f, data[off:off+f.Width])
			r.strs[f.Name] = value
			if warn != nil {
				r.warnings = append(r.warnings, warn)
			}
		default:
			r.ints[f.Name] = int32(engine.Uint32(data[off : off+schema.WordSize]))
		}
	}

	// Reserved words are carried through verbatim as raw bit patterns.
	for w := 0; w < schema.NumWords; w++ {
		if !schema.IsReserved(w) {
			continue
		}
		off := w * schema.WordSize
		r.reserved[w] = engine.Uint32(data[off : off+schema.WordSize])
	}

	if cfg.strict && len(r.warnings) > 0 {
		return nil, r.warnings[0]
	}

	npts := r.ints["npts"]
	if npts < 0 {
		return nil, fmt.Errorf("%w: negative sample count %d", errs.ErrHeaderLayout, npts)
	}
	if !r.FileType().Valid() {
		return nil, fmt.Errorf("%w: unknown file type %d", errs.ErrHeaderLayout, r.ints["iftype"])
	}

	n := int(npts)
	ncomps := r.NComps()
	need := n * schema.WordSize * ncomps
	rest := data[schema.HeaderSize:]
	if len(rest) < need {
		return nil, fmt.Errorf("%w: header declares %d samples x %d components (%d bytes), %d remain",
			errs.ErrTruncatedInput, n, ncomps, need, len(rest))
	}

	r.y = decodeSamples(engine, rest[:n*4])
	if ncomps == 2 {
		r.x = decodeSamples(engine, rest[n*4:2*n*4])
	}

	return r, nil
}

// Encode serializes the record: header per schema, then npts samples per
// component. The npts header field is always written from the data array
// length, so an edit-then-save cycle can never leave the two inconsistent.
//
// Returns:
//   - []byte: The encoded file contents
//   - error: errs.ErrPointCountMismatch when a two-component record holds
//     arrays of different lengths
func (r *Record) Encode() ([]byte, error) {
	npts := len(r.y)
	ncomps := r.NComps()
	if ncomps == 2 && len(r.x) != npts {
		return nil, fmt.Errorf("%w: component 1 holds %d samples, component 2 holds %d",
			errs.ErrPointCountMismatch, npts, len(r.x))
	}

	// The data array is the source of truth for npts.
	r.ints["npts"] = int32(npts)

	engine := r.engine
	buf := make([]byte, schema.HeaderSize+npts*schema.WordSize*ncomps)

	for _, f := range schema.Fields() {
		off := f.Word * schema.WordSize
		switch f.Kind {
		case schema.KindFloat32:
			engine.PutUint32(buf[off:off+schema.WordSize], math.Float32bits(r.floats[f.Name]))
		case schema.KindString:
			copy(buf[off:off+f.Width], encodeString(f, r.strs[f.Name]))
		default:
			engine.PutUint32(buf[off:off+schema.WordSize], uint32(r.ints[f.Name]))
		}
	}

	for w := 0; w < schema.NumWords; w++ {
		if !schema.IsReserved(w) {
			continue
		}
		off := w * schema.WordSize
		engine.PutUint32(buf[off:off+schema.WordSize], r.reservedWord(w))
	}

	out := buf[schema.HeaderSize:]
	for i, v := range r.y {
		engine.PutUint32(out[i*4:i*4+4], math.Float32bits(v))
	}
	if ncomps == 2 {
		out = out[npts*4:]
		for i, v := range r.x {
			engine.PutUint32(out[i*4:i*4+4], math.Float32bits(v))
		}
	}

	return buf, nil
}

func decodeSamples(engine endian.EndianEngine, data []byte) []float32 {
	y := make([]float32, len(data)/4)
	for i := range y {
		y[i] = math.Float32frombits(engine.Uint32(data[i*4 : i*4+4]))
	}

	return y
}

// decodeString trims trailing pad bytes, maps the sentinel pattern to "",
// and flags non-printable content as an advisory header-layout issue.
func decodeString(f schema.Field, raw []byte) (string, error) {
	value := strings.TrimRight(string(raw), " \x00")
	if value == strings.TrimRight(format.StringUndef, " ") {
		return "", nil
	}

	for _, b := range []byte(value) {
		if b < 0x20 || b > 0x7e {
			return value, fmt.Errorf("%w: string field %s contains non-printable byte 0x%02x",
				errs.ErrHeaderLayout, f.Name, b)
		}
	}

	return value, nil
}

// encodeString reconstructs the on-disk form: the sentinel pattern for
// unset fields, otherwise the value right-padded with spaces to the
// declared width.
func encodeString(f schema.Field, value string) []byte {
	if value == "" {
		value = strings.TrimRight(format.StringUndef, " ")
	}

	out := make([]byte, f.Width)
	for i := range out {
		out[i] = ' '
	}
	copy(out, value)

	return out
}

// reservedWord returns the retained raw bits for a reserved header word, or
// the format's default when the record was built in memory: the sentinel of
// the surrounding region, except the final header word which the reference
// writer zeroes.
func (r *Record) reservedWord(w int) uint32 {
	if bits, ok := r.reserved[w]; ok {
		return bits
	}
	if w == schema.FloatWords+schema.IntWords-1 { // final int word, zeroed by the reference writer
		return 0
	}
	if w < schema.FloatWords {
		return math.Float32bits(format.FloatUndef)
	}

	undef := format.IntUndef
	return uint32(undef)
}
