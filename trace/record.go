// Package trace implements the SAC record codec: decoding a SAC byte stream
// into an in-memory Record, mutating it through schema-checked accessors, and
// encoding it back with byte-order and field-width fidelity preserved.
//
// A Record is not safe for concurrent mutation; ownership belongs to one
// caller at a time. Decode and encode are pure in-memory transformations
// with no filesystem access.
package trace

import (
	"fmt"
	"strings"

	"github.com/seislab/sacio/endian"
	"github.com/seislab/sacio/errs"
	"github.com/seislab/sacio/format"
	"github.com/seislab/sacio/schema"
)

// Record is one decoded SAC file: the header field maps, the data section,
// and the retained reserved words needed for byte-for-byte round trips.
//
// Header values keep the format's "not set" sentinels internally; the
// accessor API converts them to a present/absent flag so callers never
// handle the magic constants directly.
type Record struct {
	engine endian.EndianEngine

	floats  map[string]float32
	ints    map[string]int32
	strs    map[string]string
	// reserved holds the raw bit patterns of unmapped header words, keyed
	// by word index, so untouched reserved space survives a
	// decode-mutate-encode cycle unchanged.
	reserved map[int]uint32

	warnings []error

	y []float32 // component 1: amplitude, real part, or amplitude of pair
	x []float32 // component 2: sample times, imaginary part, or phase

	extrema      Extrema
	extremaStale bool
}

// New creates an empty record with every header field unset except the
// defaults the reference writer guarantees: header version 6, time-series
// file type, evenly spaced data, overwrite permitted, and
// distance/azimuth calculation enabled.
//
// The byte order defaults to big-endian, the traditional SAC order; use
// SetByteOrder to change it before encoding.
func New() *Record {
	r := &Record{
		engine:       endian.GetBigEndianEngine(),
		floats:       make(map[string]float32, schema.FloatWords),
		ints:         make(map[string]int32, schema.IntWords),
		strs:         make(map[string]string, 24),
		reserved:     make(map[int]uint32),
		extremaStale: true,
	}
	for _, f := range schema.Fields() {
		switch f.Kind {
		case schema.KindFloat32:
			r.floats[f.Name] = format.FloatUndef
		case schema.KindString:
			r.strs[f.Name] = ""
		default:
			r.ints[f.Name] = format.IntUndef
		}
	}

	r.ints["nvhdr"] = 6
	r.ints["iftype"] = int32(format.FileTypeTime)
	r.ints["npts"] = 0
	r.ints["leven"] = 1
	r.ints["lpspol"] = 0
	r.ints["lovrok"] = 1
	r.ints["lcalda"] = 1

	return r
}

// FromAmp creates an evenly spaced time-series record from amplitude data,
// a begin time b (seconds relative to the reference time) and a sample
// interval delta. Extrema and the end time are computed from the data.
func FromAmp(y []float32, b, delta float64) *Record {
	r := New()
	r.SetData(y)
	r.floats["delta"] = float32(delta)
	r.floats["b"] = float32(b)
	r.RefreshExtrema()

	return r
}

// ByteOrder returns the byte order the record will encode with. For decoded
// records this is the order the file was read in.
func (r *Record) ByteOrder() endian.EndianEngine {
	return r.engine
}

// SetByteOrder selects the byte order used by Encode.
func (r *Record) SetByteOrder(engine endian.EndianEngine) {
	r.engine = engine
}

// Warnings returns the advisory header-layout issues collected during
// decode. The record is fully usable despite them; strict-mode decoding
// turns the first of them into a fatal error instead.
func (r *Record) Warnings() []error {
	return r.warnings
}

// Numeric returns the value of a numeric, logical or enumerated header
// field. The boolean reports whether the field is set; unset fields report
// false with the raw sentinel as value.
//
// Returns:
//   - float64: Field value
//   - bool: Present flag (false when the field holds the unset sentinel)
//   - error: errs.ErrUnknownField or errs.ErrTypeMismatch for string fields
func (r *Record) Numeric(name string) (float64, bool, error) {
	f, err := schema.FieldByName(name)
	if err != nil {
		return 0, false, err
	}
	if !f.Numeric() {
		return 0, false, fmt.Errorf("%w: %q is a string field", errs.ErrTypeMismatch, name)
	}

	if f.Kind == schema.KindFloat32 {
		v := r.floats[name]

		return float64(v), v != format.FloatUndef, nil
	}

	v := r.ints[name]

	return float64(v), v != format.IntUndef, nil
}

// SetNumeric sets a numeric, logical or enumerated header field. The value
// is narrowed to the field's stored width (float32 or int32).
//
// Returns:
//   - error: errs.ErrUnknownField or errs.ErrTypeMismatch for string fields
func (r *Record) SetNumeric(name string, value float64) error {
	f, err := schema.FieldByName(name)
	if err != nil {
		return err
	}
	if !f.Numeric() {
		return fmt.Errorf("%w: %q is a string field", errs.ErrTypeMismatch, name)
	}

	if f.Kind == schema.KindFloat32 {
		r.floats[name] = float32(value)
	} else {
		r.ints[name] = int32(value)
	}

	return nil
}

// ClearNumeric resets a numeric header field to the unset sentinel.
func (r *Record) ClearNumeric(name string) error {
	f, err := schema.FieldByName(name)
	if err != nil {
		return err
	}
	if !f.Numeric() {
		return fmt.Errorf("%w: %q is a string field", errs.ErrTypeMismatch, name)
	}

	if f.Kind == schema.KindFloat32 {
		r.floats[name] = format.FloatUndef
	} else {
		r.ints[name] = format.IntUndef
	}

	return nil
}

// String returns the value of a string header field without its trailing
// padding. Unset fields return "".
//
// Returns:
//   - string: Field value, trimmed of trailing pad bytes
//   - error: errs.ErrUnknownField or errs.ErrTypeMismatch for numeric fields
func (r *Record) String(name string) (string, error) {
	f, err := schema.FieldByName(name)
	if err != nil {
		return "", err
	}
	if f.Numeric() {
		return "", fmt.Errorf("%w: %q is not a string field", errs.ErrTypeMismatch, name)
	}

	return r.strs[name], nil
}

// SetString sets a string header field. Values wider than the field's
// declared byte width are rejected, never silently truncated. Setting ""
// marks the field unset.
//
// Returns:
//   - error: errs.ErrUnknownField, errs.ErrTypeMismatch, or
//     errs.ErrStringTooLong when the value exceeds the field width
func (r *Record) SetString(name, value string) error {
	f, err := schema.FieldByName(name)
	if err != nil {
		return err
	}
	if f.Numeric() {
		return fmt.Errorf("%w: %q is not a string field", errs.ErrTypeMismatch, name)
	}
	if len(value) > f.Width {
		return fmt.Errorf("%w: %q is %d bytes, field %s holds %d",
			errs.ErrStringTooLong, value, len(value), name, f.Width)
	}

	r.strs[name] = strings.TrimRight(value, " ")

	return nil
}

// IsSet reports whether the named header field holds a value other than the
// unset sentinel.
func (r *Record) IsSet(name string) (bool, error) {
	f, err := schema.FieldByName(name)
	if err != nil {
		return false, err
	}

	switch f.Kind {
	case schema.KindFloat32:
		return r.floats[name] != format.FloatUndef, nil
	case schema.KindString:
		return r.strs[name] != "", nil
	default:
		return r.ints[name] != format.IntUndef, nil
	}
}

// Data returns component 1 of the data section. The slice is live: callers
// may mutate samples in place, so the extrema cache is marked stale.
func (r *Record) Data() []float32 {
	r.extremaStale = true

	return r.y
}

// SetData replaces component 1. The header npts field follows the data
// array; it is never allowed to drift.
func (r *Record) SetData(y []float32) {
	r.y = y
	r.ints["npts"] = int32(len(y))
	r.extremaStale = true
}

// Comp2 returns component 2 (sample times, imaginary part, or phase), or
// nil for single-component records.
func (r *Record) Comp2() []float32 {
	return r.x
}

// SetComp2 replaces component 2. Both components must have equal length at
// encode time.
func (r *Record) SetComp2(x []float32) {
	r.x = x
}

// Npts returns the number of samples per component.
func (r *Record) Npts() int {
	return len(r.y)
}

// Delta returns the sample interval in seconds, and whether it is set.
func (r *Record) Delta() (float64, bool) {
	v := r.floats["delta"]

	return float64(v), v != format.FloatUndef
}

// SetDelta sets the sample interval in seconds.
func (r *Record) SetDelta(delta float64) {
	r.floats["delta"] = float32(delta)
}

// Begin returns the begin time b in seconds relative to the reference time.
func (r *Record) Begin() (float64, bool) {
	v := r.floats["b"]

	return float64(v), v != format.FloatUndef
}

// End returns the end time e in seconds relative to the reference time.
func (r *Record) End() (float64, bool) {
	v := r.floats["e"]

	return float64(v), v != format.FloatUndef
}

// Version returns the header version (nvhdr, normally 6).
func (r *Record) Version() int {
	return int(r.ints["nvhdr"])
}

// FileType returns the iftype header value.
func (r *Record) FileType() format.FileType {
	return format.FileType(r.ints["iftype"])
}

// SetFileType sets the iftype header value.
func (r *Record) SetFileType(t format.FileType) {
	r.ints["iftype"] = int32(t)
}

// IsSpectral reports whether the record holds spectral (two-component
// frequency-domain) data.
func (r *Record) IsSpectral() bool {
	return r.FileType().Spectral()
}

// IsTime reports whether the record is a time-series file.
func (r *Record) IsTime() bool {
	return r.FileType() == format.FileTypeTime
}

// IsRealImag reports whether the record is a real/imaginary spectral pair.
func (r *Record) IsRealImag() bool {
	return r.FileType() == format.FileTypeRealImag
}

// IsAmpPhase reports whether the record is an amplitude/phase spectral pair.
func (r *Record) IsAmpPhase() bool {
	return r.FileType() == format.FileTypeAmpPhase
}

// EvenlySpaced reports the leven header flag.
func (r *Record) EvenlySpaced() bool {
	return r.ints["leven"] != 0
}

// NComps returns the number of data components the file type implies: two
// for spectral pairs and unevenly spaced series, one otherwise.
func (r *Record) NComps() int {
	switch r.FileType() {
	case format.FileTypeTime, format.FileTypeXY:
		if r.EvenlySpaced() {
			return 1
		}

		return 2
	case format.FileTypeRealImag, format.FileTypeAmpPhase:
		return 2
	default:
		return 1
	}
}

// Mutability reports the lovrok (overwrite permitted) flag.
func (r *Record) Mutability() bool {
	return r.ints["lovrok"] != 0
}

// SetMutability sets the lovrok flag.
func (r *Record) SetMutability(ok bool) {
	r.ints["lovrok"] = logical(ok)
}

// CalcDistAz reports the lcalda flag: whether distance and azimuth should
// be derived from the station and event coordinates.
func (r *Record) CalcDistAz() bool {
	return r.ints["lcalda"] != 0
}

// SetCalcDistAz sets the lcalda flag.
func (r *Record) SetCalcDistAz(on bool) {
	r.ints["lcalda"] = logical(on)
}

// StationLocation returns the station latitude and longitude in degrees,
// and whether both are set.
func (r *Record) StationLocation() (lat, lon float64, ok bool) {
	return r.coordinates("stla", "stlo")
}

// SetStationLocation sets the station latitude, longitude (degrees) and
// elevation (meters), then rederives distance/azimuth when lcalda is set.
//
// Returns:
//   - error: errs.ErrBadLatitude or errs.ErrBadLongitude when out of range
func (r *Record) SetStationLocation(lat, lon, elev float64) error {
	if err := checkCoordinates(lat, lon); err != nil {
		return err
	}

	r.floats["stla"] = float32(lat)
	r.floats["stlo"] = float32(lon)
	r.floats["stel"] = float32(elev)
	r.ComputeDistAz()

	return nil
}

// EventLocation returns the event latitude and longitude in degrees, and
// whether both are set.
func (r *Record) EventLocation() (lat, lon float64, ok bool) {
	return r.coordinates("evla", "evlo")
}

// SetEventLocation sets the event latitude, longitude (degrees) and depth
// (kilometers), then rederives distance/azimuth when lcalda is set.
//
// Returns:
//   - error: errs.ErrBadLatitude or errs.ErrBadLongitude when out of range
func (r *Record) SetEventLocation(lat, lon, depth float64) error {
	if err := checkCoordinates(lat, lon); err != nil {
		return err
	}

	r.floats["evla"] = float32(lat)
	r.floats["evlo"] = float32(lon)
	r.floats["evdp"] = float32(depth)
	r.ComputeDistAz()

	return nil
}

// ChannelCode returns the net.sta.loc.chan identifier built from the
// knetwk, kstnm, khole and kcmpnm header fields. Unset components are
// empty.
func (r *Record) ChannelCode() string {
	parts := [4]string{}
	for i, name := range [4]string{"knetwk", "kstnm", "khole", "kcmpnm"} {
		parts[i] = strings.TrimSpace(r.strs[name])
	}

	return strings.Join(parts[:], ".")
}

func (r *Record) coordinates(latField, lonField string) (float64, float64, bool) {
	lat := r.floats[latField]
	lon := r.floats[lonField]
	if lat == format.FloatUndef || lon == format.FloatUndef {
		return 0, 0, false
	}

	return float64(lat), float64(lon), true
}

func checkCoordinates(lat, lon float64) error {
	if lat < -90.0 || lat > 90.0 {
		return fmt.Errorf("%w: %v", errs.ErrBadLatitude, lat)
	}
	if lon < -360.0 || lon > 360.0 {
		return fmt.Errorf("%w: %v", errs.ErrBadLongitude, lon)
	}

	return nil
}

func logical(b bool) int32 {
	if b {
		return 1
	}

	return 0
}
