package trace

import (
	"fmt"
	"time"

	"github.com/seislab/sacio/errs"
	"github.com/seislab/sacio/format"
)

// refTimeFields are the six header words encoding the absolute reference
// time: year, day-of-year, hour, minute, second, millisecond.
var refTimeFields = [6]string{"nzyear", "nzjday", "nzhour", "nzmin", "nzsec", "nzmsec"}

// ReferenceTime returns the absolute reference time assembled from the nz*
// header fields, in UTC.
//
// Returns:
//   - time.Time: The reference time
//   - error: errs.ErrNoReferenceTime when any nz* field is unset
func (r *Record) ReferenceTime() (time.Time, error) {
	for _, name := range refTimeFields {
		if r.ints[name] == format.IntUndef {
			return time.Time{}, fmt.Errorf("%w: %s", errs.ErrNoReferenceTime, name)
		}
	}

	// time.Date normalizes an out-of-range day, so the day-of-year can be
	// passed directly as the day of January.
	return time.Date(
		int(r.ints["nzyear"]), time.January, int(r.ints["nzjday"]),
		int(r.ints["nzhour"]), int(r.ints["nzmin"]), int(r.ints["nzsec"]),
		int(r.ints["nzmsec"])*int(time.Millisecond), time.UTC,
	), nil
}

// SetReferenceTime stores t (converted to UTC) into the nz* header fields.
// Sub-millisecond precision is discarded, matching the header resolution.
func (r *Record) SetReferenceTime(t time.Time) {
	t = t.UTC()
	r.ints["nzyear"] = int32(t.Year())
	r.ints["nzjday"] = int32(t.YearDay())
	r.ints["nzhour"] = int32(t.Hour())
	r.ints["nzmin"] = int32(t.Minute())
	r.ints["nzsec"] = int32(t.Second())
	r.ints["nzmsec"] = int32(t.Nanosecond() / int(time.Millisecond))
}

// MarkTime returns the absolute time of a relative timing-mark field (b, e,
// o, a, f, or t0 through t9): the reference time plus the field's offset in
// seconds.
//
// Returns:
//   - time.Time: The absolute mark time
//   - error: errs.ErrUnknownField, errs.ErrTypeMismatch,
//     errs.ErrNoReferenceTime when the reference time or the mark is unset
func (r *Record) MarkTime(field string) (time.Time, error) {
	ref, err := r.ReferenceTime()
	if err != nil {
		return time.Time{}, err
	}

	v, ok, err := r.Numeric(field)
	if err != nil {
		return time.Time{}, err
	}
	if !ok {
		return time.Time{}, fmt.Errorf("%w: mark %s unset", errs.ErrNoReferenceTime, field)
	}

	return ref.Add(time.Duration(v * float64(time.Second))), nil
}
