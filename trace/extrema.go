package trace

import "github.com/seislab/sacio/format"

// Extrema holds the minimum, arithmetic mean and maximum amplitude of the
// active data component. For an empty data array all three hold the unset
// sentinel.
type Extrema struct {
	Min  float64
	Mean float64
	Max  float64
}

// Extrema returns the amplitude extrema of component 1. The result is
// cached; any mutable access to the data array marks the cache stale and
// forces a recompute here, so a stale cache is never served.
func (r *Record) Extrema() Extrema {
	if r.extremaStale {
		r.extrema = computeExtrema(r.y)
		r.extremaStale = false
	}

	return r.extrema
}

// RefreshExtrema recomputes the extrema, stores them into the depmin,
// depmax and depmen header fields, and rederives the end time for evenly
// spaced records.
func (r *Record) RefreshExtrema() {
	r.extremaStale = true
	ex := r.Extrema()
	r.floats["depmin"] = float32(ex.Min)
	r.floats["depmax"] = float32(ex.Max)
	r.floats["depmen"] = float32(ex.Mean)
	r.calcEndTime()
}

func computeExtrema(y []float32) Extrema {
	if len(y) == 0 {
		undef := float64(format.FloatUndef)

		return Extrema{Min: undef, Mean: undef, Max: undef}
	}

	minVal := float64(y[0])
	maxVal := float64(y[0])
	sum := 0.0
	for _, v := range y {
		f := float64(v)
		if f < minVal {
			minVal = f
		}
		if f > maxVal {
			maxVal = f
		}
		sum += f
	}

	return Extrema{
		Min:  minVal,
		Mean: sum / float64(len(y)),
		Max:  maxVal,
	}
}

// calcEndTime derives the e header field from b, delta and npts. For
// unevenly spaced data b and e are instead the bounds of the sample-time
// component.
func (r *Record) calcEndTime() {
	if r.EvenlySpaced() {
		b := r.floats["b"]
		delta := r.floats["delta"]
		if b == format.FloatUndef || delta == format.FloatUndef {
			return
		}
		npts := int32(len(r.y))
		switch r.FileType() {
		case format.FileTypeTime, format.FileTypeXY:
			if npts > 0 {
				r.floats["e"] = b + delta*float32(npts-1)
			}
		case format.FileTypeRealImag, format.FileTypeAmpPhase:
			nfreq := npts / 2
			if npts%2 != 0 {
				nfreq = (npts - 1) / 2
			}
			r.floats["e"] = b + delta*float32(nfreq)
		}

		return
	}

	if len(r.x) == 0 {
		return
	}
	xmin := r.x[0]
	xmax := r.x[0]
	for _, xi := range r.x {
		if xi < xmin {
			xmin = xi
		}
		if xi > xmax {
			xmax = xi
		}
	}
	r.floats["b"] = xmin
	r.floats["e"] = xmax
}
