package trace

import "math"

// Synthetic waveform constructors mirroring the reference toolchain's
// function generator. They build complete, evenly spaced time-series
// records ready for encoding, and are handy as deterministic test inputs.

// Impulse creates an n-sample record that is zero everywhere except a unit
// spike at the middle sample.
func Impulse(n int, b, delta float64) *Record {
	y := make([]float32, n)
	if n > 0 {
		y[(n-1)/2] = 1.0
	}
	r := FromAmp(y, b, delta)
	r.strs["kevnm"] = "FUNCGEN: IMPULSE"

	return r
}

// Sine creates an n-sample sine wave of the given frequency (Hz) and phase
// (degrees), sampled every delta seconds starting at b.
func Sine(n int, b, delta, frequency, phaseDeg float64) *Record {
	phase := 2.0 * math.Pi * (frequency*b + phaseDeg/360.0)
	y := make([]float32, n)
	for i := range y {
		y[i] = float32(math.Sin(phase + 2.0*math.Pi*float64(i)*frequency*delta))
	}
	r := FromAmp(y, b, delta)
	r.strs["kevnm"] = "FUNCGEN: SINE"

	return r
}

// Triangle creates a unit-area triangle pulse with the given half width in
// seconds, sampled every delta seconds starting at time zero.
func Triangle(halfWidth, delta float64) *Record {
	n := int(halfWidth*2.0/delta) + 1
	area := halfWidth * halfWidth
	y := make([]float32, n)
	for i := range y {
		t := float64(i) * delta
		var v float64
		switch {
		case t <= halfWidth:
			v = t
		case t <= 2.0*halfWidth:
			v = 2.0*halfWidth - t
		}
		y[i] = float32(v / area)
	}
	r := FromAmp(y, 0.0, delta)
	// kevnm holds 16 bytes; the full name does not fit.
	r.strs["kevnm"] = "FUNCGEN: TRIANGL"

	return r
}
