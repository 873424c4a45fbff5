// SPDX-License-Identifier: EPL-2.0

package render

// Sign classifies a sample for two-color rendering. Zero counts as
// positive; this is a rendering convention only and does not affect
// how zero samples are synthesized.
type Sign int

const (
	SignNegative Sign = iota
	SignPositive
)

func (s Sign) String() string {
	if s == SignNegative {
		return "negative"
	}
	return "positive"
}

// SignOf classifies a sample value.
func SignOf(v float64) Sign {
	if v < 0 {
		return SignNegative
	}
	return SignPositive
}

// Segment is a contiguous run of the index axis carrying exactly one
// sign. X0 and X1 are positions on the sample-index axis; X1 (or X0)
// may be a fractional zero-crossing position. Y0 and Y1 are the
// waveform values at those positions, zero at a crossing.
//
// Renderers must never blend colors within a segment: by construction
// no segment straddles a true sign change.
type Segment struct {
	X0, X1 float64
	Y0, Y1 float64
	Sign   Sign
}

// Subdivide splits a waveform into single-signed segments for strict
// two-color rendering.
//
// Each adjacent sample pair with a single sign becomes one segment. A pair
// with a sign change is split at the interpolated zero crossing
// t = i + v[i]/(v[i]-v[i+1]); the left part keeps the left sample's
// sign, the right part the right sample's. The crossing point itself
// carries y=0, so the union of segment endpoints reproduces the
// waveform exactly at every integer index.
func Subdivide(w []float64) []Segment {
	if len(w) < 2 {
		return nil
	}

	segments := make([]Segment, 0, len(w)-1)

	for i := 0; i < len(w)-1; i++ {
		v0, v1 := w[i], w[i+1]
		s0, s1 := SignOf(v0), SignOf(v1)
		x0, x1 := float64(i), float64(i+1)

		if s0 == s1 {
			segments = append(segments, Segment{X0: x0, X1: x1, Y0: v0, Y1: v1, Sign: s0})
			continue
		}

		// signs differ, so v0 != v1 and the division is safe
		t := x0 + v0/(v0-v1)
		segments = append(segments,
			Segment{X0: x0, X1: t, Y0: v0, Y1: 0, Sign: s0},
			Segment{X0: t, X1: x1, Y0: 0, Y1: v1, Sign: s1},
		)
	}

	return segments
}
