// SPDX-License-Identifier: EPL-2.0

package envelope

// Polarity selects which of the two envelopes a stroke or sample
// belongs to.
type Polarity int

const (
	// Positive is the envelope bounding samples above the axis.
	Positive Polarity = iota
	// Negative is the envelope bounding samples below the axis.
	Negative
)

func (p Polarity) String() string {
	if p == Negative {
		return "negative"
	}
	return "positive"
}

// PolarityOf maps a plot amplitude to the envelope it edits.
// Zero belongs to the positive half, matching the renderer's sign
// convention.
func PolarityOf(y float64) Polarity {
	if y < 0 {
		return Negative
	}
	return Positive
}

// clamp restricts a value to the polarity's valid sign half: the
// positive envelope never goes below zero, the negative never above.
func (p Polarity) clamp(v float64) float64 {
	if p == Positive {
		if v < 0 {
			return 0
		}
		return v
	}
	if v > 0 {
		return 0
	}
	return v
}
