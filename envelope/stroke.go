// SPDX-License-Identifier: EPL-2.0

package envelope

import (
	"math"

	"github.com/ik5/wavedraw/utils"
)

// StrokeEngine turns raw pointer drags over the plot into envelope
// writes. A drag edits exactly one envelope: the polarity is decided by
// the vertical position at pointer-down and kept for the whole gesture,
// so a hand that wobbles across the axis mid-stroke cannot flip sides.
//
// Pointer coordinates are plot coordinates: x is the fractional sample
// index, y the amplitude. Events outside the plot bounds are clamped,
// never dropped.
type StrokeEngine struct {
	store *Store
	// amplitude bound: y is clamped to [-maxAmp, maxAmp]
	maxAmp float64

	active   bool
	polarity Polarity
	prevIdx  int
	prevVal  float64
}

// NewStrokeEngine creates an engine writing into store. maxAmp is the
// plot's amplitude bound (peak plus margin); non-positive values fall
// back to 1.
func NewStrokeEngine(store *Store, maxAmp float64) *StrokeEngine {
	if maxAmp <= 0 {
		maxAmp = 1
	}
	return &StrokeEngine{
		store:  store,
		maxAmp: maxAmp,
	}
}

// Active reports whether a drag is in progress.
func (e *StrokeEngine) Active() bool { return e.active }

func (e *StrokeEngine) clampPoint(x, y float64) (int, float64) {
	idx := int(math.Round(utils.Clamp(x, 0, float64(e.store.Len()-1))))
	amp := utils.Clamp(y, -e.maxAmp, e.maxAmp)
	return idx, amp
}

// Down starts a stroke at plot position (x, y). The polarity is fixed
// here: y >= 0 edits the positive envelope, y < 0 the negative.
func (e *StrokeEngine) Down(x, y float64) error {
	if e.active {
		return ErrStrokeOpen
	}

	idx, amp := e.clampPoint(x, y)
	polarity := PolarityOf(amp)

	if err := e.store.BeginStroke(polarity); err != nil {
		return err
	}

	e.active = true
	e.polarity = polarity
	e.store.Set(polarity, idx, amp)
	e.prevIdx = idx
	e.prevVal = amp

	return nil
}

// Move extends the active stroke to (x, y). When the pointer skipped
// over sample indices since the last event, every index in between is
// written with a linearly interpolated amplitude so fast drags leave no
// gaps. Moves without a preceding Down are ignored.
func (e *StrokeEngine) Move(x, y float64) error {
	if !e.active {
		return nil
	}

	idx, amp := e.clampPoint(x, y)

	if idx == e.prevIdx {
		e.store.Set(e.polarity, idx, amp)
	} else {
		span := idx - e.prevIdx
		step := 1
		if span < 0 {
			step = -1
			span = -span
		}
		for off := 1; off <= span; off++ {
			t := float64(off) / float64(span)
			e.store.Set(e.polarity, e.prevIdx+off*step, utils.Lerp(e.prevVal, amp, t))
		}
	}

	e.prevIdx = idx
	e.prevVal = amp

	return nil
}

// Up finishes the stroke and commits it as one undo entry.
func (e *StrokeEngine) Up() error {
	if !e.active {
		return nil
	}
	e.active = false

	return e.store.EndStroke()
}

// Cancel aborts the drag in progress, rolling back its writes without
// recording a history entry. Idle engines ignore the call, so Cancel is
// always safe to use as an error-recovery path.
func (e *StrokeEngine) Cancel() {
	if !e.active {
		return
	}
	e.active = false

	e.store.CancelStroke()
}
