// SPDX-License-Identifier: EPL-2.0

package wavedraw

import "errors"

var (
	// ErrDegenerateWaveform reports an empty or all-silent input.
	// There is nothing to draw an envelope on, so loading fails before
	// a session starts.
	ErrDegenerateWaveform = errors.New("waveform is empty or silent")
	// ErrUnknownFormat reports a file extension with no registered decoder.
	ErrUnknownFormat = errors.New("no decoder for file format")
)
