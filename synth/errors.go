// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	ErrInvalidFrequency = errors.New("frequency must be positive")
	ErrInvalidLength    = errors.New("samples per cycle and periods must be positive")
)
