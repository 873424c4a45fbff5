// SPDX-License-Identifier: EPL-2.0

package envelope

import "errors"

var (
	// ErrNothingToUndo reports an undo request with an empty history.
	ErrNothingToUndo = errors.New("nothing to undo")
	// ErrNothingToRedo reports a redo request with no undone stroke to replay.
	ErrNothingToRedo = errors.New("nothing to redo")
	// ErrStrokeOpen reports an operation that is not allowed while a
	// stroke bracket is open.
	ErrStrokeOpen = errors.New("stroke in progress")
	// ErrNoStroke reports EndStroke without a matching BeginStroke.
	ErrNoStroke = errors.New("no stroke in progress")
)
