// SPDX-License-Identifier: MIT

package gate

import "errors"

var (
	// ErrNotTrained is returned by Predict before Train has completed.
	ErrNotTrained = errors.New("gate: not trained")

	// ErrBadTable indicates a truth table with a non-finite output.
	ErrBadTable = errors.New("gate: invalid truth table")
)
