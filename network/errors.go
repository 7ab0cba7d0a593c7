// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the umbrella for every validation failure. Callers that
// only care about the class match on it; the specific sentinels below
// identify the rule that was broken.
var ErrInvalidInput = errors.New("network: invalid input")

var (
	// ErrDimensionMismatch indicates parallel input slices of different lengths.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrNodeIndexOutOfRange indicates an edge endpoint outside [0, N).
	ErrNodeIndexOutOfRange = errors.New("node index out of range")

	// ErrNonPositiveCapacity indicates a capacity ≤ 0 or NaN.
	ErrNonPositiveCapacity = errors.New("non-positive capacity")

	// ErrUnknownEdgeKind indicates an edge kind code outside the closed set.
	ErrUnknownEdgeKind = errors.New("unknown edge kind")

	// ErrNilNetwork indicates a nil *Network was passed where one is required.
	ErrNilNetwork = errors.New("nil network")
)

// invalidf tags a specific sentinel with the ErrInvalidInput class, so that
// errors.Is matches both the class and the rule.
func invalidf(rule error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrInvalidInput, rule, fmt.Sprintf(format, args...))
}
