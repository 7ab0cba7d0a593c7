// SPDX-License-Identifier: MIT

package model

import "errors"

var (
	// ErrNotReady is returned by Run and Execute when Setup has not been
	// called since the last definition.
	ErrNotReady = errors.New("model: setup required")

	// ErrDuplicateNode is returned when a node name is defined twice.
	ErrDuplicateNode = errors.New("model: duplicate node name")

	// ErrUnknownNode is returned for a NodeID or name that was never defined.
	ErrUnknownNode = errors.New("model: unknown node")

	// ErrEmptyName is returned when a node is defined without a name.
	ErrEmptyName = errors.New("model: empty node name")

	// ErrInvalidInterval is returned by Execute for a non-positive duration
	// or an interval shorter than half a time step.
	ErrInvalidInterval = errors.New("model: invalid execute interval")
)
