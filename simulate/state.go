// SPDX-License-Identifier: MIT

package simulate

import "fmt"

// State is the lifecycle of one run:
//
//	Initialized → Running(1..steps) → Completed
//	                    └───────────→ Failed
//
// Completed and Failed are terminal until the next Run.
type State int

const (
	// Initialized: inputs validated, no step taken yet.
	Initialized State = iota
	// Running: at least one step is in progress or done.
	Running
	// Completed: all steps done, the final snapshot was returned.
	Completed
	// Failed: the run ended with an error and returned no vector.
	Failed
)

func (s State) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
