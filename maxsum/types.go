// Package maxsum defines options and sentinel errors for the
// message-passing controller.
package maxsum

import (
	"errors"

	"github.com/optalgo/factorgraph/core"
)

// Sentinel errors for controller operations.
var (
	// ErrBadOptions indicates MaxIterations < 1 or a negative Tolerance.
	ErrBadOptions = errors.New("maxsum: invalid controller options")

	// ErrNilFactor indicates a nil *discrete.Function factor.
	ErrNilFactor = errors.New("maxsum: nil factor function")
)

// Options configures a Controller.
//
// Fields:
//   - MaxIterations — hard cap on message-passing rounds.
//   - Tolerance     — convergence threshold: the loop stops once the
//     largest maxnorm change of any message over one round is at or
//     below this value.
//   - Normalize     — if true, every outgoing message is shifted so its
//     maximum is zero. The argmax assignment is unchanged either way;
//     normalization only keeps message magnitudes bounded on loopy
//     graphs.
type Options struct {
	MaxIterations int
	Tolerance     core.ValType
	Normalize     bool
}

// DefaultOptions returns the standard configuration: 100 iterations,
// core.DefaultValueTolerance, normalization on.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 100,
		Tolerance:     core.DefaultValueTolerance,
		Normalize:     true,
	}
}
