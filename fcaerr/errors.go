// Package fcaerr defines the sentinel error kinds shared across the fca
// module: derivation, enumeration, the implication store, and the
// simplification rewrite engine all fail through these sentinels so callers
// can branch with errors.Is instead of matching strings.
//
// Error policy (mirrors the teacher's matrix/errors.go and
// builder/errors.go):
//   - Only sentinel variables are exposed at package level.
//   - Sentinels are never wrapped with formatted strings at definition site.
//   - Implementations attach operation context with Wrap, which uses %w so
//     errors.Is still matches the sentinel through the wrapper.
package fcaerr

import (
	"errors"
	"fmt"
)

var (
	// ShapeMismatch indicates a fuzzy set's universe (objects vs. attributes)
	// does not match what the operation expected.
	ShapeMismatch = errors.New("fca: shape mismatch between universe and operand")

	// EmptyContext indicates an operation requiring a loaded incidence was
	// called with none loaded.
	EmptyContext = errors.New("fca: no incidence loaded")

	// NotBinary indicates a binary-only operation was called on a
	// non-{0,1} incidence.
	NotBinary = errors.New("fca: operation requires a binary incidence")

	// UnknownLogic indicates a logic name absent from the registry.
	UnknownLogic = errors.New("fca: unknown logic")

	// UnknownRewrite indicates a rewrite-rule name absent from the registry.
	UnknownRewrite = errors.New("fca: unknown rewrite rule")

	// InvariantViolation indicates a registered rewrite returned a result
	// that violates implication-store invariants; the pre-rewrite store is
	// retained by the caller.
	InvariantViolation = errors.New("fca: rewrite violated store invariants")

	// Cancelled indicates a caller-supplied context was cancelled and was
	// observed at a checkpoint; no partial state is returned.
	Cancelled = errors.New("fca: operation cancelled")
)

// Wrap attaches an operation label to a sentinel (or any error), preserving
// errors.Is matching via %w. Mirrors matrix.denseErrorf / builder.builderErrorf.
func Wrap(kind error, op string, detail string) error {
	if detail == "" {
		return fmt.Errorf("%s: %w", op, kind)
	}

	return fmt.Errorf("%s: %s: %w", op, detail, kind)
}
