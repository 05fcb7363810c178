// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set, following the teacher's matrix/errors.go
// discipline — package-level sentinels only, never string-wrapped at
// definition, %w-wrapped by callers that need operation context.
package sparse

import (
	"fmt"

	"github.com/katalvlaran/fca/fcaerr"
)

// sparseErrorf wraps a sentinel (or any error) with method context, mirroring
// matrix.denseErrorf / builder.builderErrorf.
func sparseErrorf(method string, err error) error {
	return fmt.Errorf("sparse.%s: %w", method, err)
}

func dimMismatch(method string, a, b int) error {
	return sparseErrorf(method, fmt.Errorf("dim %d != %d: %w", a, b, fcaerr.ShapeMismatch))
}
