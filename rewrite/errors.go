package rewrite

import (
	"fmt"

	"github.com/katalvlaran/fca/fcaerr"
)

// rewriteErrorf wraps fcaerr.InvariantViolation with an op/format detail,
// mirroring builder/errors.go's builderErrorf.
func rewriteErrorf(op, format string, args ...any) error {
	return fcaerr.Wrap(fcaerr.InvariantViolation, op, fmt.Sprintf(format, args...))
}
