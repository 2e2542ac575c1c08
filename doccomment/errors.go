package doccomment

import "errors"

// ErrUnknownDialect indicates a dialect name missing from a [Registry].
var ErrUnknownDialect = errors.New("unknown dialect")
