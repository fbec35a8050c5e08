package nn

import "errors"

// ErrInvalidArgument reports a criterion configured with values it cannot use.
var ErrInvalidArgument = errors.New("invalid argument")
