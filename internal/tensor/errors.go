package tensor

import "errors"

// Common errors.
var (
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrInvalidShape  = errors.New("invalid shape")
	ErrNotScalar     = errors.New("tensor is not a single-element tensor")
)
