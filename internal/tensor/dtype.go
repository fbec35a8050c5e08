// Package tensor provides the dense host tensor used by the loss criteria.
package tensor

// Float is a constraint for the element types a Tensor can hold.
type Float interface {
	float32 | float64
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Float32 DataType = iota
	Float64
)

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T Float]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return Float32
	default:
		return Float64
	}
}
