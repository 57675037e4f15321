// Package matrix implements the dense two-precision matrix type shared
// by the public duomat packages.
package matrix

// Float is a constraint for supported matrix element types.
// It uses Go generics so both precisions share one implementation.
type Float interface {
	~float32 | ~float64
}

// DataType represents runtime type information for matrices.
type DataType int

// Supported element types for matrices.
const (
	Float32 DataType = iota
	Float64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

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
func inferDataType[T Float](dummy T) DataType {
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		panic("unsupported element type")
	}
}
