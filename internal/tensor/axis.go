package tensor

import "strconv"

// Axis selects how a Matrix reduction collapses its input.
//
// AxisAll and AxisCol are constants. The zero Axis and any other converted
// value are rejected by reductions with ErrInvalidParameter.
type Axis uint8

// Reduction modes.
const (
	// AxisAll aggregates every element into a length-1 Vector.
	AxisAll Axis = iota + 1
	// AxisCol aggregates down each column into a Vector of length cols.
	AxisCol
)

func (a Axis) perColumn() bool { return a == AxisCol }

func (a Axis) valid() bool { return a == AxisAll || a == AxisCol }

// String returns "all", "col", or "Axis(n)" for an invalid value.
func (a Axis) String() string {
	switch a {
	case AxisAll:
		return "all"
	case AxisCol:
		return "col"
	default:
		return "Axis(" + strconv.Itoa(int(a)) + ")"
	}
}
