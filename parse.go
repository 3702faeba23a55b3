package vgl

import (
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// ParsePosition converts a position prop to a vector.
//
// Absent input is the origin. Sequences and text use their first three
// elements, records their x, y and z fields. Values that do not parse, and
// elements that are missing, become NaN; validating them is left to the
// consumer of the node.
func ParsePosition(in TransformInput) mgl64.Vec3 {
	if in.IsAbsent() {
		return mgl64.Vec3{}
	}
	switch in.Kind {
	case InputSequence:
		return parseVec3(in.Seq)
	case InputRecord:
		return mgl64.Vec3{parseFloat(in.Rec.X), parseFloat(in.Rec.Y), parseFloat(in.Rec.Z)}
	default:
		return parseVec3(tokensOf(in.Text))
	}
}

// ParseRotation converts a rotation prop to Euler angles in radians.
//
// Absent input is no rotation in XYZ order. The fourth sequence element, the
// record's order field, or the fourth text token selects the axis order when
// it names one of RotationOrders exactly; anything else falls back to XYZ.
// Sequence elements and the record field are stringified and trimmed before
// matching.
func ParseRotation(in TransformInput) Euler {
	if in.IsAbsent() {
		return Euler{}
	}
	switch in.Kind {
	case InputSequence:
		xyz := parseVec3(in.Seq)
		var order AxisOrder
		if len(in.Seq) > 3 {
			order, _ = ParseAxisOrder(strings.TrimSpace(rawString(in.Seq[3])))
		}
		return Euler{X: xyz[0], Y: xyz[1], Z: xyz[2], Order: order}
	case InputRecord:
		order, _ := ParseAxisOrder(strings.TrimSpace(rawString(in.Rec.Order)))
		return Euler{
			X:     parseFloat(in.Rec.X),
			Y:     parseFloat(in.Rec.Y),
			Z:     parseFloat(in.Rec.Z),
			Order: order,
		}
	default:
		tokens := splitFields(in.Text)
		xyz := parseVec3(stringsToAny(tokens))
		var order AxisOrder
		if len(tokens) > 3 {
			order, _ = ParseAxisOrder(tokens[3])
		}
		return Euler{X: xyz[0], Y: xyz[1], Z: xyz[2], Order: order}
	}
}

// ParseScale converts a scale prop to a vector. Scale never degenerates:
// every axis that is zero or does not parse becomes 1.
//
// Absent input and empty sequences are unit scale. A single element is a
// uniform scale, two elements scale x and y with z left at 1, and three or
// more use the first three. Records scale each named axis independently.
func ParseScale(in TransformInput) mgl64.Vec3 {
	if in.IsAbsent() {
		return mgl64.Vec3{1, 1, 1}
	}
	switch in.Kind {
	case InputSequence:
		return parseScaleElements(in.Seq)
	case InputRecord:
		return mgl64.Vec3{
			orFallback(parseFloat(in.Rec.X), 1),
			orFallback(parseFloat(in.Rec.Y), 1),
			orFallback(parseFloat(in.Rec.Z), 1),
		}
	default:
		return parseScaleElements(tokensOf(in.Text))
	}
}

func parseScaleElements(elems []any) mgl64.Vec3 {
	switch len(elems) {
	case 0:
		return mgl64.Vec3{1, 1, 1}
	case 1:
		t := orFallback(parseFloat(elems[0]), 1)
		return mgl64.Vec3{t, t, t}
	case 2:
		return mgl64.Vec3{
			orFallback(parseFloat(elems[0]), 1),
			orFallback(parseFloat(elems[1]), 1),
			1,
		}
	default:
		return mgl64.Vec3{
			orFallback(parseFloat(elems[0]), 1),
			orFallback(parseFloat(elems[1]), 1),
			orFallback(parseFloat(elems[2]), 1),
		}
	}
}

// parseVec3 parses the first three elements; missing ones are NaN.
func parseVec3(elems []any) mgl64.Vec3 {
	v := mgl64.Vec3{math.NaN(), math.NaN(), math.NaN()}
	for i := 0; i < 3 && i < len(elems); i++ {
		v[i] = parseFloat(elems[i])
	}
	return v
}

func tokensOf(text string) []any {
	return stringsToAny(splitFields(text))
}

func stringsToAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
