package mapproj

import (
	"fmt"
	"strings"
)

const axisENU = "enu"

// checkAxis validates an axis specification: two horizontal direction
// letters followed by a vertical one. The vertical letter is carried
// but unused by the pipeline.
func checkAxis(axis string) error {
	const horizAxis = "ewns"
	if len(axis) != 3 || !strings.ContainsAny(axis[0:1], horizAxis) ||
		!strings.ContainsAny(axis[1:2], horizAxis) || !strings.ContainsAny(axis[2:3], "ud") {
		return fmt.Errorf("illegal axis specification %q", axis)
	}
	return nil
}

// normalizeAxis converts a point from a parameter set's declared axis
// order to the engine's east-north convention, swapping and flipping
// components as the axis letters direct. The vertical axis letter is
// accepted but ignored; the engine works on coordinate pairs.
func normalizeAxis(axis string, p Point) (Point, error) {
	var out Point
	in := [2]float64{p.X, p.Y}
	for i := 0; i < 2; i++ {
		switch axis[i] {
		case 'e':
			out.X = in[i]
		case 'w':
			out.X = -in[i]
		case 'n':
			out.Y = in[i]
		case 's':
			out.Y = -in[i]
		default:
			return Point{}, fmt.Errorf("in mapproj.normalizeAxis: unknown axis direction %q", axis[i])
		}
	}
	return out, nil
}

// denormalizeAxis is the exact inverse of normalizeAxis: it converts a
// point from the engine's east-north convention to the declared axis
// order.
func denormalizeAxis(axis string, p Point) (Point, error) {
	var out [2]float64
	for i := 0; i < 2; i++ {
		switch axis[i] {
		case 'e':
			out[i] = p.X
		case 'w':
			out[i] = -p.X
		case 'n':
			out[i] = p.Y
		case 's':
			out[i] = -p.Y
		default:
			return Point{}, fmt.Errorf("in mapproj.denormalizeAxis: unknown axis direction %q", axis[i])
		}
	}
	return Point{X: out[0], Y: out[1]}, nil
}
