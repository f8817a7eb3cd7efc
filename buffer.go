package mapproj

import "fmt"

// Stride is the number of float64 values each point occupies in a Buffer.
const Stride = 2

// Point is a holder for one coordinate pair. In geographic space X is
// longitude (λ) and Y is latitude (φ), both in radians; in projected
// space X and Y are planar coordinates.
type Point struct {
	X, Y float64
}

// A Buffer is an ordered sequence of coordinate pairs stored as a flat
// float64 slice with Stride values per point. A Buffer is only a view;
// the caller owns the underlying slice. Two Buffers may share storage,
// which allows transforms to operate in place.
type Buffer struct {
	vals []float64
}

// NewBuffer allocates a Buffer holding n points.
func NewBuffer(n int) Buffer {
	return Buffer{vals: make([]float64, n*Stride)}
}

// WrapBuffer wraps an existing flat coordinate slice. The slice length
// must be a multiple of Stride.
func WrapBuffer(vals []float64) (Buffer, error) {
	if len(vals)%Stride != 0 {
		return Buffer{}, fmt.Errorf("in mapproj.WrapBuffer: slice length %d is not a multiple of %d", len(vals), Stride)
	}
	return Buffer{vals: vals}, nil
}

// Len returns the number of points in the buffer.
func (b Buffer) Len() int { return len(b.vals) / Stride }

// At returns point i.
func (b Buffer) At(i int) Point {
	return Point{X: b.vals[i*Stride], Y: b.vals[i*Stride+1]}
}

// Set stores p as point i.
func (b Buffer) Set(i int, p Point) {
	b.vals[i*Stride] = p.X
	b.vals[i*Stride+1] = p.Y
}

// Floats returns the underlying flat slice.
func (b Buffer) Floats() []float64 { return b.vals }

// checkRange validates the contract shared by all batch operations:
// the sub-range [start, start+n) must lie within both buffers.
func checkRange(src, dst Buffer, start, n int) error {
	if start < 0 || n < 0 {
		return fmt.Errorf("in mapproj: negative range (start=%d, numPoints=%d)", start, n)
	}
	if start+n > src.Len() {
		return fmt.Errorf("in mapproj: range [%d,%d) exceeds source buffer length %d", start, start+n, src.Len())
	}
	if start+n > dst.Len() {
		return fmt.Errorf("in mapproj: range [%d,%d) exceeds destination buffer length %d", start, start+n, dst.Len())
	}
	return nil
}
