package mapproj

import (
	"fmt"
	"strings"
)

// A pointFunc maps a single coordinate pair. Point functions are pure:
// the result depends only on the input pair and on constants captured
// at setup time, so distinct points may be mapped in any order or
// concurrently. Numeric singularities are absorbed internally following
// the owning projection's documented fallback policy; a point function
// never returns NaN or Inf for inputs in the geographic domain.
type pointFunc func(a, b float64) (float64, float64)

// A setupFunc validates the parameter subset one projection needs,
// precomputes its derived constants, and returns its forward
// (geographic to projected) and inverse (projected to geographic) point
// functions.
type setupFunc func(*Params) (forward, inverse pointFunc, err error)

var (
	projections     map[string]setupFunc
	projectionCodes map[int]string
)

func registerTrans(setup setupFunc, names ...string) {
	if projections == nil {
		projections = make(map[string]setupFunc)
	}
	for _, n := range names {
		projections[strings.ToLower(n)] = setup
	}
}

// registerCode maps a legacy USGS GCTP numeric projection code to a
// registered projection name.
func registerCode(code int, name string) {
	if projectionCodes == nil {
		projectionCodes = make(map[int]string)
	}
	projectionCodes[code] = name
}

// A Transform is one bidirectional projection mapping, configured by
// exactly one parameter set for its lifetime. After construction its
// state is read-only and a single instance may be shared across
// concurrent batch calls.
type Transform struct {
	params  *Params
	forward pointFunc
	inverse pointFunc
}

// NewTransform resolves the projection named by p.Name, validates p,
// and returns a ready Transform. Invalid parameter combinations are
// rejected here, never mid-batch.
func NewTransform(p *Params) (*Transform, error) {
	if p == nil {
		return nil, fmt.Errorf("in mapproj.NewTransform: nil parameters")
	}
	own := p.Copy()
	if err := own.deriveConstants(); err != nil {
		return nil, err
	}
	setup, ok := projections[strings.ToLower(own.Name)]
	if !ok {
		return nil, fmt.Errorf("in mapproj.NewTransform: no projection registered for %q", own.Name)
	}
	fwd, inv, err := setup(own)
	if err != nil {
		return nil, err
	}
	logger.WithField("projection", own.Name).Debug("mapproj: constructed transform")
	return &Transform{params: own, forward: fwd, inverse: inv}, nil
}

// NewTransformCode resolves a projection by its legacy numeric code.
// The code overrides p.Name.
func NewTransformCode(code int, p *Params) (*Transform, error) {
	name, ok := projectionCodes[code]
	if !ok {
		return nil, fmt.Errorf("in mapproj.NewTransformCode: no projection registered for code %d", code)
	}
	if p == nil {
		return nil, fmt.Errorf("in mapproj.NewTransformCode: nil parameters")
	}
	own := p.Copy()
	own.Name = name
	own.Code = code
	return NewTransform(own)
}

// Params returns the transform's validated parameter set. The returned
// value must be treated as read-only.
func (t *Transform) Params() *Params { return t.params }

// Forward maps the geographic points in geo[start:start+n] to projected
// points in xy at the same indices. The two buffers may share storage.
// The only possible error is a violated range contract, reported before
// any point is written.
func (t *Transform) Forward(geo, xy Buffer, start, n int) error {
	if err := checkRange(geo, xy, start, n); err != nil {
		return fmt.Errorf("in mapproj.Transform.Forward: %v", err)
	}
	for i := start; i < start+n; i++ {
		p := geo.At(i)
		x, y := t.forward(p.X, p.Y)
		xy.Set(i, Point{X: x, Y: y})
	}
	return nil
}

// Inverse maps the projected points in xy[start:start+n] back to
// geographic points in geo at the same indices, under the same contract
// as Forward.
func (t *Transform) Inverse(xy, geo Buffer, start, n int) error {
	if err := checkRange(xy, geo, start, n); err != nil {
		return fmt.Errorf("in mapproj.Transform.Inverse: %v", err)
	}
	for i := start; i < start+n; i++ {
		p := xy.At(i)
		lam, phi := t.inverse(p.X, p.Y)
		geo.Set(i, Point{X: lam, Y: phi})
	}
	return nil
}

// ForwardPoint maps a single geographic point.
func (t *Transform) ForwardPoint(p Point) Point {
	x, y := t.forward(p.X, p.Y)
	return Point{X: x, Y: y}
}

// InversePoint maps a single projected point.
func (t *Transform) InversePoint(p Point) Point {
	lam, phi := t.inverse(p.X, p.Y)
	return Point{X: lam, Y: phi}
}
