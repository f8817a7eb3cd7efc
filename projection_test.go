package mapproj

import (
	"math"
	"testing"
)

// roundTripCases drive the forward/inverse consistency checks for every
// registered projection. Points are in degrees; tolerances in radians.
type roundTripCase struct {
	name string
	par  map[string]interface{}
	pts  [][2]float64
	tol  float64
}

var worldPoints = [][2]float64{
	{0, 0}, {10, 20}, {-75, 35}, {120, -30}, {45, 60}, {-120, -45},
	{170, 75}, {-60, -70},
}

var roundTripCases = []roundTripCase{
	{
		name: "longlat",
		par:  map[string]interface{}{"proj": "longlat"},
		pts:  worldPoints,
		tol:  1e-12,
	},
	{
		name: "merc sphere",
		par:  map[string]interface{}{"proj": "merc", "a": 6378137.0, "b": 6378137.0},
		pts:  [][2]float64{{0, 0}, {10, 40}, {-120, -70}, {179, 80}, {-45, 15}},
		tol:  1e-9,
	},
	{
		name: "merc ellipsoidal with lat_ts",
		par:  map[string]interface{}{"proj": "merc", "ellps": "WGS84", "lat_ts": 45.0},
		pts:  [][2]float64{{0, 0}, {10, 40}, {-120, -70}, {179, 80}, {-45, 15}},
		tol:  1e-9,
	},
	{
		name: "tmerc",
		par: map[string]interface{}{
			"proj": "tmerc", "ellps": "WGS84", "lon_0": -75.0,
			"k_0": 0.9996, "x_0": 500000.0,
		},
		pts: [][2]float64{{-75, 0}, {-78, 40}, {-72, -35}, {-80, 65}, {-70.5, 12}},
		tol: 1e-8,
	},
	{
		name: "utm zone 18",
		par:  map[string]interface{}{"proj": "utm", "ellps": "WGS84", "zone": 18.0},
		pts:  [][2]float64{{-75, 0}, {-78, 40}, {-72, -35}, {-76, 65}},
		tol:  1e-8,
	},
	{
		name: "lcc",
		par: map[string]interface{}{
			"proj": "lcc", "ellps": "GRS80", "lat_1": 33.0, "lat_2": 45.0,
			"lat_0": 39.0, "lon_0": -96.0,
		},
		pts: [][2]float64{{-96, 39}, {-120, 30}, {-70, 48}, {-96, 20}, {-85, 55}},
		tol: 1e-9,
	},
	{
		name: "aea",
		par: map[string]interface{}{
			"proj": "aea", "ellps": "GRS80", "lat_1": 29.5, "lat_2": 45.5,
			"lat_0": 23.0, "lon_0": -96.0,
		},
		pts: [][2]float64{{-96, 23}, {-120, 30}, {-70, 48}, {-96, 20}, {-85, 55}},
		tol: 1e-9,
	},
	{
		name: "eqdc",
		par: map[string]interface{}{
			"proj": "eqdc", "ellps": "GRS80", "lat_1": 29.5, "lat_2": 45.5,
			"lat_0": 37.5, "lon_0": -96.0,
		},
		pts: [][2]float64{{-96, 37.5}, {-120, 30}, {-70, 48}, {-96, 20}},
		tol: 1e-8,
	},
	{
		name: "stere polar",
		par: map[string]interface{}{
			"proj": "stere", "ellps": "WGS84", "lat_0": 90.0, "lat_ts": 70.0,
			"lon_0": -45.0,
		},
		pts: [][2]float64{{-45, 89}, {0, 75}, {120, 62}, {-170, 80}},
		tol: 1e-8,
	},
	{
		name: "stere oblique sphere",
		par: map[string]interface{}{
			"proj": "stere", "a": 6370997.0, "b": 6370997.0,
			"lat_0": 45.0, "lon_0": 10.0,
		},
		pts: [][2]float64{{10, 45}, {0, 30}, {40, 60}, {-20, 55}},
		tol: 1e-9,
	},
	{
		name: "sterea RD New",
		par: map[string]interface{}{
			"proj": "sterea", "ellps": "bessel",
			"lat_0": 52.15616055555555, "lon_0": 5.38763888888889,
			"k_0": 0.9999079, "x_0": 155000.0, "y_0": 463000.0,
		},
		pts: [][2]float64{{5.38763888888889, 52.15616055555555}, {4.9, 52.37}, {6.57, 53.22}, {3.6, 51.35}},
		tol: 1e-9,
	},
	{
		name: "laea europe",
		par: map[string]interface{}{
			"proj": "laea", "ellps": "GRS80", "lat_0": 52.0, "lon_0": 10.0,
			"x_0": 4321000.0, "y_0": 3210000.0,
		},
		pts: [][2]float64{{10, 52}, {-8, 38}, {30, 62}, {18, 43}},
		tol: 1e-8,
	},
	{
		name: "laea sphere",
		par: map[string]interface{}{
			"proj": "laea", "a": 6370997.0, "b": 6370997.0,
			"lat_0": -30.0, "lon_0": 140.0,
		},
		pts: [][2]float64{{140, -30}, {115, -20}, {155, -45}, {130, -10}},
		tol: 1e-9,
	},
	{
		name: "aeqd",
		par: map[string]interface{}{
			"proj": "aeqd", "a": 6370997.0, "b": 6370997.0,
			"lat_0": 40.0, "lon_0": -100.0,
		},
		pts: [][2]float64{{-100, 40}, {-60, 20}, {-140, 60}, {-100, -20}},
		tol: 1e-9,
	},
	{
		name: "gnom",
		par: map[string]interface{}{
			"proj": "gnom", "a": 6370997.0, "b": 6370997.0,
			"lat_0": 40.0, "lon_0": -100.0,
		},
		pts: [][2]float64{{-100, 40}, {-80, 30}, {-120, 55}, {-95, 10}},
		tol: 1e-9,
	},
	{
		name: "ortho",
		par: map[string]interface{}{
			"proj": "ortho", "a": 6370997.0, "b": 6370997.0,
			"lat_0": 40.0, "lon_0": -100.0,
		},
		pts: [][2]float64{{-100, 40}, {-80, 30}, {-120, 55}, {-95, 10}},
		tol: 1e-9,
	},
	{
		name: "sinu",
		par:  map[string]interface{}{"proj": "sinu", "ellps": "WGS84"},
		pts:  worldPoints,
		tol:  1e-8,
	},
	{
		name: "eqc",
		par:  map[string]interface{}{"proj": "eqc", "a": 6370997.0, "b": 6370997.0, "lat_ts": 30.0},
		pts:  worldPoints,
		tol:  1e-12,
	},
	{
		name: "mill",
		par:  map[string]interface{}{"proj": "mill", "a": 6370997.0, "b": 6370997.0},
		pts:  worldPoints,
		tol:  1e-9,
	},
	{
		name: "vandg",
		par:  map[string]interface{}{"proj": "vandg", "a": 6370997.0, "b": 6370997.0},
		pts:  [][2]float64{{10, 20}, {-75, 35}, {120, -30}, {45, 60}, {-120, -45}},
		tol:  1e-6,
	},
	{
		name: "poly sphere",
		par: map[string]interface{}{
			"proj": "poly", "a": 6370997.0, "b": 6370997.0,
			"lat_0": 40.0, "lon_0": -96.0,
		},
		pts: [][2]float64{{-96, 40}, {-110, 30}, {-80, 50}, {-96, 15}},
		tol: 1e-7,
	},
	{
		name: "poly ellipsoidal",
		par: map[string]interface{}{
			"proj": "poly", "ellps": "clrk66", "lat_0": 30.0, "lon_0": -96.0,
		},
		pts: [][2]float64{{-96, 30}, {-110, 25}, {-85, 45}, {-96, 15}},
		tol: 1e-7,
	},
	{
		name: "robin",
		par:  map[string]interface{}{"proj": "robin", "a": 6370997.0, "b": 6370997.0},
		pts:  worldPoints,
		tol:  1e-9,
	},
	{
		name: "moll",
		par:  map[string]interface{}{"proj": "moll", "a": 6370997.0, "b": 6370997.0},
		pts:  worldPoints,
		tol:  1e-7,
	},
	{
		name: "hammer",
		par:  map[string]interface{}{"proj": "hammer", "a": 6370997.0, "b": 6370997.0},
		pts:  worldPoints,
		tol:  1e-9,
	},
	{
		name: "aitoff",
		par:  map[string]interface{}{"proj": "aitoff", "a": 6370997.0, "b": 6370997.0},
		pts:  [][2]float64{{0, 0}, {10, 20}, {-75, 35}, {100, -30}, {45, 60}, {-120, -45}},
		tol:  1e-6,
	},
	{
		name: "wintri",
		par:  map[string]interface{}{"proj": "wintri", "a": 6370997.0, "b": 6370997.0},
		pts:  [][2]float64{{0, 0}, {10, 20}, {-75, 35}, {100, -30}, {45, 60}, {-120, -45}},
		tol:  1e-6,
	},
	{
		name: "cass sphere",
		par: map[string]interface{}{
			"proj": "cass", "a": 6370997.0, "b": 6370997.0,
			"lat_0": 52.0, "lon_0": 5.0,
		},
		pts: [][2]float64{{5, 52}, {2, 48}, {8, 55}, {5, 30}},
		tol: 1e-9,
	},
	{
		name: "cass ellipsoidal",
		par: map[string]interface{}{
			"proj": "cass", "ellps": "airy", "lat_0": 49.0, "lon_0": -2.0,
		},
		pts: [][2]float64{{-2, 49}, {-4, 51}, {0.5, 52.5}, {-2, 55}},
		tol: 1e-7,
	},
	{
		name: "somerc CH1903",
		par: map[string]interface{}{
			"proj": "somerc", "ellps": "bessel",
			"lat_0": 46.95240555555556, "lon_0": 7.439583333333333,
			"k_0": 1.0, "x_0": 600000.0, "y_0": 200000.0,
		},
		pts: [][2]float64{{7.439583333333333, 46.95240555555556}, {6.1, 46.2}, {9.8, 46.5}, {8.5, 47.4}},
		tol: 1e-7,
	},
	{
		name: "omerc",
		par: map[string]interface{}{
			"proj": "omerc", "ellps": "GRS80", "lat_0": 57.0,
			"lonc": -133.666, "alpha": 323.13, "k_0": 0.9999,
		},
		pts: [][2]float64{{-133.666, 57}, {-135, 58}, {-131, 55.5}, {-134.5, 56.2}},
		tol: 1e-8,
	},
	{
		name: "krovak",
		par:  map[string]interface{}{"proj": "krovak", "ellps": "bessel", "czech": true},
		pts:  [][2]float64{{15, 50}, {17, 49.5}, {13.5, 50.5}, {18.5, 49}},
		tol:  1e-7,
	},
	{
		name: "nzmg",
		par:  map[string]interface{}{"proj": "nzmg", "ellps": "intl"},
		pts:  [][2]float64{{173, -41}, {175.5, -36.9}, {168.7, -45.0}, {176.9, -39.5}},
		tol:  1e-8,
	},
}

func TestRoundTrip(t *testing.T) {
	for _, c := range roundTripCases {
		t.Run(c.name, func(t *testing.T) {
			par, err := ParamsFromMap(c.par)
			if err != nil {
				t.Fatal(err)
			}
			tr, err := NewTransform(par)
			if err != nil {
				t.Fatal(err)
			}
			for _, pt := range c.pts {
				lon := pt[0] * deg2rad
				lat := pt[1] * deg2rad
				xy := tr.ForwardPoint(Point{X: lon, Y: lat})
				ll := tr.InversePoint(xy)
				dlon := math.Abs(adjust_lon(ll.X - lon))
				dlat := math.Abs(ll.Y - lat)
				if dlon > c.tol || dlat > c.tol {
					t.Errorf("(%g, %g): round trip error (%g, %g) exceeds %g",
						pt[0], pt[1], dlon, dlat, c.tol)
				}
			}
		})
	}
}

// TestNoNonFinite checks the documented safety contract: whatever the
// input, a projection never emits NaN or Inf.
func TestNoNonFinite(t *testing.T) {
	degenerate := [][2]float64{
		{0, 90}, {0, -90}, {180, 0}, {-180, -45}, {0, 0},
		{179.99999, 89.99999}, {-179.99999, -89.99999}, {90, 90},
	}
	for _, c := range roundTripCases {
		t.Run(c.name, func(t *testing.T) {
			par, err := ParamsFromMap(c.par)
			if err != nil {
				t.Fatal(err)
			}
			tr, err := NewTransform(par)
			if err != nil {
				t.Fatal(err)
			}
			check := func(stage string, in [2]float64, p Point) {
				if math.IsNaN(p.X) || math.IsInf(p.X, 0) ||
					math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
					t.Errorf("%s of (%g, %g) is not finite: (%g, %g)",
						stage, in[0], in[1], p.X, p.Y)
				}
			}
			for _, pt := range degenerate {
				xy := tr.ForwardPoint(Point{X: pt[0] * deg2rad, Y: pt[1] * deg2rad})
				check("forward", pt, xy)
				ll := tr.InversePoint(xy)
				check("inverse of forward", pt, ll)
			}
			// Inverse of the projection center.
			x0, y0 := 0.0, 0.0
			if !math.IsNaN(tr.Params().X0) {
				x0 = tr.Params().X0
			}
			if !math.IsNaN(tr.Params().Y0) {
				y0 = tr.Params().Y0
			}
			check("inverse of origin", [2]float64{x0, y0}, tr.InversePoint(Point{X: x0, Y: y0}))
		})
	}
}

// TestAitoffKnownValues exercises the closed forward formulas at points
// where the projection has exact values.
func TestAitoffKnownValues(t *testing.T) {
	par, err := ParamsFromMap(map[string]interface{}{
		"proj": "aitoff", "a": 1.0, "b": 1.0,
	})
	if err != nil {
		t.Fatal(err)
	}
	tr, err := NewTransform(par)
	if err != nil {
		t.Fatal(err)
	}
	origin := tr.ForwardPoint(Point{X: 0, Y: 0})
	if origin.X != 0 || origin.Y != 0 {
		t.Errorf("origin maps to (%g, %g), want (0, 0)", origin.X, origin.Y)
	}
	// On the equator at λ=90°: c=45°, d=45°, x collapses to d·√2/(√2/2)...
	eq := tr.ForwardPoint(Point{X: halfPi, Y: 0})
	if math.Abs(eq.X-halfPi) > 1e-12 || math.Abs(eq.Y) > 1e-12 {
		t.Errorf("equator point maps to (%g, %g), want (%g, 0)", eq.X, eq.Y, halfPi)
	}
}

// TestMercKnownValues pins the spherical Mercator forward mapping to
// its standard published values.
func TestMercKnownValues(t *testing.T) {
	par, err := ParamsFromMap(map[string]interface{}{
		"proj": "merc", "a": 6378137.0, "b": 6378137.0,
	})
	if err != nil {
		t.Fatal(err)
	}
	tr, err := NewTransform(par)
	if err != nil {
		t.Fatal(err)
	}
	got := tr.ForwardPoint(Point{X: 10 * deg2rad, Y: 40 * deg2rad})
	wantX := 1113194.9079327357
	wantY := 4865942.2795031741
	if math.Abs(got.X-wantX) > 1e-6 || math.Abs(got.Y-wantY) > 1e-6 {
		t.Errorf("forward(10, 40) = (%v, %v), want (%v, %v)", got.X, got.Y, wantX, wantY)
	}
}

// TestUTMCentralMeridian checks that points on a UTM zone's central
// meridian land exactly on the false easting.
func TestUTMCentralMeridian(t *testing.T) {
	par, err := ParamsFromMap(map[string]interface{}{
		"proj": "utm", "ellps": "WGS84", "zone": 18.0,
	})
	if err != nil {
		t.Fatal(err)
	}
	tr, err := NewTransform(par)
	if err != nil {
		t.Fatal(err)
	}
	for _, lat := range []float64{0, 20, 40.5, 70, -33} {
		got := tr.ForwardPoint(Point{X: -75 * deg2rad, Y: lat * deg2rad})
		if math.Abs(got.X-500000) > 1e-6 {
			t.Errorf("easting at lat %g = %v, want 500000", lat, got.X)
		}
		if (lat > 0 && got.Y <= 0) || (lat < 0 && got.Y >= 0) {
			t.Errorf("northing at lat %g = %v has the wrong sign", lat, got.Y)
		}
	}
}

// TestPolyEquator checks the polyconic equator limit: the cotangent
// terms of the inverse iteration are singular at latitude zero, so any
// equator point, not just the one on the central meridian, must take
// the closed limiting form.
func TestPolyEquator(t *testing.T) {
	cases := []map[string]interface{}{
		{"proj": "poly", "a": 6370997.0, "b": 6370997.0, "lat_0": 40.0, "lon_0": -96.0},
		{"proj": "poly", "ellps": "clrk66", "lat_0": 30.0, "lon_0": -96.0},
	}
	for _, m := range cases {
		par, err := ParamsFromMap(m)
		if err != nil {
			t.Fatal(err)
		}
		tr, err := NewTransform(par)
		if err != nil {
			t.Fatal(err)
		}
		for _, lonDeg := range []float64{-96, -40, 60, 180} {
			lon := lonDeg * deg2rad
			xy := tr.ForwardPoint(Point{X: lon, Y: 0})
			ll := tr.InversePoint(xy)
			if math.IsNaN(ll.X) || math.IsNaN(ll.Y) {
				t.Fatalf("lon %g: inverse gave (%v, %v)", lonDeg, ll.X, ll.Y)
			}
			if ll.Y != 0 {
				t.Errorf("lon %g: latitude = %v, want exactly 0", lonDeg, ll.Y)
			}
			if math.Abs(adjust_lon(ll.X-lon)) > 1e-9 {
				t.Errorf("lon %g: longitude came back as %v", lonDeg, ll.X*r2d)
			}
		}
	}
}

// TestKrovakPoles checks the pole clamp: tan(lat/2+45°) dips a hair
// below zero at the exact south pole, which Pow cannot raise to a
// fractional power.
func TestKrovakPoles(t *testing.T) {
	par, err := ParamsFromMap(map[string]interface{}{"proj": "krovak", "ellps": "bessel", "czech": true})
	if err != nil {
		t.Fatal(err)
	}
	tr, err := NewTransform(par)
	if err != nil {
		t.Fatal(err)
	}
	for _, latDeg := range []float64{90, -90} {
		xy := tr.ForwardPoint(Point{X: 0, Y: latDeg * deg2rad})
		if math.IsNaN(xy.X) || math.IsInf(xy.X, 0) || math.IsNaN(xy.Y) || math.IsInf(xy.Y, 0) {
			t.Errorf("forward of lat %g = (%v, %v), want finite", latDeg, xy.X, xy.Y)
			continue
		}
		ll := tr.InversePoint(xy)
		if math.IsNaN(ll.X) || math.IsNaN(ll.Y) {
			t.Errorf("inverse of forward of lat %g = (%v, %v), want finite", latDeg, ll.X, ll.Y)
		}
	}
	// The cone apex maps back to the projection origin.
	apex := tr.InversePoint(Point{X: 0, Y: 0})
	if math.IsNaN(apex.X) || math.IsNaN(apex.Y) {
		t.Errorf("inverse of the apex = (%v, %v), want finite", apex.X, apex.Y)
	}
}

// TestNZMGOutOfRegion feeds points far outside the fitted series
// range; the inverse seed must be clamped so the polynomial back
// substitution cannot overflow, and the recovered latitude must stay
// in domain.
func TestNZMGOutOfRegion(t *testing.T) {
	par, err := ParamsFromMap(map[string]interface{}{"proj": "nzmg", "ellps": "intl"})
	if err != nil {
		t.Fatal(err)
	}
	tr, err := NewTransform(par)
	if err != nil {
		t.Fatal(err)
	}
	pts := [][2]float64{{0, 0}, {0, 90}, {0, -90}, {-7, 52}, {180, 0}}
	for _, pt := range pts {
		xy := tr.ForwardPoint(Point{X: pt[0] * deg2rad, Y: pt[1] * deg2rad})
		if math.IsNaN(xy.X) || math.IsInf(xy.X, 0) || math.IsNaN(xy.Y) || math.IsInf(xy.Y, 0) {
			t.Errorf("forward of (%g, %g) = (%v, %v), want finite", pt[0], pt[1], xy.X, xy.Y)
			continue
		}
		ll := tr.InversePoint(xy)
		if math.IsNaN(ll.X) || math.IsInf(ll.X, 0) || math.IsNaN(ll.Y) || math.IsInf(ll.Y, 0) {
			t.Errorf("inverse of forward of (%g, %g) = (%v, %v), want finite", pt[0], pt[1], ll.X, ll.Y)
			continue
		}
		if math.Abs(ll.Y) > halfPi {
			t.Errorf("inverse of forward of (%g, %g): latitude %v is out of domain", pt[0], pt[1], ll.Y)
		}
	}
}

func TestSetupRejectsBadConfig(t *testing.T) {
	cases := []map[string]interface{}{
		{"proj": "nosuchprojection"},
		{"proj": "utm", "ellps": "WGS84", "zone": 0.0},
		{"proj": "utm", "ellps": "WGS84", "zone": 61.0},
		{"proj": "omerc", "ellps": "GRS80", "lat_0": 57.0, "lonc": -133.666},
		{"proj": "eqdc", "ellps": "GRS80"},
		{"proj": "lcc", "ellps": "GRS80", "lat_1": 30.0, "lat_2": -30.0,
			"lat_0": 0.0, "lon_0": 0.0},
	}
	for _, m := range cases {
		par, err := ParamsFromMap(m)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := NewTransform(par); err == nil {
			t.Errorf("NewTransform(%v) succeeded, want error", m)
		}
	}
}
