package mapproj

import (
	"fmt"
	"math"
)

const (
	// ellipsoid pj_set_ell.c
	sixth = 0.1666666666666666667
	/* 1/6 */
	ra4 = 0.04722222222222222222
	/* 17/360 */
	ra6 = 0.02215608465608465608
)

// An Ellipsoid is an immutable geodetic shape description. It is shared
// read-only by every transform configured with it.
type Ellipsoid struct {
	Name   string
	A      float64 // semi-major axis, meters
	B      float64 // semi-minor axis, meters
	Rf     float64 // inverse flattening; 0 for a sphere
	Es     float64 // first eccentricity squared
	E      float64 // first eccentricity
	Ep2    float64 // second eccentricity squared
	Sphere bool
}

// NewEllipsoid constructs an ellipsoid from semi-major and semi-minor
// axes, deriving eccentricity. b == a yields a sphere.
func NewEllipsoid(a, b float64) (Ellipsoid, error) {
	var ell Ellipsoid
	ell.A = a
	ell.B = b
	return ell, ell.derive()
}

// NewEllipsoidRf constructs an ellipsoid from a semi-major axis and an
// inverse flattening. rf == 0 yields a sphere.
func NewEllipsoidRf(a, rf float64) (Ellipsoid, error) {
	var ell Ellipsoid
	ell.A = a
	ell.Rf = rf
	if rf != 0 {
		ell.B = (1.0 - 1.0/rf) * a
	}
	return ell, ell.derive()
}

func (ell *Ellipsoid) derive() error {
	if !(ell.A > 0) {
		return fmt.Errorf("in mapproj.Ellipsoid: semi-major axis must be positive (a=%g)", ell.A)
	}
	if ell.B == 0 || math.Abs(ell.A-ell.B) < epsln {
		ell.Sphere = true
		ell.B = ell.A
	}
	if ell.B > ell.A || ell.B <= 0 {
		return fmt.Errorf("in mapproj.Ellipsoid: semi-minor axis out of domain (a=%g, b=%g)", ell.A, ell.B)
	}
	a2 := ell.A * ell.A
	b2 := ell.B * ell.B
	ell.Es = (a2 - b2) / a2
	ell.E = math.Sqrt(ell.Es)
	ell.Ep2 = (a2 - b2) / b2
	if ell.Es < 0 || ell.Es >= 1 {
		return fmt.Errorf("in mapproj.Ellipsoid: eccentricity squared out of domain (es=%g)", ell.Es)
	}
	return nil
}

// toAuthalicSphere replaces the ellipsoid with a sphere of the same
// surface area, for parameter sets that request spherical formulas.
func (ell *Ellipsoid) toAuthalicSphere() {
	ell.A *= 1 - ell.Es*(sixth+ell.Es*(ra4+ell.Es*ra6))
	ell.B = ell.A
	ell.Es = 0
	ell.E = 0
	ell.Ep2 = 0
	ell.Sphere = true
}

type ellipsoidDef struct {
	a, b, rf    float64
	ellipseName string
}

var ellipsoidDefs = map[string]ellipsoidDef{
	"MERIT": {
		a:           6378137.0,
		rf:          298.257,
		ellipseName: "MERIT 1983",
	},
	"SGS85": {
		a:           6378136.0,
		rf:          298.257,
		ellipseName: "Soviet Geodetic System 85",
	},
	"GRS80": {
		a:           6378137.0,
		rf:          298.257222101,
		ellipseName: "GRS 1980(IUGG, 1980)",
	},
	"IAU76": {
		a:           6378140.0,
		rf:          298.257,
		ellipseName: "IAU 1976",
	},
	"airy": {
		a:           6377563.396,
		b:           6356256.910,
		ellipseName: "Airy 1830",
	},
	"mod_airy": {
		a:           6377340.189,
		b:           6356034.446,
		ellipseName: "Modified Airy",
	},
	"aust_SA": {
		a:           6378160.0,
		rf:          298.25,
		ellipseName: "Australian Natl & S. Amer. 1969",
	},
	"GRS67": {
		a:           6378160.0,
		rf:          298.2471674270,
		ellipseName: "GRS 67(IUGG 1967)",
	},
	"bessel": {
		a:           6377397.155,
		rf:          299.1528128,
		ellipseName: "Bessel 1841",
	},
	"bess_nam": {
		a:           6377483.865,
		rf:          299.1528128,
		ellipseName: "Bessel 1841 (Namibia)",
	},
	"clrk66": {
		a:           6378206.4,
		b:           6356583.8,
		ellipseName: "Clarke 1866",
	},
	"clrk80": {
		a:           6378249.145,
		rf:          293.4663,
		ellipseName: "Clarke 1880 mod.",
	},
	"helmert": {
		a:           6378200.0,
		rf:          298.3,
		ellipseName: "Helmert 1906",
	},
	"hough": {
		a:           6378270.0,
		rf:          297.0,
		ellipseName: "Hough",
	},
	"intl": {
		a:           6378388.0,
		rf:          297.0,
		ellipseName: "International 1909 (Hayford)",
	},
	"krass": {
		a:           6378245.0,
		rf:          298.3,
		ellipseName: "Krassovsky, 1942",
	},
	"evrst30": {
		a:           6377276.345,
		rf:          300.8017,
		ellipseName: "Everest 1830",
	},
	"WGS60": {
		a:           6378165.0,
		rf:          298.3,
		ellipseName: "WGS 60",
	},
	"WGS66": {
		a:           6378145.0,
		rf:          298.25,
		ellipseName: "WGS 66",
	},
	"WGS72": {
		a:           6378135.0,
		rf:          298.26,
		ellipseName: "WGS 72",
	},
	"WGS84": {
		a:           6378137.0,
		rf:          298.257223563,
		ellipseName: "WGS 84",
	},
	"sphere": {
		a:           6370997.0,
		b:           6370997.0,
		ellipseName: "Normal Sphere (r=6370997)",
	},
}

// EllipsoidByName returns one of the standard named ellipsoids.
func EllipsoidByName(name string) (Ellipsoid, error) {
	def, ok := ellipsoidDefs[name]
	if !ok {
		return Ellipsoid{}, fmt.Errorf("in mapproj.EllipsoidByName: unknown ellipsoid %q", name)
	}
	var ell Ellipsoid
	var err error
	if def.b != 0 {
		ell, err = NewEllipsoid(def.a, def.b)
	} else {
		ell, err = NewEllipsoidRf(def.a, def.rf)
	}
	if err != nil {
		return Ellipsoid{}, err
	}
	ell.Name = def.ellipseName
	return ell, nil
}
