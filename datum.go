package mapproj

import "math"

type datumType int

const (
	datum3Param datumType = iota + 1
	datum7Param
	datumWGS84 // WGS84 or equivalent
	datumNone
)

const (
	secToRad = 4.84813681109535993589914102357e-6
	// Toms region 1 constant for the non-iterative geocentric to
	// geodetic conversion.
	adc     = 1.0026000
	cos67p5 = 0.38268343236508977
)

// A datum describes the relationship between an ellipsoid and WGS84 as
// a 3- or 7-parameter Helmert shift. Like the ellipsoid it is read-only
// once derived.
type datum struct {
	typ    datumType
	params []float64
	a, b   float64
	es     float64
	ep2    float64
}

func (p *Params) getDatum() *datum {
	d := &datum{typ: datumWGS84}
	if p.DatumCode == "" || p.DatumCode == "none" {
		d.typ = datumNone
	}
	if len(p.DatumParams) > 0 {
		d.params = make([]float64, len(p.DatumParams))
		copy(d.params, p.DatumParams)
		if d.params[0] != 0 || d.params[1] != 0 || d.params[2] != 0 {
			d.typ = datum3Param
		}
		if len(d.params) > 3 &&
			(d.params[3] != 0 || d.params[4] != 0 || d.params[5] != 0 || d.params[6] != 0) {
			d.typ = datum7Param
			d.params[3] *= secToRad
			d.params[4] *= secToRad
			d.params[5] *= secToRad
			d.params[6] = d.params[6]/1000000.0 + 1.0
		}
	}
	d.a = p.Ell.A
	d.b = p.Ell.B
	d.es = p.Ell.Es
	d.ep2 = p.Ell.Ep2
	return d
}

// equal reports whether two datums match closely enough that no shift
// is needed between them. The es tolerance keeps GRS80 and WGS84
// identical.
func (d *datum) equal(o *datum) bool {
	if d.typ != o.typ {
		return false
	}
	if d.a != o.a || math.Abs(d.es-o.es) > 0.000000000050 {
		return false
	}
	switch d.typ {
	case datum3Param:
		return d.params[0] == o.params[0] && d.params[1] == o.params[1] && d.params[2] == o.params[2]
	case datum7Param:
		for i := 0; i < 7; i++ {
			if d.params[i] != o.params[i] {
				return false
			}
		}
		return true
	}
	return true
}

// toGeocentric converts geodetic coordinates (radians, meters of
// height) to geocentric X, Y, Z in meters. Latitude slightly outside
// the valid range is snapped to the nearest pole; further out it is
// clamped the same way, which keeps the conversion total.
func (d *datum) toGeocentric(lon, lat, height float64) (x, y, z float64) {
	if lat < -halfPi {
		lat = -halfPi
	} else if lat > halfPi {
		lat = halfPi
	}
	if lon > math.Pi {
		lon -= 2 * math.Pi
	}
	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)
	sin2Lat := sinLat * sinLat
	rn := d.a / math.Sqrt(1.0-d.es*sin2Lat) // radius of curvature in prime vertical
	x = (rn + height) * cosLat * math.Cos(lon)
	y = (rn + height) * cosLat * math.Sin(lon)
	z = (rn*(1-d.es) + height) * sinLat
	return x, y, z
}

// fromGeocentric converts geocentric X, Y, Z back to geodetic
// longitude, latitude, and height by the Institut für Erdmessung
// iteration, capped at 30 rounds.
func (d *datum) fromGeocentric(x, y, z float64) (lon, lat, height float64) {
	const (
		genau   = 1e-12
		genau2  = genau * genau
		maxiter = 30
	)

	p := math.Sqrt(x*x + y*y)
	rr := math.Sqrt(x*x + y*y + z*z)

	if p/d.a < genau {
		// On the polar axis.
		lon = 0
		if rr/d.a < genau {
			// Center of the earth.
			return 0, halfPi, -d.b
		}
	} else {
		lon = math.Atan2(y, x)
	}

	ct := z / rr
	st := p / rr
	rx := 1.0 / math.Sqrt(1.0-d.es*(2.0-d.es)*st*st)
	cosPhi0 := st * (1.0 - d.es) * rx
	sinPhi0 := ct * rx

	for iter := 0; iter < maxiter; iter++ {
		rn := d.a / math.Sqrt(1.0-d.es*sinPhi0*sinPhi0)
		height = p*cosPhi0 + z*sinPhi0 - rn*(1.0-d.es*sinPhi0*sinPhi0)
		rk := d.es * rn / (rn + height)
		rx = 1.0 / math.Sqrt(1.0-rk*(2.0-rk)*st*st)
		cosPhi := st * (1.0 - rk) * rx
		sinPhi := ct * rx
		sdPhi := sinPhi*cosPhi0 - cosPhi*sinPhi0
		cosPhi0 = cosPhi
		sinPhi0 = sinPhi
		if sdPhi*sdPhi <= genau2 {
			break
		}
	}
	lat = math.Atan(sinPhi0 / math.Abs(cosPhi0))
	return lon, lat, height
}

// toWGS84 applies the Helmert shift from this datum to WGS84 in
// geocentric space.
func (d *datum) toWGS84(x, y, z float64) (float64, float64, float64) {
	switch d.typ {
	case datum3Param:
		return x + d.params[0], y + d.params[1], z + d.params[2]
	case datum7Param:
		dx, dy, dz := d.params[0], d.params[1], d.params[2]
		rx, ry, rz := d.params[3], d.params[4], d.params[5]
		m := d.params[6]
		xOut := m*(x-rz*y+ry*z) + dx
		yOut := m*(rz*x+y-rx*z) + dy
		zOut := m*(-ry*x+rx*y+z) + dz
		return xOut, yOut, zOut
	}
	return x, y, z
}

// fromWGS84 applies the inverse Helmert shift.
func (d *datum) fromWGS84(x, y, z float64) (float64, float64, float64) {
	switch d.typ {
	case datum3Param:
		return x - d.params[0], y - d.params[1], z - d.params[2]
	case datum7Param:
		dx, dy, dz := d.params[0], d.params[1], d.params[2]
		rx, ry, rz := d.params[3], d.params[4], d.params[5]
		m := d.params[6]
		xt := (x - dx) / m
		yt := (y - dy) / m
		zt := (z - dz) / m
		return xt + rz*yt - ry*zt, -rz*xt + yt + rx*zt, ry*xt - rx*yt + zt
	}
	return x, y, z
}

// datumShift moves a geodetic coordinate from the source datum to the
// destination datum, passing through geocentric WGS84 when the datums
// differ. It is total: every input produces a finite output.
func datumShift(source, dest *datum, lon, lat, z float64) (float64, float64, float64) {
	if source.equal(dest) {
		return lon, lat, z
	}
	// A shift can be skipped explicitly by configuring datum "none" on
	// either side.
	if source.typ == datumNone || dest.typ == datumNone {
		return lon, lat, z
	}
	needsShift := source.typ == datum3Param || source.typ == datum7Param ||
		dest.typ == datum3Param || dest.typ == datum7Param
	if source.es != dest.es || source.a != dest.a || needsShift {
		x, y, zz := source.toGeocentric(lon, lat, z)
		if source.typ == datum3Param || source.typ == datum7Param {
			x, y, zz = source.toWGS84(x, y, zz)
		}
		if dest.typ == datum3Param || dest.typ == datum7Param {
			x, y, zz = dest.fromWGS84(x, y, zz)
		}
		lon, lat, z = dest.fromGeocentric(x, y, zz)
	}
	return lon, lat, z
}

type datumDef struct {
	towgs84   []float64
	ellipse   string
	datumName string
}

var datumDefs = map[string]datumDef{
	"wgs84": {
		towgs84:   []float64{0., 0., 0.},
		ellipse:   "WGS84",
		datumName: "WGS84",
	},
	"ch1903": {
		towgs84:   []float64{674.374, 15.056, 405.346},
		ellipse:   "bessel",
		datumName: "swiss",
	},
	"ggrs87": {
		towgs84:   []float64{-199.87, 74.79, 246.62},
		ellipse:   "GRS80",
		datumName: "Greek_Geodetic_Reference_System_1987",
	},
	"nad83": {
		towgs84:   []float64{0., 0., 0.},
		ellipse:   "GRS80",
		datumName: "North_American_Datum_1983",
	},
	"potsdam": {
		towgs84:   []float64{606.0, 23.0, 413.0},
		ellipse:   "bessel",
		datumName: "Potsdam Rauenberg 1950 DHDN",
	},
	"carthage": {
		towgs84:   []float64{-263.0, 6.0, 431.0},
		ellipse:   "clrk80",
		datumName: "Carthage 1934 Tunisia",
	},
	"hermannskogel": {
		towgs84:   []float64{653.0, -212.0, 449.0},
		ellipse:   "bessel",
		datumName: "Hermannskogel",
	},
	"ire65": {
		towgs84:   []float64{482.530, -130.596, 564.557, -1.042, -0.214, -0.631, 8.15},
		ellipse:   "mod_airy",
		datumName: "Ireland 1965",
	},
	"nzgd49": {
		towgs84:   []float64{59.47, -5.04, 187.44, 0.47, -0.1, 1.024, -4.5993},
		ellipse:   "intl",
		datumName: "New Zealand Geodetic Datum 1949",
	},
	"osgb36": {
		towgs84:   []float64{446.448, -125.157, 542.060, 0.1502, 0.2470, 0.8421, -20.4894},
		ellipse:   "airy",
		datumName: "Airy 1830",
	},
	"s_jtsk": {
		towgs84:   []float64{589, 76, 480},
		ellipse:   "bessel",
		datumName: "S-JTSK (Ferro)",
	},
}
