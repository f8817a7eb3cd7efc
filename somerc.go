package mapproj

import "math"

const somercMaxIter = 20

// SOMerc is the Swiss Oblique Mercator projection, the double
// projection through a conformal sphere used by the Swiss grids. The
// inverse recovers latitude with a bounded fixed point iteration and
// keeps the last estimate if it fails to settle.
func SOMerc(p *Params) (forward, inverse pointFunc, err error) {
	if math.IsNaN(p.Lat0) {
		p.Lat0 = 0
	}
	if math.IsNaN(p.Long0) {
		p.Long0 = 0
	}
	if math.IsNaN(p.K0) {
		p.K0 = 1
	}
	if math.IsNaN(p.X0) {
		p.X0 = 0
	}
	if math.IsNaN(p.Y0) {
		p.Y0 = 0
	}
	if err = checkLat("lat_0", p.Lat0); err != nil {
		return nil, nil, err
	}
	ell := p.Ell

	e2 := ell.Es
	e := ell.E
	sinPhy0 := math.Sin(p.Lat0)
	cosPhy0 := math.Cos(p.Lat0)
	r := p.K0 * ell.A * math.Sqrt(1-e2) / (1 - e2*sinPhy0*sinPhy0)
	alpha := math.Sqrt(1 + e2/(1-e2)*cosPhy0*cosPhy0*cosPhy0*cosPhy0)
	b0 := math.Asin(sinPhy0 / alpha)
	k1 := math.Log(math.Tan(fortPi + b0/2))
	k2 := math.Log(math.Tan(fortPi + p.Lat0/2))
	k3 := math.Log((1 + e*sinPhy0) / (1 - e*sinPhy0))
	kc := k1 - alpha*k2 + alpha*e/2*k3
	sinB0 := math.Sin(b0)
	cosB0 := math.Cos(b0)

	forward = func(lon, lat float64) (x, y float64) {
		if math.Abs(lat) >= halfPi-epsln {
			lat = sign(lat) * (halfPi - epsln)
		}
		sa1 := math.Log(math.Tan(fortPi - lat/2))
		sa2 := e / 2 * math.Log((1+e*math.Sin(lat))/(1-e*math.Sin(lat)))
		s := -alpha*(sa1+sa2) + kc
		b := 2 * (math.Atan(math.Exp(s)) - fortPi)
		i := alpha * adjust_lon(lon-p.Long0)
		rotI := math.Atan(math.Sin(i) / (sinB0*math.Tan(b) + cosB0*math.Cos(i)))
		rotB := asinz(cosB0*math.Sin(b) - sinB0*math.Cos(b)*math.Cos(i))
		y = p.Y0 + r/2*math.Log((1+math.Sin(rotB))/(1-math.Sin(rotB)))
		x = p.X0 + r*rotI
		return x, y
	}

	inverse = func(x, y float64) (lon, lat float64) {
		rotI := (x - p.X0) / r
		rotB := 2 * (math.Atan(math.Exp((y-p.Y0)/r)) - fortPi)
		b := asinz(cosB0*math.Sin(rotB) + sinB0*math.Cos(rotB)*math.Cos(rotI))
		i := math.Atan(math.Sin(rotI) / (cosB0*math.Cos(rotI) - sinB0*math.Tan(rotB)))
		lon = adjust_lon(p.Long0 + i/alpha)
		phi := b
		prev := phi + 1
		for iter := 0; iter < somercMaxIter && math.Abs(phi-prev) > 1e-10; iter++ {
			s := 1/alpha*(math.Log(math.Tan(fortPi+b/2))-kc) +
				e*math.Log(math.Tan(fortPi+math.Asin(e*math.Sin(phi))/2))
			prev = phi
			phi = 2*math.Atan(math.Exp(s)) - halfPi
		}
		lat = phi
		return lon, lat
	}
	return forward, inverse, nil
}

func init() {
	registerTrans(SOMerc, "Swiss_Oblique_Mercator", "somerc", "Hotine_Oblique_Mercator_Swiss")
}
