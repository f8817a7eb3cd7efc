package mapproj

import "math"

// gaussConst holds the constants of the Gauss conformal sphere used by
// the oblique stereographic projection.
type gaussConst struct {
	c, k, ratexp float64
	phic0, rc    float64
	e            float64
}

func newGauss(p *Params) gaussConst {
	var g gaussConst
	ell := p.Ell
	sphi := math.Sin(p.Lat0)
	cphi := math.Cos(p.Lat0)
	cphi *= cphi
	g.e = ell.E
	g.rc = math.Sqrt(1-ell.Es) / (1 - ell.Es*sphi*sphi)
	g.c = math.Sqrt(1 + ell.Es*cphi*cphi/(1-ell.Es))
	g.phic0 = math.Asin(sphi / g.c)
	g.ratexp = 0.5 * g.c * g.e
	g.k = math.Tan(0.5*g.phic0+fortPi) /
		(math.Pow(math.Tan(0.5*p.Lat0+fortPi), g.c) * srat(g.e*sphi, g.ratexp))
	return g
}

// forward maps a geodetic longitude/latitude pair onto the Gauss
// sphere.
func (g gaussConst) forward(lam, phi float64) (float64, float64) {
	phi = 2*math.Atan(g.k*math.Pow(math.Tan(0.5*phi+fortPi), g.c)*srat(g.e*math.Sin(phi), g.ratexp)) - halfPi
	return g.c * lam, phi
}

// inverse maps a Gauss-sphere pair back to geodetic coordinates,
// iterating the latitude with a fixed cap and keeping the best estimate
// reached.
func (g gaussConst) inverse(lam, phi float64) (float64, float64) {
	lam /= g.c
	num := math.Pow(math.Tan(0.5*phi+fortPi)/g.k, 1/g.c)
	const maxIter = 20
	for i := 0; i < maxIter; i++ {
		next := 2*math.Atan(num*srat(g.e*math.Sin(phi), -0.5*g.e)) - halfPi
		if math.Abs(next-phi) < 1e-14 {
			phi = next
			break
		}
		phi = next
	}
	return lam, phi
}
