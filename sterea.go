package mapproj

import "math"

// Sterea is the oblique stereographic projection on the Gauss conformal
// sphere (the form used by the Dutch RD grid, among others). The point
// antipodal to the center maps to the false origin.
func Sterea(p *Params) (forward, inverse pointFunc, err error) {
	if math.IsNaN(p.Lat0) {
		p.Lat0 = 0
	}
	if math.IsNaN(p.Long0) {
		p.Long0 = 0
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
	if p.K0 <= 0 {
		return nil, nil, errSetup("Sterea", "scale k_0 must be positive (k_0=%g)", p.K0)
	}
	ell := p.Ell
	g := newGauss(p)
	sinc0 := math.Sin(g.phic0)
	cosc0 := math.Cos(g.phic0)
	r2 := 2 * g.rc

	forward = func(lon, lat float64) (x, y float64) {
		lam := adjust_lon(lon - p.Long0)
		lam, phi := g.forward(lam, lat)
		sinc := math.Sin(phi)
		cosc := math.Cos(phi)
		cosl := math.Cos(lam)
		den := 1 + sinc0*sinc + cosc0*cosc*cosl
		if math.Abs(den) <= epsln {
			return p.X0, p.Y0
		}
		k := p.K0 * r2 / den
		x = k * cosc * math.Sin(lam)
		y = k * (cosc0*sinc - sinc0*cosc*cosl)
		return ell.A*x + p.X0, ell.A*y + p.Y0
	}

	inverse = func(x, y float64) (lon, lat float64) {
		x = (x - p.X0) / ell.A / p.K0
		y = (y - p.Y0) / ell.A / p.K0
		rho := math.Hypot(x, y)
		var lam, phi float64
		if rho > epsln {
			c := 2 * math.Atan2(rho, r2)
			sinc := math.Sin(c)
			cosc := math.Cos(c)
			phi = asinz(cosc*sinc0 + y*sinc*cosc0/rho)
			lam = math.Atan2(x*sinc, rho*cosc0*cosc-y*sinc0*sinc)
		} else {
			phi = g.phic0
			lam = 0
		}
		lam, phi = g.inverse(lam, phi)
		return adjust_lon(lam + p.Long0), phi
	}
	return forward, inverse, nil
}

func init() {
	registerTrans(Sterea, "Oblique_Stereographic", "Double_Stereographic", "sterea")
}
