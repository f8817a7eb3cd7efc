package mapproj

import "math"

// Ortho is an Orthographic projection on a sphere of radius equal to
// the semi-major axis. Only the hemisphere facing the projection center
// is mappable; far-side points fall back to the false origin. Points
// outside the map disc on the inverse are clamped to its rim.
func Ortho(p *Params) (forward, inverse pointFunc, err error) {
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
	ell := p.Ell
	sinph0 := math.Sin(p.Lat0)
	cosph0 := math.Cos(p.Lat0)

	forward = func(lon, lat float64) (x, y float64) {
		lam := adjust_lon(lon - p.Long0)
		sinphi := math.Sin(lat)
		cosphi := math.Cos(lat)
		coslam := math.Cos(lam)
		g := sinph0*sinphi + cosph0*cosphi*coslam
		if g < -epsln {
			// Far side of the sphere.
			return p.X0, p.Y0
		}
		x = p.X0 + ell.A*cosphi*math.Sin(lam)
		y = p.Y0 + ell.A*(cosph0*sinphi-sinph0*cosphi*coslam)
		return x, y
	}

	inverse = func(x, y float64) (lon, lat float64) {
		x -= p.X0
		y -= p.Y0
		rho := math.Hypot(x, y)
		if rho <= epsln {
			return p.Long0, p.Lat0
		}
		c := asinz(rho / ell.A)
		sinc := math.Sin(c)
		cosc := math.Cos(c)
		lat = asinz(cosc*sinph0 + y*sinc*cosph0/rho)
		lon = adjust_lon(p.Long0 + math.Atan2(x*sinc, rho*cosph0*cosc-y*sinph0*sinc))
		return lon, lat
	}
	return forward, inverse, nil
}

func init() {
	registerTrans(Ortho, "Orthographic", "ortho")
	registerCode(14, "ortho")
}
