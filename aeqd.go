package mapproj

import "math"

// AEQD is an Azimuthal Equidistant projection, computed on a sphere of
// radius equal to the semi-major axis as in the GCTP lineage. The
// center maps to the false origin by definition; the antipodal point,
// where the azimuth is undefined, falls back to the false origin as
// well.
func AEQD(p *Params) (forward, inverse pointFunc, err error) {
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
		if math.Abs(math.Abs(g)-1) < epsln {
			if g > 0 {
				// The projection center itself.
				return p.X0, p.Y0
			}
			// Antipodal point: azimuth undefined.
			return p.X0, p.Y0
		}
		c := math.Acos(g)
		k := c / math.Sin(c)
		x = p.X0 + ell.A*k*cosphi*math.Sin(lam)
		y = p.Y0 + ell.A*k*(cosph0*sinphi-sinph0*cosphi*coslam)
		return x, y
	}

	inverse = func(x, y float64) (lon, lat float64) {
		x -= p.X0
		y -= p.Y0
		rho := math.Hypot(x, y)
		if rho <= epsln {
			return p.Long0, p.Lat0
		}
		c := rho / ell.A
		if c > math.Pi {
			// Beyond the antipode; clamp to the map rim.
			c = math.Pi
		}
		sinc := math.Sin(c)
		cosc := math.Cos(c)
		lat = asinz(cosc*sinph0 + y*sinc*cosph0/rho)
		lon = adjust_lon(p.Long0 + math.Atan2(x*sinc, rho*cosph0*cosc-y*sinph0*sinc))
		return lon, lat
	}
	return forward, inverse, nil
}

func init() {
	registerTrans(AEQD, "Azimuthal_Equidistant", "aeqd")
	registerCode(12, "aeqd")
}
