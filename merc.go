package mapproj

import "math"

// Merc is a Mercator projection. The poles are the projection's
// singularities: latitudes within epsln of ±π/2 are clamped to the
// nearest mappable parallel, so the forward mapping stays finite.
func Merc(p *Params) (forward, inverse pointFunc, err error) {
	if math.IsNaN(p.Long0) {
		p.Long0 = 0
	}
	if math.IsNaN(p.X0) {
		p.X0 = 0
	}
	if math.IsNaN(p.Y0) {
		p.Y0 = 0
	}
	if err = checkLon("lon_0", p.Long0); err != nil {
		return nil, nil, err
	}
	if err = checkLat("lat_ts", p.LatTS); err != nil {
		return nil, nil, err
	}
	ell := p.Ell
	if !math.IsNaN(p.LatTS) {
		if ell.Sphere {
			p.K0 = math.Cos(p.LatTS)
		} else {
			p.K0 = msfnz(ell.E, math.Sin(p.LatTS), math.Cos(p.LatTS))
		}
	}
	if p.K0 <= 0 {
		return nil, nil, errSetup("Merc", "scale k_0 must be positive (k_0=%g)", p.K0)
	}

	// Mercator forward equations--mapping lat,long to x,y
	forward = func(lon, lat float64) (x, y float64) {
		if math.Abs(lat) >= halfPi-epsln {
			lat = sign(lat) * (halfPi - epsln)
		}
		if ell.Sphere {
			x = p.X0 + ell.A*p.K0*adjust_lon(lon-p.Long0)
			y = p.Y0 + ell.A*p.K0*math.Log(math.Tan(fortPi+0.5*lat))
		} else {
			sinphi := math.Sin(lat)
			ts := tsfnz(ell.E, lat, sinphi)
			x = p.X0 + ell.A*p.K0*adjust_lon(lon-p.Long0)
			y = p.Y0 - ell.A*p.K0*math.Log(ts)
		}
		return x, y
	}

	// Mercator inverse equations--mapping x,y to lat/long
	inverse = func(x, y float64) (lon, lat float64) {
		x -= p.X0
		y -= p.Y0
		if ell.Sphere {
			lat = halfPi - 2*math.Atan(math.Exp(-y/(ell.A*p.K0)))
		} else {
			ts := math.Exp(-y / (ell.A * p.K0))
			lat, _ = phi2z(ell.E, ts)
		}
		lon = adjust_lon(p.Long0 + x/(ell.A*p.K0))
		return lon, lat
	}
	return
}

func init() {
	// Register this projection with the corresponding names.
	registerTrans(Merc, "Mercator", "Popular Visualisation Pseudo Mercator",
		"Mercator_1SP", "Mercator_Auxiliary_Sphere", "merc")
	registerCode(5, "merc")
}
