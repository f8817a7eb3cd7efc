package mapproj

import "math"

// LCC is a Lambert Conformal Conic projection. The pole on the far
// side of the cone apex cannot be represented; latitudes within epsln
// of a pole are nudged inside the domain, and a point at the apex maps
// to the apex radius zero.
func LCC(p *Params) (forward, inverse pointFunc, err error) {
	if math.IsNaN(p.Lat0) {
		p.Lat0 = 0
	}
	if math.IsNaN(p.Lat1) {
		p.Lat1 = p.Lat0
	}
	if math.IsNaN(p.Lat2) {
		p.Lat2 = p.Lat1
	} // if lat2 is not defined
	if math.IsNaN(p.Long0) {
		p.Long0 = 0
	}
	if math.IsNaN(p.X0) {
		p.X0 = 0
	}
	if math.IsNaN(p.Y0) {
		p.Y0 = 0
	}
	for _, f := range []struct {
		name string
		v    float64
	}{{"lat_0", p.Lat0}, {"lat_1", p.Lat1}, {"lat_2", p.Lat2}} {
		if err = checkLat(f.name, f.v); err != nil {
			return nil, nil, err
		}
	}
	if p.K0 <= 0 {
		return nil, nil, errSetup("LCC", "scale k_0 must be positive (k_0=%g)", p.K0)
	}
	// Standard parallels cannot be equal and on opposite sides of the equator
	if math.Abs(p.Lat1+p.Lat2) < epsln && math.Abs(p.Lat1-p.Lat2) > epsln {
		return nil, nil, errSetup("LCC", "standard parallels lat_1 and lat_2 cannot be opposite (lat_1=%g, lat_2=%g)", p.Lat1, p.Lat2)
	}
	if math.Abs(p.Lat1) < epsln && math.Abs(p.Lat2) < epsln {
		return nil, nil, errSetup("LCC", "standard parallels lat_1 and lat_2 cannot both be zero")
	}
	ell := p.Ell
	e := ell.E

	sin1 := math.Sin(p.Lat1)
	cos1 := math.Cos(p.Lat1)
	ms1 := msfnz(e, sin1, cos1)
	ts1 := tsfnz(e, p.Lat1, sin1)

	sin2 := math.Sin(p.Lat2)
	cos2 := math.Cos(p.Lat2)
	ms2 := msfnz(e, sin2, cos2)
	ts2 := tsfnz(e, p.Lat2, sin2)

	ts0 := tsfnz(e, p.Lat0, math.Sin(p.Lat0))

	var ns float64
	if math.Abs(p.Lat1-p.Lat2) > epsln {
		ns = math.Log(ms1/ms2) / math.Log(ts1/ts2)
	} else {
		ns = sin1
	}
	if math.IsNaN(ns) {
		ns = sin1
	}
	f0 := ms1 / (ns * math.Pow(ts1, ns))
	rh := ell.A * f0 * math.Pow(ts0, ns)
	if p.Title == "" {
		p.Title = "Lambert Conformal Conic"
	}

	// Lambert Conformal conic forward equations--mapping lat,long to x,y
	forward = func(lon, lat float64) (x, y float64) {
		// singular cases:
		if math.Abs(2*math.Abs(lat)-math.Pi) <= epsln {
			lat = sign(lat) * (halfPi - 2*epsln)
		}
		con := math.Abs(math.Abs(lat) - halfPi)
		var ts, rh1 float64
		if con > epsln {
			ts = tsfnz(e, lat, math.Sin(lat))
			rh1 = ell.A * f0 * math.Pow(ts, ns)
		} else {
			// The pole on the apex side maps to the apex itself.
			rh1 = 0
		}
		theta := ns * adjust_lon(lon-p.Long0)
		x = p.K0*(rh1*math.Sin(theta)) + p.X0
		y = p.K0*(rh-rh1*math.Cos(theta)) + p.Y0
		return x, y
	}

	// Lambert Conformal Conic inverse equations--mapping x,y to lat/long
	inverse = func(x, y float64) (lon, lat float64) {
		var rh1, con, ts float64
		x = (x - p.X0) / p.K0
		y = rh - (y-p.Y0)/p.K0
		if ns > 0 {
			rh1 = math.Sqrt(x*x + y*y)
			con = 1
		} else {
			rh1 = -math.Sqrt(x*x + y*y)
			con = -1
		}
		theta := 0.
		if rh1 != 0 {
			theta = math.Atan2((con * x), (con * y))
		}
		if rh1 != 0 || ns > 0 {
			con = 1 / ns
			ts = math.Pow(rh1/(ell.A*f0), con)
			lat, _ = phi2z(e, ts)
		} else {
			lat = -halfPi
		}
		lon = adjust_lon(theta/ns + p.Long0)
		return lon, lat
	}
	return
}

func init() {
	registerTrans(LCC, "Lambert Tangential Conformal Conic Projection",
		"Lambert_Conformal_Conic", "Lambert_Conformal_Conic_2SP", "lcc")
	registerCode(4, "lcc")
}
