package mapproj

import "math"

// Eqdc is the Equidistant Conic projection with one or two standard
// parallels. Meridional distances use the series expansion, so the
// ellipsoidal case carries a bounded iterative inverse.
func Eqdc(p *Params) (forward, inverse pointFunc, err error) {
	if math.IsNaN(p.Long0) {
		p.Long0 = 0
	}
	if math.IsNaN(p.Lat0) {
		p.Lat0 = 0
	}
	if math.IsNaN(p.Lat1) {
		return nil, nil, errSetup("Eqdc", "lat_1 is required")
	}
	if math.IsNaN(p.Lat2) {
		p.Lat2 = p.Lat1
	}
	if math.IsNaN(p.X0) {
		p.X0 = 0
	}
	if math.IsNaN(p.Y0) {
		p.Y0 = 0
	}
	if err = checkLat("lat_1", p.Lat1); err != nil {
		return nil, nil, err
	}
	if err = checkLat("lat_2", p.Lat2); err != nil {
		return nil, nil, err
	}
	if math.Abs(p.Lat1+p.Lat2) < epsln {
		return nil, nil, errSetup("Eqdc", "standard parallels are opposite")
	}
	ell := p.Ell

	e0 := e0fn(ell.Es)
	e1 := e1fn(ell.Es)
	e2 := e2fn(ell.Es)
	e3 := e3fn(ell.Es)

	sinphi := math.Sin(p.Lat1)
	cosphi := math.Cos(p.Lat1)
	ms1 := msfnz(ell.E, sinphi, cosphi)
	ml1 := mlfn(e0, e1, e2, e3, p.Lat1)

	var ns float64
	if math.Abs(p.Lat1-p.Lat2) < epsln {
		ns = sinphi
	} else {
		sinphi = math.Sin(p.Lat2)
		cosphi = math.Cos(p.Lat2)
		ms2 := msfnz(ell.E, sinphi, cosphi)
		ml2 := mlfn(e0, e1, e2, e3, p.Lat2)
		ns = (ms1 - ms2) / (ml2 - ml1)
	}
	g := ml1 + ms1/ns
	ml0 := mlfn(e0, e1, e2, e3, p.Lat0)
	rh := ell.A * (g - ml0)

	forward = func(lon, lat float64) (x, y float64) {
		ml := mlfn(e0, e1, e2, e3, lat)
		rh1 := ell.A * (g - ml)
		theta := ns * adjust_lon(lon-p.Long0)
		x = p.X0 + rh1*math.Sin(theta)
		y = p.Y0 + rh - rh1*math.Cos(theta)
		return x, y
	}

	inverse = func(x, y float64) (lon, lat float64) {
		x -= p.X0
		y = rh - y + p.Y0
		var rh1, con float64
		if ns >= 0 {
			rh1 = math.Hypot(x, y)
			con = 1
		} else {
			rh1 = -math.Hypot(x, y)
			con = -1
		}
		theta := 0.0
		if rh1 != 0 {
			theta = math.Atan2(con*x, con*y)
		}
		ml := g - rh1/ell.A
		lat, _ = imlfn(ml, e0, e1, e2, e3)
		lon = adjust_lon(p.Long0 + theta/ns)
		return lon, lat
	}
	return forward, inverse, nil
}

func init() {
	registerTrans(Eqdc, "Equidistant_Conic", "eqdc")
	registerCode(8, "eqdc")
}
