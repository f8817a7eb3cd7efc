package mapproj

import "math"

// OMerc is the Hotine Oblique Mercator projection, azimuth form: the
// oblique axis is given by a center point (longc, lat_0) and an
// azimuth alpha. Coordinates are rectified onto the grid through the
// skew angle.
func OMerc(p *Params) (forward, inverse pointFunc, err error) {
	if math.IsNaN(p.Lat0) {
		p.Lat0 = 0
	}
	if math.IsNaN(p.LongC) {
		if math.IsNaN(p.Long0) {
			p.LongC = 0
		} else {
			p.LongC = p.Long0
		}
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
	if math.IsNaN(p.Alpha) {
		return nil, nil, errSetup("OMerc", "alpha is required")
	}
	if err = checkLat("lat_0", p.Lat0); err != nil {
		return nil, nil, err
	}
	if math.Abs(p.Lat0) < epsln || math.Abs(math.Abs(p.Lat0)-halfPi) < epsln {
		return nil, nil, errSetup("OMerc", "lat_0 must be away from the equator and the poles")
	}
	ell := p.Ell

	sinph0 := math.Sin(p.Lat0)
	cosph0 := math.Cos(p.Lat0)
	con := 1 - ell.Es*sinph0*sinph0
	bb := math.Sqrt(1 + ell.Es*cosph0*cosph0*cosph0*cosph0/(1-ell.Es))
	aa := ell.A * bb * p.K0 * math.Sqrt(1-ell.Es) / con
	t0 := tsfnz(ell.E, p.Lat0, sinph0)
	dd := bb * math.Sqrt(1-ell.Es) / (cosph0 * math.Sqrt(con))
	d2 := dd*dd - 1
	if d2 < 0 {
		d2 = 0
	}
	ff := dd + sign(p.Lat0)*math.Sqrt(d2)
	ee := ff * math.Pow(t0, bb)
	gg := (ff - 1/ff) / 2
	sinGam := math.Sin(p.Alpha) / dd
	if math.Abs(sinGam) > 1 {
		sinGam = sign(sinGam)
	}
	gamma0 := math.Asin(sinGam)
	arg := gg * math.Tan(gamma0)
	if math.Abs(arg) > 1 {
		arg = sign(arg)
	}
	lam0 := p.LongC - math.Asin(arg)/bb
	singam := math.Sin(gamma0)
	cosgam := math.Cos(gamma0)

	forward = func(lon, lat float64) (x, y float64) {
		var u, v float64
		if math.Abs(math.Abs(lat)-halfPi) <= epsln {
			// Poles map onto the oblique axis.
			if lat > 0 {
				v = aa / bb * math.Log(math.Tan(fortPi-gamma0/2))
			} else {
				v = aa / bb * math.Log(math.Tan(fortPi+gamma0/2))
			}
			u = aa * lat / bb
		} else {
			t := tsfnz(ell.E, lat, math.Sin(lat))
			q := ee / math.Pow(t, bb)
			s := (q - 1/q) / 2
			tt := (q + 1/q) / 2
			lam := adjust_lon(lon - lam0)
			vv := math.Sin(bb * lam)
			uu := (-vv*cosgam + s*singam) / tt
			if math.Abs(math.Abs(uu)-1) < epsln {
				uu = sign(uu) * (1 - epsln)
			}
			v = aa * math.Log((1-uu)/(1+uu)) / (2 * bb)
			u = aa * math.Atan2(s*cosgam+vv*singam, math.Cos(bb*lam)) / bb
		}
		x = p.X0 + v*cosgam + u*singam
		y = p.Y0 + u*cosgam - v*singam
		return x, y
	}

	inverse = func(x, y float64) (lon, lat float64) {
		x -= p.X0
		y -= p.Y0
		u := x*singam + y*cosgam
		v := x*cosgam - y*singam
		q := math.Exp(-bb * v / aa)
		s := (q - 1/q) / 2
		tt := (q + 1/q) / 2
		vv := math.Sin(bb * u / aa)
		uu := (vv*cosgam + s*singam) / tt
		if math.Abs(math.Abs(uu)-1) < epsln {
			lat = sign(uu) * halfPi
			lon = lam0
			return lon, lat
		}
		t := math.Pow(ee/math.Sqrt((1+uu)/(1-uu)), 1/bb)
		lat, _ = phi2z(ell.E, t)
		lon = adjust_lon(lam0 - math.Atan2(s*cosgam-vv*singam, math.Cos(bb*u/aa))/bb)
		return lon, lat
	}
	return forward, inverse, nil
}

func init() {
	registerTrans(OMerc, "Hotine_Oblique_Mercator", "omerc",
		"Hotine_Oblique_Mercator_Azimuth_Center", "Oblique_Mercator")
	registerCode(20, "omerc")
}
