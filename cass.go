package mapproj

import "math"

// Cass is the Cassini-Soldner projection. The ellipsoidal form uses the
// meridional distance series with a series inverse through the
// footpoint latitude.
func Cass(p *Params) (forward, inverse pointFunc, err error) {
	if math.IsNaN(p.Long0) {
		p.Long0 = 0
	}
	if math.IsNaN(p.Lat0) {
		p.Lat0 = 0
	}
	if math.IsNaN(p.X0) {
		p.X0 = 0
	}
	if math.IsNaN(p.Y0) {
		p.Y0 = 0
	}
	ell := p.Ell

	if ell.Sphere {
		forward = func(lon, lat float64) (x, y float64) {
			lam := adjust_lon(lon - p.Long0)
			x = p.X0 + ell.A*asinz(math.Cos(lat)*math.Sin(lam))
			y = p.Y0 + ell.A*(math.Atan2(math.Tan(lat), math.Cos(lam))-p.Lat0)
			return x, y
		}
		inverse = func(x, y float64) (lon, lat float64) {
			xx := (x - p.X0) / ell.A
			dd := (y-p.Y0)/ell.A + p.Lat0
			lat = asinz(math.Sin(dd) * math.Cos(xx))
			lon = adjust_lon(p.Long0 + math.Atan2(math.Tan(xx), math.Cos(dd)))
			return lon, lat
		}
		return forward, inverse, nil
	}

	e0 := e0fn(ell.Es)
	e1 := e1fn(ell.Es)
	e2 := e2fn(ell.Es)
	e3 := e3fn(ell.Es)
	ml0 := ell.A * mlfn(e0, e1, e2, e3, p.Lat0)

	forward = func(lon, lat float64) (x, y float64) {
		lam := adjust_lon(lon - p.Long0)
		sinphi := math.Sin(lat)
		cosphi := math.Cos(lat)
		nn := ell.A / math.Sqrt(1-ell.Es*sinphi*sinphi)
		tq := math.Tan(lat)
		t := tq * tq
		a1 := lam * cosphi
		c := ell.Ep2 * cosphi * cosphi
		a2 := a1 * a1
		x = p.X0 + nn*a1*(1-a2*t*(1.0/6-(8-t+8*c)*a2/120))
		y = p.Y0 + ell.A*mlfn(e0, e1, e2, e3, lat) - ml0 +
			nn*tq*a2*(0.5+(5-t+6*c)*a2/24)
		return x, y
	}

	inverse = func(x, y float64) (lon, lat float64) {
		x -= p.X0
		y -= p.Y0
		ml1 := (ml0 + y) / ell.A
		phi1, _ := imlfn(ml1, e0, e1, e2, e3)
		if math.Abs(math.Abs(phi1)-halfPi) <= epsln {
			return p.Long0, sign(phi1) * halfPi
		}
		sinphi := math.Sin(phi1)
		cosphi := math.Cos(phi1)
		nn := ell.A / math.Sqrt(1-ell.Es*sinphi*sinphi)
		rr := nn * (1 - ell.Es) / (1 - ell.Es*sinphi*sinphi)
		tq := math.Tan(phi1)
		t := tq * tq
		dd := x / nn
		d2 := dd * dd
		lat = phi1 - nn*tq/rr*d2*(0.5-(1+3*t)*d2/24)
		lon = adjust_lon(p.Long0 + dd*(1-t*d2/3+(1+3*t)*t*d2*d2/15)/cosphi)
		return lon, lat
	}
	return forward, inverse, nil
}

func init() {
	registerTrans(Cass, "Cassini", "cass", "Cassini_Soldner")
}
