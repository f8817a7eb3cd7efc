package mapproj

import "math"

// LAEA is a Lambert Azimuthal Equal Area projection. The point
// antipodal to the projection center maps to the false origin; the
// ellipsoidal form works through the authalic latitude.
func LAEA(p *Params) (forward, inverse pointFunc, err error) {
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

	if ell.Sphere {
		forward = func(lon, lat float64) (x, y float64) {
			lam := adjust_lon(lon - p.Long0)
			sinphi := math.Sin(lat)
			cosphi := math.Cos(lat)
			coslam := math.Cos(lam)
			b := 1 + sinph0*sinphi + cosph0*cosphi*coslam
			if b <= epsln {
				// Antipodal to the projection center.
				return p.X0, p.Y0
			}
			b = math.Sqrt(2 / b)
			x = p.X0 + ell.A*b*cosphi*math.Sin(lam)
			y = p.Y0 + ell.A*b*(cosph0*sinphi-sinph0*cosphi*coslam)
			return x, y
		}

		inverse = func(x, y float64) (lon, lat float64) {
			x = (x - p.X0) / ell.A
			y = (y - p.Y0) / ell.A
			rho := math.Hypot(x, y)
			if rho <= epsln {
				return p.Long0, p.Lat0
			}
			c := 2 * asinz(0.5*rho)
			sinc := math.Sin(c)
			cosc := math.Cos(c)
			lat = asinz(cosc*sinph0 + y*sinc*cosph0/rho)
			lon = adjust_lon(p.Long0 + math.Atan2(x*sinc, rho*cosph0*cosc-y*sinc*sinph0))
			return lon, lat
		}
		return forward, inverse, nil
	}

	// Ellipsoidal form on the authalic sphere.
	const (
		modeEquit = iota
		modeObliq
		modeNPole
		modeSPole
	)
	mode := modeObliq
	switch {
	case math.Abs(p.Lat0-halfPi) < epsln:
		mode = modeNPole
	case math.Abs(p.Lat0+halfPi) < epsln:
		mode = modeSPole
	case math.Abs(p.Lat0) < epsln:
		mode = modeEquit
	}

	e := ell.E
	qp := qsfnz(e, 1)
	apa := authset(ell.Es)
	var rq, dd, xmf, ymf, sinb1, cosb1 float64
	switch mode {
	case modeNPole, modeSPole:
		dd = 1
	case modeEquit:
		rq = math.Sqrt(0.5 * qp)
		dd = 1 / rq
		sinb1 = 0
		cosb1 = 1
		xmf = rq * dd
		ymf = rq / dd
	case modeObliq:
		rq = math.Sqrt(0.5 * qp)
		sinb1 = qsfnz(e, sinph0) / qp
		cosb1 = math.Sqrt(1 - sinb1*sinb1)
		dd = cosph0 / (math.Sqrt(1-ell.Es*sinph0*sinph0) * rq * cosb1)
		xmf = rq * dd
		ymf = rq / dd
	}

	forward = func(lon, lat float64) (x, y float64) {
		lam := adjust_lon(lon - p.Long0)
		coslam := math.Cos(lam)
		sinlam := math.Sin(lam)
		q := qsfnz(e, math.Sin(lat))
		switch mode {
		case modeObliq, modeEquit:
			sinb := q / qp
			if math.Abs(sinb) > 1 {
				sinb = sign(sinb)
			}
			cosb := math.Sqrt(1 - sinb*sinb)
			b := 1 + sinb1*sinb + cosb1*cosb*coslam
			if b <= epsln {
				return p.X0, p.Y0
			}
			b = math.Sqrt(2 / b)
			x = xmf * b * cosb * sinlam
			y = ymf * b * (cosb1*sinb - sinb1*cosb*coslam)
		case modeNPole:
			q = qp - q
			if q < 0 {
				q = 0
			}
			b := math.Sqrt(q)
			x = b * sinlam
			y = -b * coslam
		case modeSPole:
			q = qp + q
			b := math.Sqrt(q)
			x = b * sinlam
			y = b * coslam
		}
		return ell.A*x + p.X0, ell.A*y + p.Y0
	}

	inverse = func(x, y float64) (lon, lat float64) {
		x = (x - p.X0) / ell.A
		y = (y - p.Y0) / ell.A
		var lam, ab float64
		switch mode {
		case modeObliq, modeEquit:
			x /= dd
			y *= dd
			rho := math.Hypot(x, y)
			if rho < epsln {
				return p.Long0, p.Lat0
			}
			ce := 2 * asinz(0.5*rho/rq)
			cCe := math.Cos(ce)
			sCe := math.Sin(ce)
			x *= sCe
			ab = cCe*sinb1 + y*sCe*cosb1/rho
			y = rho*cosb1*cCe - y*sinb1*sCe
			lam = math.Atan2(x, y)
		default:
			q := x*x + y*y
			if q == 0 {
				return p.Long0, p.Lat0
			}
			ab = 1 - q/qp
			if mode == modeSPole {
				ab = -ab
				lam = math.Atan2(x, y)
			} else {
				lam = math.Atan2(x, -y)
			}
		}
		lat = authlat(asinz(ab), apa)
		lon = adjust_lon(p.Long0 + lam)
		return lon, lat
	}
	return forward, inverse, nil
}

func init() {
	registerTrans(LAEA, "Lambert_Azimuthal_Equal_Area", "Lambert Azimuthal Equal Area", "laea")
	registerCode(11, "laea")
}
