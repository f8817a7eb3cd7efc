package mapproj

import "math"

const aitoffMaxIter = 20

// aitoffForward is the shared forward core of the Aitoff and Winkel
// Tripel projections. With cosphi1 < 0 it produces plain Aitoff;
// otherwise the Winkel Tripel average with the equirectangular term.
func aitoffForward(lon, lat, cosphi1 float64) (x, y float64) {
	c := 0.5 * lon
	d := math.Acos(math.Cos(lat) * math.Cos(c))
	if d != 0 {
		sd := math.Sin(d)
		x = 2 * d * math.Cos(lat) * math.Sin(c) / sd
		y = d * math.Sin(lat) / sd
	}
	if cosphi1 >= 0 {
		// Winkel Tripel: average with equirectangular.
		x = (x + lon*cosphi1) * 0.5
		y = (y + lat) * 0.5
	}
	return x, y
}

// aitoffInverse inverts aitoffForward with a two dimensional Newton
// iteration using finite difference partials. The iteration starts
// from the equirectangular estimate and keeps the best candidate when
// it fails to settle within the iteration cap.
func aitoffInverse(x, y, cosphi1 float64) (lon, lat float64) {
	if math.Abs(x) < epsln && math.Abs(y) < epsln {
		return 0, 0
	}
	lon = x
	lat = y
	if cosphi1 >= 0 && cosphi1 < epsln {
		lon = x * 2
	} else if cosphi1 >= 0 {
		lon = x / cosphi1
	}
	if lon > sPi {
		lon = sPi
	} else if lon < -sPi {
		lon = -sPi
	}
	if lat > halfPi {
		lat = halfPi
	} else if lat < -halfPi {
		lat = -halfPi
	}
	const h = 1e-7
	for i := 0; i < aitoffMaxIter; i++ {
		fx, fy := aitoffForward(lon, lat, cosphi1)
		dx := fx - x
		dy := fy - y
		if math.Abs(dx) < 1e-12 && math.Abs(dy) < 1e-12 {
			break
		}
		fxl, fyl := aitoffForward(lon+h, lat, cosphi1)
		fxp, fyp := aitoffForward(lon, lat+h, cosphi1)
		j11 := (fxl - fx) / h
		j21 := (fyl - fy) / h
		j12 := (fxp - fx) / h
		j22 := (fyp - fy) / h
		det := j11*j22 - j12*j21
		if math.Abs(det) < 1e-15 {
			break
		}
		dlon := (dx*j22 - dy*j12) / det
		dlat := (dy*j11 - dx*j21) / det
		lon -= dlon
		lat -= dlat
		if lat > halfPi {
			lat = halfPi
		} else if lat < -halfPi {
			lat = -halfPi
		}
	}
	return lon, lat
}

// Aitoff is the Aitoff projection on a sphere. The inverse has no
// closed form and uses a bounded Newton iteration.
func Aitoff(p *Params) (forward, inverse pointFunc, err error) {
	if math.IsNaN(p.Long0) {
		p.Long0 = 0
	}
	if math.IsNaN(p.X0) {
		p.X0 = 0
	}
	if math.IsNaN(p.Y0) {
		p.Y0 = 0
	}
	ell := p.Ell

	forward = func(lon, lat float64) (x, y float64) {
		lam := adjust_lon(lon - p.Long0)
		x, y = aitoffForward(lam, lat, -1)
		return p.X0 + ell.A*x, p.Y0 + ell.A*y
	}
	inverse = func(x, y float64) (lon, lat float64) {
		lon, lat = aitoffInverse((x-p.X0)/ell.A, (y-p.Y0)/ell.A, -1)
		return adjust_lon(p.Long0 + lon), lat
	}
	return forward, inverse, nil
}

// Wintri is the Winkel Tripel projection on a sphere, the arithmetic
// mean of Aitoff and equirectangular. lat_1 sets the standard parallel
// of the equirectangular term; it defaults to acos(2/π).
func Wintri(p *Params) (forward, inverse pointFunc, err error) {
	if math.IsNaN(p.Long0) {
		p.Long0 = 0
	}
	if math.IsNaN(p.X0) {
		p.X0 = 0
	}
	if math.IsNaN(p.Y0) {
		p.Y0 = 0
	}
	cosphi1 := 2 / sPi
	if !math.IsNaN(p.Lat1) {
		if err = checkLat("lat_1", p.Lat1); err != nil {
			return nil, nil, err
		}
		cosphi1 = math.Cos(p.Lat1)
	}
	ell := p.Ell

	forward = func(lon, lat float64) (x, y float64) {
		lam := adjust_lon(lon - p.Long0)
		x, y = aitoffForward(lam, lat, cosphi1)
		return p.X0 + ell.A*x, p.Y0 + ell.A*y
	}
	inverse = func(x, y float64) (lon, lat float64) {
		lon, lat = aitoffInverse((x-p.X0)/ell.A, (y-p.Y0)/ell.A, cosphi1)
		return adjust_lon(p.Long0 + lon), lat
	}
	return forward, inverse, nil
}

func init() {
	registerTrans(Aitoff, "Aitoff", "aitoff")
	registerTrans(Wintri, "Winkel_Tripel", "wintri")
}
