package mapproj

import "math"

// Sinu is a Sinusoidal (Sanson-Flamsteed) projection, equal-area and
// pseudocylindrical. The ellipsoidal form uses the meridional distance
// series; the spherical form is closed.
func Sinu(p *Params) (forward, inverse pointFunc, err error) {
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
	var e0, e1, e2, e3 float64
	if !ell.Sphere {
		e0 = e0fn(ell.Es)
		e1 = e1fn(ell.Es)
		e2 = e2fn(ell.Es)
		e3 = e3fn(ell.Es)
	}

	forward = func(lon, lat float64) (x, y float64) {
		lam := adjust_lon(lon - p.Long0)
		if ell.Sphere {
			x = p.X0 + ell.A*lam*math.Cos(lat)
			y = p.Y0 + ell.A*lat
			return x, y
		}
		s := math.Sin(lat)
		c := math.Cos(lat)
		ml := ell.A * mlfn(e0, e1, e2, e3, lat)
		con := math.Sqrt(1 - ell.Es*s*s)
		x = p.X0 + ell.A*lam*c/con
		y = p.Y0 + ml
		return x, y
	}

	inverse = func(x, y float64) (lon, lat float64) {
		x -= p.X0
		y -= p.Y0
		if ell.Sphere {
			lat = y / ell.A
			if math.Abs(lat) > halfPi {
				lat = sign(lat) * halfPi
			}
			c := math.Cos(lat)
			if math.Abs(c) < epsln {
				lon = p.Long0
			} else {
				lon = adjust_lon(p.Long0 + x/(ell.A*c))
			}
			return lon, lat
		}
		lat, _ = imlfn(y/ell.A, e0, e1, e2, e3)
		if math.Abs(lat) > halfPi {
			lat = sign(lat) * halfPi
		}
		s := math.Sin(lat)
		c := math.Cos(lat)
		if math.Abs(c) < epsln {
			lon = p.Long0
		} else {
			con := math.Sqrt(1 - ell.Es*s*s)
			lon = adjust_lon(p.Long0 + x*con/(ell.A*c))
		}
		return lon, lat
	}
	return forward, inverse, nil
}

func init() {
	registerTrans(Sinu, "Sinusoidal", "sinu")
	registerCode(16, "sinu")
}
