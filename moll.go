package mapproj

import "math"

const mollMaxIter = 50

// Moll is the Mollweide projection on a sphere, equal-area and
// pseudocylindrical. The forward map solves the transcendental
// equation 2θ + sin 2θ = π sin φ with a bounded iteration; at the
// poles the iteration is skipped and θ = φ.
func Moll(p *Params) (forward, inverse pointFunc, err error) {
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
		theta := lat
		con := sPi * math.Sin(lat)
		for i := 0; i < mollMaxIter; i++ {
			delta := -(theta + math.Sin(theta) - con) / (1 + math.Cos(theta))
			theta += delta
			if math.Abs(delta) < epsln {
				break
			}
		}
		theta /= 2
		// Near the poles 1+cos θ vanishes; the limiting θ is the
		// latitude itself.
		if halfPi-math.Abs(lat) < epsln {
			lam = 0
			theta = sign(lat) * halfPi
		}
		x = p.X0 + 0.900316316158*ell.A*lam*math.Cos(theta)
		y = p.Y0 + 1.4142135623731*ell.A*math.Sin(theta)
		return x, y
	}

	inverse = func(x, y float64) (lon, lat float64) {
		x -= p.X0
		y -= p.Y0
		arg := y / (1.4142135623731 * ell.A)
		if math.Abs(arg) > 1 {
			arg = sign(arg)
		}
		theta := math.Asin(arg)
		costh := math.Cos(theta)
		if math.Abs(costh) < epsln {
			lon = p.Long0
		} else {
			lon = adjust_lon(p.Long0 + x/(0.900316316158*ell.A*costh))
		}
		arg = (2*theta + math.Sin(2*theta)) / sPi
		if math.Abs(arg) > 1 {
			arg = sign(arg)
		}
		lat = math.Asin(arg)
		return lon, lat
	}
	return forward, inverse, nil
}

func init() {
	registerTrans(Moll, "Mollweide", "moll")
	registerCode(25, "moll")
}
