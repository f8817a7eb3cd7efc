package mapproj

import "math"

// Krovak is the Czech Krovak oblique conic projection. It is defined on
// the Bessel ellipsoid regardless of the configured shape. The poles
// are clamped to the nearest mappable parallel on the forward; the
// cone apex maps back to the projection origin on the inverse. The
// inverse latitude iteration is capped at 15 rounds and keeps the best
// estimate reached.
func Krovak(p *Params) (forward, inverse pointFunc, err error) {
	a := 6377397.155
	es := 0.006674372230614
	e := math.Sqrt(es)
	if math.IsNaN(p.Lat0) {
		p.Lat0 = 0.863937979737193
	}
	if math.IsNaN(p.Long0) {
		p.Long0 = 0.7417649320975901 - 0.308341501185665
	}
	/* if scale not set default to 0.9999 */
	if math.IsNaN(p.K0) || p.K0 == 1 {
		p.K0 = 0.9999
	}
	if math.IsNaN(p.X0) {
		p.X0 = 0
	}
	if math.IsNaN(p.Y0) {
		p.Y0 = 0
	}
	const s45 = 0.785398163397448 /* 45 */
	const s90 = 2 * s45
	fi0 := p.Lat0
	alfa := math.Sqrt(1 + (es*math.Pow(math.Cos(fi0), 4))/(1-es))
	const uq = 1.04216856380474
	u0 := math.Asin(math.Sin(fi0) / alfa)
	g := math.Pow((1+e*math.Sin(fi0))/(1-e*math.Sin(fi0)), alfa*e/2)
	k := math.Tan(u0/2+s45) / math.Pow(math.Tan(fi0/2+s45), alfa) * g
	k1 := p.K0
	n0 := a * math.Sqrt(1-es) / (1 - es*math.Pow(math.Sin(fi0), 2))
	const s0 = 1.37008346281555
	n := math.Sin(s0)
	ro0 := k1 * n0 / math.Tan(s0)
	ad := s90 - uq

	/* calculate xy from lat/lon */
	forward = func(lon, lat float64) (x, y float64) {
		if math.Abs(lat) >= halfPi-epsln {
			lat = sign(lat) * (halfPi - epsln)
		}
		deltaLon := adjust_lon(lon - p.Long0)
		gfi := math.Pow((1+e*math.Sin(lat))/(1-e*math.Sin(lat)), alfa*e/2)
		u := 2 * (math.Atan(k*math.Pow(math.Tan(lat/2+s45), alfa)/gfi) - s45)
		deltav := -deltaLon * alfa
		s := asinz(math.Cos(ad)*math.Sin(u) + math.Sin(ad)*math.Cos(u)*math.Cos(deltav))
		d := asinz(math.Cos(u) * math.Sin(deltav) / math.Cos(s))
		eps := n * d
		ro := ro0 * math.Pow(math.Tan(s0/2+s45), n) / math.Pow(math.Tan(s/2+s45), n)
		y = ro * math.Cos(eps)
		x = ro * math.Sin(eps)

		if !p.Czech {
			y *= -1
			x *= -1
		}
		return x + p.X0, y + p.Y0
	}

	/* calculate lat/lon from xy */
	inverse = func(x, y float64) (lon, lat float64) {
		x -= p.X0
		y -= p.Y0
		/* revert y, x */
		x, y = y, x
		if !p.Czech {
			y *= -1
			x *= -1
		}
		ro := math.Sqrt(x*x + y*y)
		if ro < epsln {
			// The cone apex; all meridians meet here.
			return p.Long0, p.Lat0
		}
		eps := math.Atan2(y, x)
		d := eps / math.Sin(s0)
		s := 2 * (math.Atan(math.Pow(ro0/ro, 1/n)*math.Tan(s0/2+s45)) - s45)
		u := asinz(math.Cos(ad)*math.Sin(s) - math.Sin(ad)*math.Cos(s)*math.Cos(d))
		deltav := asinz(math.Cos(s) * math.Sin(d) / math.Cos(u))
		lon = adjust_lon(p.Long0 - deltav/alfa)
		tu := math.Tan(u/2 + s45)
		if tu < 0 {
			// u at the south pole; rounding can push the tangent a
			// hair below zero, which Pow cannot raise to 1/alfa.
			tu = 0
		}
		fi1 := u
		lat = u
		for iter := 0; iter < 15; iter++ {
			lat = 2 * (math.Atan(math.Pow(k, -1/alfa)*math.Pow(tu, 1/alfa)*math.Pow((1+e*math.Sin(fi1))/(1-e*math.Sin(fi1)), e/2)) - s45)
			if math.Abs(fi1-lat) < 0.0000000001 {
				break
			}
			fi1 = lat
		}
		return lon, lat
	}
	return
}

func init() {
	registerTrans(Krovak, "Krovak", "krovak")
}
