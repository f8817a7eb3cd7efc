package mapproj

import "math"

const polyMaxIter = 20

// Poly is the American Polyconic projection. The ellipsoidal inverse
// solves for the footpoint latitude with a bounded Newton iteration and
// keeps the best estimate when it fails to settle.
func Poly(p *Params) (forward, inverse pointFunc, err error) {
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
			if math.Abs(lat) <= epsln {
				return p.X0 + ell.A*lam, p.Y0 - ell.A*p.Lat0
			}
			e := lam * math.Sin(lat)
			cot := 1 / math.Tan(lat)
			x = p.X0 + ell.A*cot*math.Sin(e)
			y = p.Y0 + ell.A*(lat-p.Lat0+cot*(1-math.Cos(e)))
			return x, y
		}
		inverse = func(x, y float64) (lon, lat float64) {
			x -= p.X0
			y -= p.Y0
			al := p.Lat0 + y/ell.A
			if math.Abs(al) <= epsln {
				// A point on the equator; the iteration's cotangent
				// terms are singular there.
				return adjust_lon(p.Long0 + x/ell.A), 0
			}
			b := al*al + (x/ell.A)*(x/ell.A)
			phi := al
			var dphi float64
			for i := 0; i < polyMaxIter; i++ {
				tanp := math.Tan(phi)
				dphi = -(al*(phi*tanp+1) - phi - 0.5*(phi*phi+b)*tanp) /
					((phi-al)/tanp - 1)
				phi += dphi
				if math.Abs(dphi) <= epsln {
					break
				}
			}
			lat = phi
			c := math.Sin(lat)
			if math.Abs(c) < epsln {
				lon = adjust_lon(p.Long0 + x/ell.A)
			} else {
				lon = adjust_lon(p.Long0 + asinz(x*math.Tan(lat)/ell.A)/math.Sin(lat))
			}
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
		if math.Abs(lat) <= epsln {
			return p.X0 + ell.A*lam, p.Y0 - ml0
		}
		sinphi := math.Sin(lat)
		cosphi := math.Cos(lat)
		ml := ell.A * mlfn(e0, e1, e2, e3, lat)
		ms := msfnz(ell.E, sinphi, cosphi)
		con := lam * sinphi
		x = p.X0 + ell.A*ms*math.Sin(con)/sinphi
		y = p.Y0 + ml - ml0 + ell.A*ms*(1-math.Cos(con))/sinphi
		return x, y
	}

	inverse = func(x, y float64) (lon, lat float64) {
		x -= p.X0
		y -= p.Y0
		al := (ml0 + y) / ell.A
		r := x / ell.A
		if math.Abs(al) <= epsln {
			// On the equator the iteration divides by sin 2φ.
			return adjust_lon(p.Long0 + r), 0
		}
		b := al*al + r*r
		phi := al
		c := 0.0
		var dphi float64
		for i := 0; i < polyMaxIter; i++ {
			sp := math.Sin(phi)
			sin2ph := math.Sin(2 * phi)
			c = math.Tan(phi) * math.Sqrt(1-ell.Es*sp*sp)
			ml := mlfn(e0, e1, e2, e3, phi)
			mlp := e0 - 2*e1*math.Cos(2*phi) + 4*e2*math.Cos(4*phi) - 6*e3*math.Cos(6*phi)
			con1 := 2*ml + c*(ml*ml+b) - 2*al*(c*ml+1)
			con2 := ell.Es * sin2ph * (ml*ml + b - 2*al*ml) / (2 * c)
			con3 := 2*(al-ml)*(c*mlp-2/sin2ph) - 2*mlp
			dphi = con1 / (con2 + con3)
			phi += dphi
			if math.Abs(dphi) <= epsln {
				break
			}
		}
		lat = phi
		sp := math.Sin(lat)
		if math.Abs(sp) < epsln {
			lon = adjust_lon(p.Long0 + r)
		} else {
			lon = adjust_lon(p.Long0 + asinz(r*c)/sp)
		}
		return lon, lat
	}
	return forward, inverse, nil
}

func init() {
	registerTrans(Poly, "Polyconic", "poly", "American_Polyconic")
	registerCode(6, "poly")
}
