package mapproj

import "math"

// VanDG is the Van der Grinten (I) projection on a sphere. The inverse
// follows the closed cubic solution; points on the central meridian and
// the equator take their simpler limiting forms.
func VanDG(p *Params) (forward, inverse pointFunc, err error) {
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
	r := ell.A

	forward = func(lon, lat float64) (x, y float64) {
		lam := adjust_lon(lon - p.Long0)
		if math.Abs(lat) <= epsln {
			return p.X0 + r*lam, p.Y0
		}
		theta := asinz(2 * math.Abs(lat/sPi))
		if math.Abs(lam) <= epsln || math.Abs(math.Abs(lat)-halfPi) <= epsln {
			x = p.X0
			if lat >= 0 {
				y = p.Y0 + sPi*r*math.Tan(0.5*theta)
			} else {
				y = p.Y0 - sPi*r*math.Tan(0.5*theta)
			}
			return x, y
		}
		al := 0.5 * math.Abs(sPi/lam-lam/sPi)
		asq := al * al
		sinth := math.Sin(theta)
		costh := math.Cos(theta)
		g := costh / (sinth + costh - 1)
		gsq := g * g
		m := g * (2/sinth - 1)
		msq := m * m
		// Rounding can push the radicands a hair below zero near the
		// outer meridian.
		rad := asq*(g-msq)*(g-msq) - (msq+asq)*(gsq-msq)
		if rad < 0 {
			rad = 0
		}
		con := sPi * r * (al*(g-msq) + math.Sqrt(rad)) / (msq + asq)
		if lam < 0 {
			con = -con
		}
		x = p.X0 + con
		q := asq + g
		rad = (msq+asq)*(asq+1) - q*q
		if rad < 0 {
			rad = 0
		}
		con = sPi * r * (m*q - al*math.Sqrt(rad)) / (msq + asq)
		if lat >= 0 {
			y = p.Y0 + con
		} else {
			y = p.Y0 - con
		}
		return x, y
	}

	inverse = func(x, y float64) (lon, lat float64) {
		x -= p.X0
		y -= p.Y0
		if math.Abs(x) < epsln && math.Abs(y) < epsln {
			return p.Long0, 0
		}
		con := sPi * r
		xx := x / con
		yy := y / con
		xys := xx*xx + yy*yy
		c1 := -math.Abs(yy) * (1 + xys)
		c2 := c1 - 2*yy*yy + xx*xx
		c3 := -2*c1 + 1 + 2*yy*yy + xys*xys
		d := yy*yy/c3 + (2*c2*c2*c2/c3/c3/c3-9*c1*c2/c3/c3)/27
		a1 := (c1 - c2*c2/3/c3) / c3
		if a1 > 0 {
			a1 = 0
		}
		m1 := 2 * math.Sqrt(-a1/3)
		con = 3 * d / (a1 * m1)
		if math.Abs(con) > 1 || math.IsNaN(con) {
			con = sign(con)
		}
		th1 := math.Acos(con) / 3
		if y >= 0 {
			lat = (-m1*math.Cos(th1+sPi/3) - c2/3/c3) * sPi
		} else {
			lat = -(-m1*math.Cos(th1+sPi/3) - c2/3/c3) * sPi
		}
		if math.Abs(xx) < epsln {
			lon = p.Long0
			return lon, lat
		}
		rad := 1 + 2*(xx*xx-yy*yy) + xys*xys
		if rad < 0 {
			rad = 0
		}
		lon = adjust_lon(p.Long0 + sPi*(xys-1+math.Sqrt(rad))/(2*xx))
		return lon, lat
	}
	return forward, inverse, nil
}

func init() {
	registerTrans(VanDG, "Van_der_Grinten_I", "vandg", "VanDerGrinten")
	registerCode(19, "vandg")
}
