package mapproj

import "math"

// Hammer is the Hammer-Aitoff equal-area projection on a sphere. Both
// directions are closed form.
func Hammer(p *Params) (forward, inverse pointFunc, err error) {
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
		cosphi := math.Cos(lat)
		d := math.Sqrt(2 / (1 + cosphi*math.Cos(lam/2)))
		x = p.X0 + 2*ell.A*d*cosphi*math.Sin(lam/2)
		y = p.Y0 + ell.A*d*math.Sin(lat)
		return x, y
	}

	inverse = func(x, y float64) (lon, lat float64) {
		x = (x - p.X0) / ell.A
		y = (y - p.Y0) / ell.A
		zsq := 1 - (x/4)*(x/4) - (y/2)*(y/2)
		if zsq < 0 {
			// Outside the map ellipse.
			zsq = 0
		}
		z := math.Sqrt(zsq)
		lon = adjust_lon(p.Long0 + 2*math.Atan2(z*x, 2*(2*z*z-1)))
		lat = asinz(z * y)
		return lon, lat
	}
	return forward, inverse, nil
}

func init() {
	registerTrans(Hammer, "Hammer_Aitoff", "hammer")
	registerCode(27, "hammer")
}
