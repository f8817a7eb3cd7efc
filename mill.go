package mapproj

import "math"

// Mill is the Miller Cylindrical projection on a sphere.
func Mill(p *Params) (forward, inverse pointFunc, err error) {
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
		x = p.X0 + ell.A*lam
		y = p.Y0 + ell.A*1.25*math.Log(math.Tan(fortPi+lat/2.5))
		return x, y
	}

	inverse = func(x, y float64) (lon, lat float64) {
		x -= p.X0
		y -= p.Y0
		lon = adjust_lon(p.Long0 + x/ell.A)
		lat = 2.5 * (math.Atan(math.Exp(0.8*y/ell.A)) - fortPi)
		return lon, lat
	}
	return forward, inverse, nil
}

func init() {
	registerTrans(Mill, "Miller_Cylindrical", "mill")
	registerCode(18, "mill")
}
