package mapproj

import "math"

// Eqc is the Equidistant Cylindrical (Plate Carrée) projection on a
// sphere, with an optional standard parallel lat_ts setting the scale
// of the parallels.
func Eqc(p *Params) (forward, inverse pointFunc, err error) {
	if math.IsNaN(p.Long0) {
		p.Long0 = 0
	}
	if math.IsNaN(p.Lat0) {
		p.Lat0 = 0
	}
	if math.IsNaN(p.LatTS) {
		p.LatTS = 0
	}
	if math.IsNaN(p.X0) {
		p.X0 = 0
	}
	if math.IsNaN(p.Y0) {
		p.Y0 = 0
	}
	if err = checkLat("lat_ts", p.LatTS); err != nil {
		return nil, nil, err
	}
	ell := p.Ell
	rc := math.Cos(p.LatTS)

	forward = func(lon, lat float64) (x, y float64) {
		lam := adjust_lon(lon - p.Long0)
		phi := adjust_lat(lat - p.Lat0)
		x = p.X0 + ell.A*lam*rc
		y = p.Y0 + ell.A*phi
		return x, y
	}

	inverse = func(x, y float64) (lon, lat float64) {
		x -= p.X0
		y -= p.Y0
		lat = adjust_lat(p.Lat0 + y/ell.A)
		lon = adjust_lon(p.Long0 + x/(ell.A*rc))
		return lon, lat
	}
	return forward, inverse, nil
}

func init() {
	registerTrans(Eqc, "Equidistant_Cylindrical", "eqc", "Equirectangular", "equi")
	registerCode(17, "eqc")
}
