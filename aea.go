package mapproj

import "math"

// AEA is an Albers Conical Equal Area projection. Its inverse latitude
// iteration is capped and keeps the best estimate reached.
func AEA(p *Params) (forward, inverse pointFunc, err error) {
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
	if err = requireField("lat_1", p.Lat1); err != nil {
		return nil, nil, errSetup("AEA", "%v", err)
	}
	if math.IsNaN(p.Lat2) {
		p.Lat2 = p.Lat1
	}
	if math.Abs(p.Lat1+p.Lat2) < epsln {
		return nil, nil, errSetup("AEA", "standard parallels cannot be equal and on opposite sides of the equator (lat_1=%g, lat_2=%g)", p.Lat1, p.Lat2)
	}
	ell := p.Ell
	e3 := ell.E

	sinPo := math.Sin(p.Lat1)
	cosPo := math.Cos(p.Lat1)
	con := sinPo
	ms1 := msfnz(e3, sinPo, cosPo)
	qs1 := qsfnz(e3, sinPo)

	sinPo = math.Sin(p.Lat2)
	cosPo = math.Cos(p.Lat2)
	ms2 := msfnz(e3, sinPo, cosPo)
	qs2 := qsfnz(e3, sinPo)

	sinPo = math.Sin(p.Lat0)
	qs0 := qsfnz(e3, sinPo)

	var ns0 float64
	if math.Abs(p.Lat1-p.Lat2) > epsln {
		ns0 = (ms1*ms1 - ms2*ms2) / (qs2 - qs1)
	} else {
		ns0 = con
	}
	c := ms1*ms1 + ns0*qs1
	rh := ell.A * math.Sqrt(c-ns0*qs0) / ns0

	/* Albers Conical Equal Area forward equations--mapping lat,long to x,y
	   -------------------------------------------------------------------*/
	forward = func(lon, lat float64) (x, y float64) {
		sinPhi := math.Sin(lat)
		qs := qsfnz(e3, sinPhi)
		rh1 := ell.A * math.Sqrt(c-ns0*qs) / ns0
		theta := ns0 * adjust_lon(lon-p.Long0)
		x = rh1*math.Sin(theta) + p.X0
		y = rh - rh1*math.Cos(theta) + p.Y0
		return x, y
	}

	inverse = func(x, y float64) (lon, lat float64) {
		var rh1, qs, con, theta float64

		x -= p.X0
		y = rh - y + p.Y0
		if ns0 >= 0 {
			rh1 = math.Sqrt(x*x + y*y)
			con = 1
		} else {
			rh1 = -math.Sqrt(x*x + y*y)
			con = -1
		}
		theta = 0
		if rh1 != 0 {
			theta = math.Atan2(con*x, con*y)
		}
		con = rh1 * ns0 / ell.A
		if ell.Sphere {
			lat = asinz((c - con*con) / (2 * ns0))
		} else {
			qs = (c - con*con) / ns0
			lat = aeaPhi1z(e3, qs)
		}

		lon = adjust_lon(theta/ns0 + p.Long0)
		return lon, lat
	}
	return
}

// aeaPhi1z computes phi1, the latitude for the inverse of the Albers
// Conical Equal-Area projection. The iteration is capped at 25 rounds;
// the best estimate reached is returned either way.
func aeaPhi1z(eccent, qs float64) float64 {
	phi := asinz(0.5 * qs)
	if eccent < epsln {
		return phi
	}

	eccnts := eccent * eccent
	for i := 1; i <= 25; i++ {
		sinphi := math.Sin(phi)
		cosphi := math.Cos(phi)
		con := eccent * sinphi
		com := 1 - con*con
		dphi := 0.5 * com * com / cosphi * (qs/(1-eccnts) - sinphi/com + 0.5/eccent*math.Log((1-con)/(1+con)))
		phi = phi + dphi
		if math.Abs(dphi) <= 1e-7 {
			return phi
		}
	}
	return phi
}

func init() {
	registerTrans(AEA, "Albers_Conic_Equal_Area", "Albers", "aea")
	registerCode(3, "aea")
}
