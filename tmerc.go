package mapproj

import "math"

// TMerc is a transverse Mercator projection. Points 90° of longitude
// away from the central meridian map to infinity in the spherical form;
// they are clamped just inside the mappable hemisphere. The ellipsoidal
// inverse iterates the footpoint latitude with a fixed cap and keeps
// the best estimate on non-convergence.
func TMerc(p *Params) (forward, inverse pointFunc, err error) {
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
	if err = checkLat("lat_0", p.Lat0); err != nil {
		return nil, nil, err
	}
	if err = checkLon("lon_0", p.Long0); err != nil {
		return nil, nil, err
	}
	if p.K0 <= 0 {
		return nil, nil, errSetup("TMerc", "scale k_0 must be positive (k_0=%g)", p.K0)
	}
	ell := p.Ell

	e0 := e0fn(ell.Es)
	e1 := e1fn(ell.Es)
	e2 := e2fn(ell.Es)
	e3 := e3fn(ell.Es)
	ml0 := ell.A * mlfn(e0, e1, e2, e3, p.Lat0)

	forward = func(lon, lat float64) (x, y float64) {
		deltaLon := adjust_lon(lon - p.Long0)
		sinPhi := math.Sin(lat)
		cosPhi := math.Cos(lat)

		if ell.Sphere {
			b := cosPhi * math.Sin(deltaLon)
			if math.Abs(math.Abs(b)-1) < 1e-10 {
				// 90° from the central meridian; clamp just inside.
				b = sign(b) * (1 - 1e-10)
			}
			x = 0.5 * ell.A * p.K0 * math.Log((1+b)/(1-b))
			con := math.Acos(cosPhi * math.Cos(deltaLon) / math.Sqrt(1-b*b))
			if lat < 0 {
				con = -con
			}
			y = ell.A * p.K0 * (con - p.Lat0)
			return x, y
		}

		al := cosPhi * deltaLon
		als := al * al
		c := ell.Ep2 * cosPhi * cosPhi
		tq := math.Tan(lat)
		t := tq * tq
		con := 1 - ell.Es*sinPhi*sinPhi
		n := ell.A / math.Sqrt(con)
		ml := ell.A * mlfn(e0, e1, e2, e3, lat)

		x = p.K0*n*al*(1+als/6*(1-t+c+als/20*(5-18*t+t*t+72*c-58*ell.Ep2))) + p.X0
		y = p.K0*(ml-ml0+n*tq*(als*(0.5+als/24*(5-t+9*c+4*c*c+als/30*(61-58*t+t*t+600*c-330*ell.Ep2))))) + p.Y0
		return x, y
	}

	inverse = func(x, y float64) (lon, lat float64) {
		if ell.Sphere {
			f := math.Exp(x / (ell.A * p.K0))
			g := 0.5 * (f - 1/f)
			temp := p.Lat0 + y/(ell.A*p.K0)
			h := math.Cos(temp)
			con := math.Sqrt((1 - h*h) / (1 + g*g))
			lat = asinz(con)
			if temp < 0 {
				lat = -lat
			}
			if g == 0 && h == 0 {
				lon = p.Long0
			} else {
				lon = adjust_lon(math.Atan2(g, h) + p.Long0)
			}
			return lon, lat
		}

		x -= p.X0
		y -= p.Y0

		con := (ml0 + y/p.K0) / ell.A
		phi := con
		const maxIter = 6
		for i := 0; ; i++ {
			deltaPhi := ((con + e1*math.Sin(2*phi) - e2*math.Sin(4*phi) + e3*math.Sin(6*phi)) / e0) - phi
			phi += deltaPhi
			if math.Abs(deltaPhi) <= epsln {
				break
			}
			if i >= maxIter {
				// Keep the best footpoint estimate reached.
				break
			}
		}
		if math.Abs(phi) < halfPi {
			sinPhi := math.Sin(phi)
			cosPhi := math.Cos(phi)
			tanPhi := math.Tan(phi)
			c := ell.Ep2 * cosPhi * cosPhi
			cs := c * c
			t := tanPhi * tanPhi
			ts := t * t
			con = 1 - ell.Es*sinPhi*sinPhi
			n := ell.A / math.Sqrt(con)
			r := n * (1 - ell.Es) / con
			d := x / (n * p.K0)
			ds := d * d
			lat = phi - (n*tanPhi*ds/r)*(0.5-ds/24*(5+3*t+10*c-4*cs-9*ell.Ep2-ds/30*(61+90*t+298*c+45*ts-252*ell.Ep2-3*cs)))
			lon = adjust_lon(p.Long0 + (d*(1-ds/6*(1+2*t+c-ds/20*(5-2*c+28*t-3*cs+8*ell.Ep2+24*ts)))/cosPhi))
		} else {
			lat = halfPi * sign(y)
			lon = p.Long0
		}
		return lon, lat
	}
	return
}

func init() {
	registerTrans(TMerc, "Transverse_Mercator", "Transverse Mercator", "tmerc")
	registerCode(9, "tmerc")
}
