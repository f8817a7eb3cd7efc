package mapproj

import "math"

// Stere is a stereographic projection in polar, oblique, or equatorial
// aspect. The point antipodal to the projection center is the
// singularity of the non-polar aspects and maps to the false origin;
// for the polar aspects the opposite pole is clamped just inside the
// mappable domain. The ellipsoidal inverse iterates the conformal
// latitude with a fixed cap and keeps the best estimate reached.
func Stere(p *Params) (forward, inverse pointFunc, err error) {
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
	if err = checkLat("lat_ts", p.LatTS); err != nil {
		return nil, nil, err
	}
	ell := p.Ell
	e := ell.E
	sinlat0 := math.Sin(p.Lat0)
	coslat0 := math.Cos(p.Lat0)
	polar := math.Abs(coslat0) <= epsln
	con := sign(p.Lat0) // hemisphere of the polar aspect

	if ell.Sphere {
		if polar && !math.IsNaN(p.LatTS) {
			// Scale set by the standard parallel.
			p.K0 = 0.5 * (1 + con*math.Sin(p.LatTS))
		}

		forward = func(lon, lat float64) (x, y float64) {
			lam := adjust_lon(lon - p.Long0)
			sinlat := math.Sin(lat)
			coslat := math.Cos(lat)
			coslam := math.Cos(lam)
			a := 1 + sinlat0*sinlat + coslat0*coslat*coslam
			if a <= epsln {
				// Antipodal to the projection center.
				return p.X0, p.Y0
			}
			k := 2 * p.K0 / a
			x = p.X0 + ell.A*k*coslat*math.Sin(lam)
			y = p.Y0 + ell.A*k*(coslat0*sinlat-sinlat0*coslat*coslam)
			return x, y
		}

		inverse = func(x, y float64) (lon, lat float64) {
			x -= p.X0
			y -= p.Y0
			rh := math.Hypot(x, y)
			if rh <= epsln {
				return p.Long0, p.Lat0
			}
			c := 2 * math.Atan(rh/(2*ell.A*p.K0))
			sinc := math.Sin(c)
			cosc := math.Cos(c)
			lat = asinz(cosc*sinlat0 + y*sinc*coslat0/rh)
			lon = adjust_lon(p.Long0 + math.Atan2(x*sinc, rh*coslat0*cosc-y*sinlat0*sinc))
			return lon, lat
		}
		return forward, inverse, nil
	}

	cons := math.Sqrt(math.Pow(1+e, 1+e) * math.Pow(1-e, 1-e))

	if polar {
		if !math.IsNaN(p.LatTS) && math.Abs(math.Cos(p.LatTS)) > epsln {
			// Polar aspect with a standard parallel.
			p.K0 = 0.5 * cons * msfnz(e, math.Sin(p.LatTS), math.Cos(p.LatTS)) /
				tsfnz(e, con*p.LatTS, con*math.Sin(p.LatTS))
		}

		forward = func(lon, lat float64) (x, y float64) {
			lam := adjust_lon(lon - p.Long0)
			phi := con * lat
			if phi <= -(halfPi - epsln) {
				// The opposite pole cannot be represented.
				phi = -(halfPi - epsln)
			}
			ts := tsfnz(e, phi, math.Sin(phi))
			rho := 2 * ell.A * p.K0 * ts / cons
			x = p.X0 + rho*math.Sin(lam)
			y = p.Y0 - con*rho*math.Cos(lam)
			return x, y
		}

		inverse = func(x, y float64) (lon, lat float64) {
			x -= p.X0
			y -= p.Y0
			rh := math.Hypot(x, y)
			if rh <= epsln {
				return p.Long0, con * halfPi
			}
			ts := rh * cons / (2 * ell.A * p.K0)
			phi, _ := phi2z(e, ts)
			lat = con * phi
			lon = adjust_lon(p.Long0 + math.Atan2(x, -con*y))
			return lon, lat
		}
		return forward, inverse, nil
	}

	// Oblique and equatorial ellipsoidal aspects work on the conformal
	// sphere.
	ms1 := msfnz(e, sinlat0, coslat0)
	chi0 := 2*math.Atan(ssfn(p.Lat0, sinlat0, e)) - halfPi
	sinChi0 := math.Sin(chi0)
	cosChi0 := math.Cos(chi0)

	forward = func(lon, lat float64) (x, y float64) {
		lam := adjust_lon(lon - p.Long0)
		coslam := math.Cos(lam)
		chi := 2*math.Atan(ssfn(lat, math.Sin(lat), e)) - halfPi
		sinChi := math.Sin(chi)
		cosChi := math.Cos(chi)
		den := cosChi0 * (1 + sinChi0*sinChi + cosChi0*cosChi*coslam)
		if math.Abs(den) <= epsln {
			// Antipodal to the projection center.
			return p.X0, p.Y0
		}
		a := 2 * ell.A * p.K0 * ms1 / den
		x = p.X0 + a*cosChi*math.Sin(lam)
		y = p.Y0 + a*(cosChi0*sinChi-sinChi0*cosChi*coslam)
		return x, y
	}

	inverse = func(x, y float64) (lon, lat float64) {
		x -= p.X0
		y -= p.Y0
		rh := math.Hypot(x, y)
		if rh <= epsln {
			return p.Long0, p.Lat0
		}
		ce := 2 * math.Atan(rh*cosChi0/(2*ell.A*p.K0*ms1))
		sinCe := math.Sin(ce)
		cosCe := math.Cos(ce)
		chi := asinz(cosCe*sinChi0 + y*sinCe*cosChi0/rh)
		lon = adjust_lon(p.Long0 + math.Atan2(x*sinCe, rh*cosChi0*cosCe-y*sinChi0*sinCe))
		// Undo the conformal latitude, capped at 15 rounds.
		lat = chi
		for i := 0; i < 15; i++ {
			esin := e * math.Sin(lat)
			next := 2*math.Atan(math.Tan(fortPi+chi/2)*math.Pow((1+esin)/(1-esin), e/2)) - halfPi
			if math.Abs(next-lat) <= 1e-10 {
				lat = next
				break
			}
			lat = next
		}
		return lon, lat
	}
	return forward, inverse, nil
}

func init() {
	registerTrans(Stere, "Stereographic", "Polar_Stereographic", "Polar Stereographic (variant B)", "stere")
	registerCode(10, "stere")
}
