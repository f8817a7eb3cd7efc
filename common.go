package mapproj

import "math"

const (
	epsln = 1.0e-10
	twoPi = math.Pi * 2
	// sPi is slightly greater than Math.Pi, so values that exceed the
	// -180..180 degree range by a tiny amount don't get wrapped. This
	// prevents points that have drifted from their original location
	// along the 180th meridian (due to floating point error) from
	// changing their sign.
	sPi    = 3.14159265359
	halfPi = math.Pi / 2
	fortPi = math.Pi / 4

	deg2rad = 0.01745329251994329577
	r2d     = 57.29577951308232088
)

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

func adjust_lon(x float64) float64 {
	if math.Abs(x) <= sPi {
		return x
	}
	return x - (sign(x) * twoPi)
}

func adjust_lat(x float64) float64 {
	if math.Abs(x) < halfPi {
		return x
	}
	return x - (sign(x) * math.Pi)
}

func msfnz(eccent, sinphi, cosphi float64) float64 {
	var con = eccent * sinphi
	return cosphi / (math.Sqrt(1 - con*con))
}

func tsfnz(eccent, phi, sinphi float64) float64 {
	var con = eccent * sinphi
	var com = 0.5 * eccent
	con = math.Pow(((1 - con) / (1 + con)), com)
	return (math.Tan(0.5*(halfPi-phi)) / con)
}

// phi2z computes the latitude angle from the isometric latitude
// parameter ts. It iterates to a fixed tolerance with a hard cap; if
// the cap is hit the best estimate reached so far is returned along
// with converged == false.
func phi2z(eccent, ts float64) (phi float64, converged bool) {
	var eccnth = 0.5 * eccent
	phi = halfPi - 2*math.Atan(ts)
	for i := 0; i <= 15; i++ {
		con := eccent * math.Sin(phi)
		dphi := halfPi - 2*math.Atan(ts*(math.Pow(((1-con)/(1+con)), eccnth))) - phi
		phi += dphi
		if math.Abs(dphi) <= 0.0000000001 {
			return phi, true
		}
	}
	return phi, false
}

func e0fn(x float64) float64 {
	return (1 - 0.25*x*(1+x/16*(3+1.25*x)))
}

func e1fn(x float64) float64 {
	return (0.375 * x * (1 + 0.25*x*(1+0.46875*x)))
}

func e2fn(x float64) float64 {
	return (0.05859375 * x * x * (1 + 0.75*x))
}

func e3fn(x float64) float64 {
	return (x * x * x * (35 / 3072))
}

func mlfn(e0, e1, e2, e3, phi float64) float64 {
	return (e0*phi - e1*math.Sin(2*phi) + e2*math.Sin(4*phi) - e3*math.Sin(6*phi))
}

// imlfn inverts mlfn by Newton iteration, capped at 15 steps. The best
// estimate reached is always returned.
func imlfn(ml, e0, e1, e2, e3 float64) (phi float64, converged bool) {
	phi = ml / e0
	for i := 0; i < 15; i++ {
		dphi := (ml - (e0*phi - e1*math.Sin(2*phi) + e2*math.Sin(4*phi) - e3*math.Sin(6*phi))) /
			(e0 - 2*e1*math.Cos(2*phi) + 4*e2*math.Cos(4*phi) - 6*e3*math.Cos(6*phi))
		phi += dphi
		if math.Abs(dphi) <= 1e-10 {
			return phi, true
		}
	}
	return phi, false
}

func asinz(x float64) float64 {
	if math.Abs(x) > 1 {
		if x > 1 {
			x = 1
		} else {
			x = -1
		}
	}
	return math.Asin(x)
}

func qsfnz(eccent, sinphi float64) float64 {
	var con float64
	if eccent > 1.0e-7 {
		con = eccent * sinphi
		return ((1 - eccent*eccent) * (sinphi/(1-con*con) - (0.5/eccent)*math.Log((1-con)/(1+con))))
	}
	return (2 * sinphi)
}

// ssfn is the conformal latitude kernel used by the oblique
// stereographic forms.
func ssfn(phi, sinphi, eccent float64) float64 {
	sinphi *= eccent
	return math.Tan(0.5*(halfPi+phi)) * math.Pow((1-sinphi)/(1+sinphi), 0.5*eccent)
}

func srat(esinp, exp float64) float64 {
	return math.Pow((1-esinp)/(1+esinp), exp)
}

// Coefficients relating authalic and geodetic latitude.
const (
	authP00 = 0.33333333333333333333
	authP01 = 0.17222222222222222222
	authP02 = 0.10257936507936507936
	authP10 = 0.06388888888888888888
	authP11 = 0.06640211640211640211
	authP20 = 0.01641501294219154443
)

func authset(es float64) [3]float64 {
	var apa [3]float64
	t := es * es
	apa[0] = es*authP00 + t*authP01 + t*es*authP02
	apa[1] = t*authP10 + t*es*authP11
	apa[2] = t * es * authP20
	return apa
}

func authlat(beta float64, apa [3]float64) float64 {
	t := beta + beta
	return beta + apa[0]*math.Sin(t) + apa[1]*math.Sin(t+t) + apa[2]*math.Sin(3*t)
}
