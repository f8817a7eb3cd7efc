package mapproj

import "math"

// Series coefficients for the New Zealand Map Grid. nzmgA maps
// latitude offsets to isometric latitude offsets (in units of 1e-5
// arc seconds), nzmgB is the complex forward series, nzmgC the complex
// inverse seed and nzmgD the latitude back substitution seed. Index 0
// is unused so the code reads like the published series.
var nzmgA = [11]float64{0,
	0.6399175073, -0.1358797613, 0.063294409, -0.02526853, 0.0117879,
	-0.0055161, 0.0026906, -0.001333, 0.00067, -0.00034,
}

var nzmgB = [7]complex128{0,
	complex(0.7557853228, 0),
	complex(0.249204646, 0.003371507),
	complex(-0.001541739, 0.04105856),
	complex(-0.10162907, 0.01727609),
	complex(-0.26623489, -0.36249218),
	complex(-0.6870983, -1.1651967),
}

var nzmgC = [7]complex128{0,
	complex(1.3231270439, 0),
	complex(-0.577245789, -0.007809598),
	complex(0.508307513, -0.112208952),
	complex(-0.15094762, 0.18200602),
	complex(1.01418179, 1.64497696),
	complex(1.9660549, 2.5127645),
}

var nzmgD = [10]float64{0,
	1.5627014243, 0.5185406398, -0.03333098, -0.1052906, -0.0368594,
	0.007317, 0.01220, 0.00394, -0.0013,
}

const nzmgRad2Sec5 = 648000 / sPi * 1e-5

// NZMG is the New Zealand Map Grid, a sixth order complex polynomial
// conformal projection fitted to the shape of New Zealand. Seeds from
// the published inverse series are refined with Newton steps against
// the forward series, so round trips close to the working precision.
func NZMG(p *Params) (forward, inverse pointFunc, err error) {
	if math.IsNaN(p.Lat0) {
		p.Lat0 = -41 * deg2rad
	}
	if math.IsNaN(p.Long0) {
		p.Long0 = 173 * deg2rad
	}
	if math.IsNaN(p.X0) {
		p.X0 = 2510000
	}
	if math.IsNaN(p.Y0) {
		p.Y0 = 6023150
	}
	ell := p.Ell

	// The polynomial series are only fitted over New Zealand; offsets
	// beyond these bounds are clamped so the series cannot blow up.
	const (
		maxDphi = 5.0
		maxAbsW = 10.0
	)

	forward = func(lon, lat float64) (x, y float64) {
		dphi := (lat - p.Lat0) * nzmgRad2Sec5
		if dphi > maxDphi {
			dphi = maxDphi
		} else if dphi < -maxDphi {
			dphi = -maxDphi
		}
		dpsi := 0.0
		for n := 10; n >= 1; n-- {
			dpsi = (dpsi + nzmgA[n]) * dphi
		}
		z := complex(dpsi, adjust_lon(lon-p.Long0))
		w := complex(0, 0)
		for n := 6; n >= 1; n-- {
			w = (w + nzmgB[n]) * z
		}
		x = p.X0 + imag(w)*ell.A
		y = p.Y0 + real(w)*ell.A
		return x, y
	}

	inverse = func(x, y float64) (lon, lat float64) {
		w := complex((y-p.Y0)/ell.A, (x-p.X0)/ell.A)
		if r := math.Hypot(real(w), imag(w)); r > maxAbsW {
			w = complex(real(w)/r*maxAbsW, imag(w)/r*maxAbsW)
		}
		z := complex(0, 0)
		for n := 6; n >= 1; n-- {
			z = (z + nzmgC[n]) * w
		}
		// Newton steps on the forward series B(z) = w.
		for i := 0; i < 2; i++ {
			num := complex(0, 0)
			den := complex(0, 0)
			for n := 6; n >= 2; n-- {
				num = (num + complex(float64(n-1), 0)*nzmgB[n]) * z
			}
			num = num * z
			for n := 6; n >= 1; n-- {
				den = den*z + complex(float64(n), 0)*nzmgB[n]
			}
			if den == 0 {
				break
			}
			z = (w + num) / den
		}
		// The D and A series are fitted over the same offset range as
		// the forward; out-of-region seeds overflow them.
		dpsi := real(z)
		if dpsi > maxDphi {
			dpsi = maxDphi
		} else if dpsi < -maxDphi {
			dpsi = -maxDphi
		}
		dlon := imag(z)
		if dlon > sPi {
			dlon = sPi
		} else if dlon < -sPi {
			dlon = -sPi
		}
		dphi := 0.0
		for n := 9; n >= 1; n-- {
			dphi = dphi*dpsi + nzmgD[n]
		}
		dphi *= dpsi
		if dphi > maxDphi {
			dphi = maxDphi
		} else if dphi < -maxDphi {
			dphi = -maxDphi
		}
		// Newton steps on the latitude series A(dphi) = dpsi.
		for i := 0; i < 2; i++ {
			f := 0.0
			fp := 0.0
			for n := 10; n >= 1; n-- {
				f = f*dphi + nzmgA[n]
				fp = fp*dphi + float64(n)*nzmgA[n]
			}
			f *= dphi
			if fp == 0 {
				break
			}
			dphi -= (f - dpsi) / fp
		}
		lat = p.Lat0 + dphi/nzmgRad2Sec5
		if lat > halfPi {
			lat = halfPi
		} else if lat < -halfPi {
			lat = -halfPi
		}
		lon = adjust_lon(p.Long0 + dlon)
		return lon, lat
	}
	return forward, inverse, nil
}

func init() {
	registerTrans(NZMG, "New_Zealand_Map_Grid", "nzmg")
}
