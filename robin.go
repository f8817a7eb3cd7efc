package mapproj

import "math"

// Robinson lookup tables at 5 degree intervals of latitude. robinX
// scales parallel length, robinY parallel spacing; values between the
// nodes interpolate linearly, which keeps the forward and inverse maps
// exact mirrors of each other.
var robinX = [19]float64{
	1.0000, 0.9986, 0.9954, 0.9900, 0.9822, 0.9730, 0.9600,
	0.9427, 0.9216, 0.8962, 0.8679, 0.8350, 0.7986, 0.7597,
	0.7186, 0.6732, 0.6213, 0.5722, 0.5322,
}

var robinY = [19]float64{
	0.0000, 0.0620, 0.1240, 0.1860, 0.2480, 0.3100, 0.3720,
	0.4340, 0.4958, 0.5571, 0.6176, 0.6769, 0.7346, 0.7903,
	0.8435, 0.8936, 0.9394, 0.9761, 1.0000,
}

const (
	robinXScale = 0.8487
	robinYScale = 1.3523
	robinNode   = 5 * deg2rad
)

func robinInterp(t [19]float64, phi float64) float64 {
	aphi := math.Abs(phi)
	if aphi >= halfPi {
		return t[18]
	}
	pos := aphi / robinNode
	i := int(pos)
	if i >= 18 {
		i = 17
	}
	frac := pos - float64(i)
	return t[i] + (t[i+1]-t[i])*frac
}

// Robin is the Robinson projection on a sphere, defined by tabulated
// coefficients rather than a closed formula.
func Robin(p *Params) (forward, inverse pointFunc, err error) {
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
		x = p.X0 + robinXScale*ell.A*robinInterp(robinX, lat)*lam
		y = p.Y0 + robinYScale*ell.A*robinInterp(robinY, lat)*sign(lat)
		return x, y
	}

	inverse = func(x, y float64) (lon, lat float64) {
		x -= p.X0
		y -= p.Y0
		yy := math.Abs(y) / (robinYScale * ell.A)
		if yy >= robinY[18] {
			lat = sign(y) * halfPi
		} else {
			// Locate the bracketing table interval, then invert the
			// linear segment.
			i := 0
			for i < 17 && robinY[i+1] < yy {
				i++
			}
			frac := (yy - robinY[i]) / (robinY[i+1] - robinY[i])
			lat = sign(y) * (float64(i) + frac) * robinNode
		}
		xl := robinInterp(robinX, lat)
		lon = adjust_lon(p.Long0 + x/(robinXScale*ell.A*xl))
		return lon, lat
	}
	return forward, inverse, nil
}

func init() {
	registerTrans(Robin, "Robinson", "robin")
	registerCode(21, "robin")
}
