package mapproj

import "math"

// UTM is a universal transverse Mercator projection.
func UTM(p *Params) (forward, inverse pointFunc, err error) {
	if math.IsNaN(p.Zone) {
		return nil, nil, errSetup("UTM", "required parameter zone is missing")
	}
	if p.Zone < 1 || p.Zone > 60 {
		return nil, nil, errSetup("UTM", "zone out of domain: %g not in [1,60]", p.Zone)
	}
	p.Lat0 = 0
	p.Long0 = ((6 * math.Abs(p.Zone)) - 183) * deg2rad
	p.X0 = 500000
	if p.UTMSouth {
		p.Y0 = 10000000
	} else {
		p.Y0 = 0
	}
	p.K0 = 0.9996

	return TMerc(p)
}

func init() {
	registerTrans(UTM, "Universal Transverse Mercator System", "utm")
	registerCode(1, "utm")
}
