package mapproj

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/spf13/cast"
	"gonum.org/v1/gonum/floats/scalar"
)

// Params holds the recognized configuration of one projection: the
// identifier, the ellipsoid shape, and the per-projection scalar options.
// Numeric fields left unset are NaN so each projection can tell a
// missing option from a zero one and apply its own defaults.
type Params struct {
	Name  string // projection name, e.g. "merc"
	Code  int    // legacy numeric projection code; -1 when unset
	Title string

	DatumCode   string
	DatumName   string
	DatumParams []float64 // 3- or 7-parameter shift to WGS84

	// Ellipsoid inputs. Either Ellps names a standard ellipsoid or
	// A with B or Rf describe one directly.
	Ellps   string
	A, B    float64
	Rf      float64
	RA      bool // substitute the authalic sphere
	Ell     Ellipsoid

	Lat0, Lat1, Lat2, LatTS    float64
	Long0, Long1, Long2, LongC float64
	Alpha                      float64
	X0, Y0, K0, K              float64
	Zone                       float64
	UTMSouth                   bool
	Czech                      bool

	ToMeter       float64
	Units         string
	FromGreenwich float64
	Axis          string

	datum *datum
}

// NewParams initializes a Params object with all float fields set to NaN.
func NewParams() *Params {
	p := new(Params)
	v := reflect.ValueOf(p).Elem()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if f.Type().Kind() == reflect.Float64 {
			f.SetFloat(math.NaN())
		}
	}
	p.Code = -1
	p.ToMeter = 1
	p.Ell = Ellipsoid{}
	return p
}

// ParamsFromMap ingests a parameter set supplied as plain structured
// data, for example by a configuration loader or a UI layer. Angular
// values are given in degrees and converted to radians here. An
// unrecognized key or an unconvertible value is a configuration error
// naming the key.
func ParamsFromMap(m map[string]interface{}) (*Params, error) {
	p := NewParams()
	var err error
	for key, val := range m {
		switch strings.ToLower(key) {
		case "proj", "name":
			p.Name, err = cast.ToStringE(val)
		case "code":
			p.Code, err = cast.ToIntE(val)
		case "title":
			p.Title, err = cast.ToStringE(val)
		case "datum":
			p.DatumCode, err = cast.ToStringE(val)
		case "ellps":
			p.Ellps, err = cast.ToStringE(val)
		case "a":
			p.A, err = cast.ToFloat64E(val)
		case "b":
			p.B, err = cast.ToFloat64E(val)
		case "rf":
			p.Rf, err = cast.ToFloat64E(val)
		case "r_a":
			p.RA, err = cast.ToBoolE(val)
		case "lat_0":
			p.Lat0, err = toRadians(val)
		case "lat_1":
			p.Lat1, err = toRadians(val)
		case "lat_2":
			p.Lat2, err = toRadians(val)
		case "lat_ts":
			p.LatTS, err = toRadians(val)
		case "lon_0", "long_0":
			p.Long0, err = toRadians(val)
		case "lon_1", "long_1":
			p.Long1, err = toRadians(val)
		case "lon_2", "long_2":
			p.Long2, err = toRadians(val)
		case "lonc":
			p.LongC, err = toRadians(val)
		case "alpha":
			p.Alpha, err = toRadians(val)
		case "x_0":
			p.X0, err = cast.ToFloat64E(val)
		case "y_0":
			p.Y0, err = cast.ToFloat64E(val)
		case "k_0", "k":
			p.K0, err = cast.ToFloat64E(val)
		case "zone":
			p.Zone, err = cast.ToFloat64E(val)
		case "south":
			p.UTMSouth, err = cast.ToBoolE(val)
		case "czech":
			p.Czech, err = cast.ToBoolE(val)
		case "towgs84":
			var vals []interface{}
			vals, err = cast.ToSliceE(val)
			if err == nil {
				p.DatumParams = make([]float64, len(vals))
				for i, vv := range vals {
					p.DatumParams[i], err = cast.ToFloat64E(vv)
					if err != nil {
						break
					}
				}
			}
		case "to_meter":
			p.ToMeter, err = cast.ToFloat64E(val)
		case "units":
			p.Units, err = cast.ToStringE(val)
			if u, ok := unitDefs[p.Units]; ok {
				p.ToMeter = u.toMeter
			}
		case "from_greenwich":
			p.FromGreenwich, err = toRadians(val)
		case "axis":
			var ax string
			ax, err = cast.ToStringE(val)
			if err == nil {
				err = checkAxis(ax)
				p.Axis = ax
			}
		default:
			return nil, fmt.Errorf("in mapproj.ParamsFromMap: unrecognized parameter %q", key)
		}
		if err != nil {
			return nil, fmt.Errorf("in mapproj.ParamsFromMap: parameter %q: %v", key, err)
		}
	}
	if p.DatumCode != "WGS84" {
		p.DatumCode = strings.ToLower(p.DatumCode)
	}
	return p, nil
}

func toRadians(val interface{}) (float64, error) {
	f, err := cast.ToFloat64E(val)
	return f * deg2rad, err
}

type unitDef struct {
	toMeter float64
}

var unitDefs = map[string]unitDef{
	"m":     {toMeter: 1},
	"ft":    {toMeter: 0.3048},
	"us-ft": {toMeter: 1200. / 3937.},
	"km":    {toMeter: 1000},
}

// Copy returns a deep copy of p.
func (p *Params) Copy() *Params {
	o := new(Params)
	*o = *p
	if p.DatumParams != nil {
		o.DatumParams = make([]float64, len(p.DatumParams))
		copy(o.DatumParams, p.DatumParams)
	}
	if p.datum != nil {
		d := *p.datum
		o.datum = &d
	}
	return o
}

// deriveConstants fills in the values that follow from the declared
// parameters: the datum defaults, the resolved ellipsoid and its
// eccentricities, and the fallback scale, axis, and unit settings.
func (p *Params) deriveConstants() error {
	if p.DatumCode != "" && p.DatumCode != "none" {
		datumDef, ok := datumDefs[p.DatumCode]
		if ok {
			p.DatumParams = make([]float64, len(datumDef.towgs84))
			copy(p.DatumParams, datumDef.towgs84)
			p.Ellps = datumDef.ellipse
			if datumDef.datumName != "" {
				p.DatumName = datumDef.datumName
			} else {
				p.DatumName = p.DatumCode
			}
		}
	}
	if math.IsNaN(p.A) { // do we have an ellipsoid?
		def, ok := ellipsoidDefs[p.Ellps]
		if !ok {
			def = ellipsoidDefs["WGS84"]
		}
		p.A = def.a
		if def.b != 0 {
			p.B = def.b
		}
		if def.rf != 0 {
			p.Rf = def.rf
		}
		p.Ell.Name = def.ellipseName
	}
	if !math.IsNaN(p.Rf) && math.IsNaN(p.B) && p.Rf != 0 {
		p.B = (1.0 - 1.0/p.Rf) * p.A
	}
	p.Ell.A = p.A
	p.Ell.B = p.B
	if !math.IsNaN(p.Rf) {
		p.Ell.Rf = p.Rf
	}
	if math.IsNaN(p.B) {
		p.Ell.B = 0 // sphere
	}
	if err := p.Ell.derive(); err != nil {
		return err
	}
	if p.RA {
		p.Ell.toAuthalicSphere()
	}
	p.A = p.Ell.A
	p.B = p.Ell.B
	if math.IsNaN(p.K0) {
		if !math.IsNaN(p.K) {
			p.K0 = p.K
		} else {
			p.K0 = 1.0
		}
	}
	if math.IsNaN(p.ToMeter) || p.ToMeter == 0 {
		p.ToMeter = 1
	}
	if p.Axis == "" {
		p.Axis = axisENU
	}
	if err := checkAxis(p.Axis); err != nil {
		return fmt.Errorf("in mapproj: %v", err)
	}
	if p.datum == nil {
		p.datum = p.getDatum()
	}
	return nil
}

// Equal determines whether parameter sets p and p2 are equal to within
// ulp floating point units in the last place.
func (p *Params) Equal(p2 *Params, ulp uint) bool {
	if p == nil || p2 == nil {
		return p == p2
	}
	v1 := reflect.ValueOf(p).Elem()
	v2 := reflect.ValueOf(p2).Elem()
	return equalValue(v1, v2, ulp)
}

func equalValue(v1, v2 reflect.Value, ulp uint) bool {
	for i := 0; i < v1.NumField(); i++ {
		f1 := v1.Field(i)
		f2 := v2.Field(i)
		switch f1.Type().Kind() {
		case reflect.Float64:
			fv1 := f1.Float()
			fv2 := f2.Float()
			if math.IsNaN(fv1) != math.IsNaN(fv2) {
				return false
			}
			if !math.IsNaN(fv1) && !scalar.EqualWithinULP(fv1, fv2, ulp) {
				return false
			}
		case reflect.Int:
			if f1.Int() != f2.Int() {
				return false
			}
		case reflect.Bool:
			if f1.Bool() != f2.Bool() {
				return false
			}
		case reflect.String:
			if f1.String() != f2.String() {
				return false
			}
		case reflect.Struct:
			if !equalValue(f1, f2, ulp) {
				return false
			}
		case reflect.Ptr:
			if f1.IsNil() != f2.IsNil() {
				return false
			}
			if !f1.IsNil() && !equalValue(reflect.Indirect(f1), reflect.Indirect(f2), ulp) {
				return false
			}
		case reflect.Slice:
			if f1.Len() != f2.Len() {
				return false
			}
			for j := 0; j < f1.Len(); j++ {
				if !scalar.EqualWithinULP(f1.Index(j).Float(), f2.Index(j).Float(), ulp) {
					return false
				}
			}
		default:
			panic(fmt.Errorf("in mapproj.Params.Equal: unsupported field kind %s", f1.Type().Kind()))
		}
	}
	return true
}

// Parameter validation helpers shared by projection setup functions.

func checkLat(field string, v float64) error {
	if !math.IsNaN(v) && math.Abs(v) > halfPi+epsln {
		return fmt.Errorf("parameter %s out of domain: |%g| > pi/2", field, v)
	}
	return nil
}

func checkLon(field string, v float64) error {
	if !math.IsNaN(v) && math.Abs(v) > twoPi {
		return fmt.Errorf("parameter %s out of domain: |%g| > 2*pi", field, v)
	}
	return nil
}

func requireField(field string, v float64) error {
	if math.IsNaN(v) {
		return fmt.Errorf("required parameter %s is missing", field)
	}
	return nil
}
