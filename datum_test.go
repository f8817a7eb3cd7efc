package mapproj

import (
	"math"
	"testing"
)

func testDatum(t *testing.T, m map[string]interface{}) *datum {
	t.Helper()
	p, err := ParamsFromMap(m)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.deriveConstants(); err != nil {
		t.Fatal(err)
	}
	return p.datum
}

func TestGeocentricRoundTrip(t *testing.T) {
	d := testDatum(t, map[string]interface{}{"proj": "longlat", "datum": "WGS84"})
	pts := [][3]float64{
		{0, 0, 0},
		{10 * deg2rad, 52 * deg2rad, 100},
		{-170 * deg2rad, -85 * deg2rad, -30},
		{120 * deg2rad, 89.9 * deg2rad, 2000},
	}
	for _, pt := range pts {
		x, y, z := d.toGeocentric(pt[0], pt[1], pt[2])
		lon, lat, h := d.fromGeocentric(x, y, z)
		if math.Abs(adjust_lon(lon-pt[0])) > 1e-11 || math.Abs(lat-pt[1]) > 1e-11 {
			t.Errorf("(%v, %v): round trip gave (%v, %v)", pt[0], pt[1], lon, lat)
		}
		if math.Abs(h-pt[2]) > 1e-4 {
			t.Errorf("(%v, %v): height %v, want %v", pt[0], pt[1], h, pt[2])
		}
	}
}

func TestGeocentricPolarAxis(t *testing.T) {
	d := testDatum(t, map[string]interface{}{"proj": "longlat", "datum": "WGS84"})
	x, y, z := d.toGeocentric(1.0, halfPi, 0)
	if math.Abs(x) > 1e-6 || math.Abs(y) > 1e-6 {
		t.Errorf("north pole is off axis: (%v, %v, %v)", x, y, z)
	}
	_, lat, _ := d.fromGeocentric(0, 0, z)
	if math.Abs(lat-halfPi) > 1e-11 {
		t.Errorf("latitude on the polar axis = %v, want %v", lat, halfPi)
	}
	// The geocenter itself must still produce a finite answer.
	lon, lat, h := d.fromGeocentric(0, 0, 0)
	for _, v := range []float64{lon, lat, h} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("geocenter produced a non-finite result (%v, %v, %v)", lon, lat, h)
		}
	}
}

func TestHelmertRoundTrip(t *testing.T) {
	for _, code := range []string{"ire65", "potsdam", "ggrs87", "nzgd49", "osgb36"} {
		d := testDatum(t, map[string]interface{}{"proj": "longlat", "datum": code})
		if d.typ != datum3Param && d.typ != datum7Param {
			t.Errorf("%s: datum type %v, want a Helmert shift", code, d.typ)
			continue
		}
		x, y, z := 3875000.0, 116000.0, 5047000.0
		wx, wy, wz := d.toWGS84(x, y, z)
		bx, by, bz := d.fromWGS84(wx, wy, wz)
		// The two directions share one linearized rotation matrix, so
		// a round trip closes only to second order in the rotations.
		if math.Abs(bx-x) > 0.01 || math.Abs(by-y) > 0.01 || math.Abs(bz-z) > 0.01 {
			t.Errorf("%s: round trip gave (%v, %v, %v), want (%v, %v, %v)",
				code, bx, by, bz, x, y, z)
		}
	}
}

func TestDatumShiftIdenticalDatums(t *testing.T) {
	d1 := testDatum(t, map[string]interface{}{"proj": "longlat", "datum": "nad83"})
	d2 := testDatum(t, map[string]interface{}{"proj": "longlat", "datum": "nad83"})
	lon, lat, z := datumShift(d1, d2, 0.5, -0.3, 10)
	if lon != 0.5 || lat != -0.3 || z != 10 {
		t.Errorf("identical datums shifted the point to (%v, %v, %v)", lon, lat, z)
	}
}

func TestDatumShiftNoneSkips(t *testing.T) {
	dn := testDatum(t, map[string]interface{}{"proj": "longlat", "a": 6378137.0, "b": 6356752.3})
	dw := testDatum(t, map[string]interface{}{"proj": "longlat", "datum": "potsdam"})
	if dn.typ != datumNone {
		t.Fatalf("datum type %v, want none", dn.typ)
	}
	lon, lat, z := datumShift(dn, dw, 0.2, 0.9, 0)
	if lon != 0.2 || lat != 0.9 || z != 0 {
		t.Errorf("shift against datum none moved the point to (%v, %v, %v)", lon, lat, z)
	}
}

func TestDatumShiftDisplacement(t *testing.T) {
	src := testDatum(t, map[string]interface{}{"proj": "longlat", "datum": "ire65"})
	dst := testDatum(t, map[string]interface{}{"proj": "longlat", "datum": "WGS84"})
	lon0, lat0 := -6.26*deg2rad, 53.35*deg2rad
	lon, lat, _ := datumShift(src, dst, lon0, lat0, 0)
	dist := math.Hypot((lon-lon0)*math.Cos(lat0), lat-lat0) * 6371000
	if dist < 10 || dist > 1000 {
		t.Errorf("Ireland 1965 to WGS84 displaces %v m, which is implausible", dist)
	}
	// Shifting back must invert the displacement.
	blon, blat, _ := datumShift(dst, src, lon, lat, 0)
	if math.Abs(blon-lon0) > 1e-9 || math.Abs(blat-lat0) > 1e-9 {
		t.Errorf("round trip gave (%v, %v), want (%v, %v)", blon, blat, lon0, lat0)
	}
}
