package mapproj

import (
	"math"
	"testing"
)

func TestNewEllipsoid(t *testing.T) {
	ell, err := NewEllipsoid(6378137, 6356752.314245179)
	if err != nil {
		t.Fatal(err)
	}
	if ell.Sphere {
		t.Error("WGS84 shape reported as a sphere")
	}
	if math.Abs(ell.Es-0.00669437999014) > 1e-11 {
		t.Errorf("Es = %v, want ~0.00669437999014", ell.Es)
	}
	if math.Abs(ell.E-math.Sqrt(ell.Es)) > 1e-15 {
		t.Errorf("E = %v != sqrt(Es)", ell.E)
	}

	sph, err := NewEllipsoid(6370997, 6370997)
	if err != nil {
		t.Fatal(err)
	}
	if !sph.Sphere || sph.Es != 0 || sph.E != 0 {
		t.Errorf("equal axes did not derive a sphere: %+v", sph)
	}

	if _, err := NewEllipsoid(0, 0); err == nil {
		t.Error("zero semi-major axis accepted")
	}
	if _, err := NewEllipsoid(6378137, -1); err == nil {
		t.Error("negative semi-minor axis accepted")
	}
}

func TestNewEllipsoidRf(t *testing.T) {
	ell, err := NewEllipsoidRf(6378137, 298.257223563)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(ell.B-6356752.314245179) > 1e-6 {
		t.Errorf("B = %v, want 6356752.314245179", ell.B)
	}
	sph, err := NewEllipsoidRf(6370997, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !sph.Sphere {
		t.Error("rf == 0 did not derive a sphere")
	}
}

func TestEllipsoidByName(t *testing.T) {
	ell, err := EllipsoidByName("bessel")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(ell.A-6377397.155) > 1e-6 {
		t.Errorf("bessel A = %v, want 6377397.155", ell.A)
	}
	if _, err := EllipsoidByName("atlantis"); err == nil {
		t.Error("unknown ellipsoid name accepted")
	}
}

func TestAuthalicSphere(t *testing.T) {
	p, err := ParamsFromMap(map[string]interface{}{
		"proj": "merc", "ellps": "WGS84", "r_a": true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := p.deriveConstants(); err != nil {
		t.Fatal(err)
	}
	if !p.Ell.Sphere {
		t.Fatal("r_a did not produce a sphere")
	}
	// The WGS84 authalic radius.
	if math.Abs(p.Ell.A-6371007.18) > 0.01 {
		t.Errorf("authalic radius = %v, want ~6371007.18", p.Ell.A)
	}
}

func TestCommonHelpers(t *testing.T) {
	if got := adjust_lon(math.Pi + 0.5); math.Abs(got-(0.5-math.Pi)) > 1e-12 {
		t.Errorf("adjust_lon(pi+0.5) = %v, want %v", got, 0.5-math.Pi)
	}
	if got := adjust_lon(0.3); got != 0.3 {
		t.Errorf("adjust_lon(0.3) = %v, want 0.3", got)
	}
	if got := asinz(1.0000001); got != halfPi {
		t.Errorf("asinz(1+eps) = %v, want %v", got, halfPi)
	}
	if got := asinz(-2); got != -halfPi {
		t.Errorf("asinz(-2) = %v, want %v", got, -halfPi)
	}

	// phi2z inverts tsfnz.
	e := 0.0818191908426215
	for _, phi := range []float64{-1.2, -0.3, 0, 0.5, 1.4} {
		ts := tsfnz(e, phi, math.Sin(phi))
		got, converged := phi2z(e, ts)
		if !converged {
			t.Errorf("phi2z(%v) did not converge", ts)
		}
		if math.Abs(got-phi) > 1e-9 {
			t.Errorf("phi2z(tsfnz(%v)) = %v", phi, got)
		}
	}

	// imlfn inverts mlfn.
	es := e * e
	e0, e1, e2, e3 := e0fn(es), e1fn(es), e2fn(es), e3fn(es)
	for _, phi := range []float64{-1.2, -0.3, 0, 0.5, 1.4} {
		ml := mlfn(e0, e1, e2, e3, phi)
		got, converged := imlfn(ml, e0, e1, e2, e3)
		if !converged {
			t.Errorf("imlfn(%v) did not converge", ml)
		}
		if math.Abs(got-phi) > 1e-9 {
			t.Errorf("imlfn(mlfn(%v)) = %v", phi, got)
		}
	}

	// authlat inverts the authalic latitude series.
	apa := authset(es)
	qp := qsfnz(e, 1)
	for _, phi := range []float64{-1.2, -0.3, 0, 0.5, 1.4} {
		beta := math.Asin(qsfnz(e, math.Sin(phi)) / qp)
		if got := authlat(beta, apa); math.Abs(got-phi) > 1e-7 {
			t.Errorf("authlat(beta(%v)) = %v", phi, got)
		}
	}
}
