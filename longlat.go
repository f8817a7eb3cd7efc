package mapproj

// LongLat is a longitude-latitude (i.e., no projection) projection.
func LongLat(p *Params) (forward, inverse pointFunc, err error) {
	identity := func(x, y float64) (float64, float64) {
		return x, y
	}
	forward = identity
	inverse = identity
	return
}

func init() {
	registerTrans(LongLat, "longlat", "latlong", "identity")
	registerCode(0, "longlat")
}
