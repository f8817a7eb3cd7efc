package mapproj

import (
	"context"
	"fmt"
	"math"
	"strings"

	"golang.org/x/sync/errgroup"
)

// convertChunk is the number of points a Converter processes per chunk.
// Chunking is purely a locality concern; results are identical for any
// chunk size.
const convertChunk = 1024

// A Converter chains the steps of a full coordinate conversion between
// two parameter sets: axis adjustment, unit normalization, the source
// inverse projection, prime meridian and datum shifts, and the
// destination forward projection. Geographic ("longlat") endpoints
// carry coordinates in degrees, projected endpoints in their declared
// unit.
type Converter struct {
	src, dst *Transform
	same     bool
}

// NewConverter validates both parameter sets and composes a converter
// from src to dst. When the two parameter sets are equal the conversion
// reduces to a copy.
func NewConverter(src, dst *Params) (*Converter, error) {
	if src == nil || dst == nil {
		return nil, fmt.Errorf("in mapproj.NewConverter: nil parameters")
	}
	st, err := NewTransform(src)
	if err != nil {
		return nil, err
	}
	dt, err := NewTransform(dst)
	if err != nil {
		return nil, err
	}
	c := &Converter{src: st, dst: dt}
	c.same = st.params.Equal(dt.params, cacheULP)
	logger.WithFields(map[string]interface{}{
		"source":      st.params.Name,
		"destination": dt.params.Name,
	}).Debug("mapproj: composed converter")
	return c, nil
}

func isGeographic(name string) bool {
	switch strings.ToLower(name) {
	case "longlat", "latlong", "identity":
		return true
	}
	return false
}

// point runs the full conversion chain for one coordinate pair.
func (c *Converter) point(x, y float64) (float64, float64) {
	sp := c.src.params
	dp := c.dst.params

	pt, _ := normalizeAxis(sp.Axis, Point{X: x, Y: y})
	x, y = pt.X, pt.Y

	if isGeographic(sp.Name) {
		x *= deg2rad
		y *= deg2rad
	} else {
		x *= sp.ToMeter
		y *= sp.ToMeter
		x, y = c.src.inverse(x, y)
	}
	if !math.IsNaN(sp.FromGreenwich) {
		x += sp.FromGreenwich
	}

	x, y, _ = datumShift(sp.datum, dp.datum, x, y, 0)

	if !math.IsNaN(dp.FromGreenwich) {
		x -= dp.FromGreenwich
	}
	if isGeographic(dp.Name) {
		x *= r2d
		y *= r2d
	} else {
		x, y = c.dst.forward(x, y)
		x /= dp.ToMeter
		y /= dp.ToMeter
	}

	pt, _ = denormalizeAxis(dp.Axis, Point{X: x, Y: y})
	return pt.X, pt.Y
}

// Convert maps src[start:start+n] into dst at the same indices,
// processing the range in fixed-size chunks. Output point i always
// corresponds to input point i, and converting a sub-range yields the
// same values as converting the whole buffer.
func (c *Converter) Convert(src, dst Buffer, start, n int) error {
	if err := checkRange(src, dst, start, n); err != nil {
		return fmt.Errorf("in mapproj.Converter.Convert: %v", err)
	}
	for chunk := start; chunk < start+n; chunk += convertChunk {
		end := chunk + convertChunk
		if end > start+n {
			end = start + n
		}
		c.convertRange(src, dst, chunk, end)
	}
	return nil
}

func (c *Converter) convertRange(src, dst Buffer, begin, end int) {
	if c.same {
		for i := begin; i < end; i++ {
			dst.Set(i, src.At(i))
		}
		return
	}
	for i := begin; i < end; i++ {
		p := src.At(i)
		x, y := c.point(p.X, p.Y)
		dst.Set(i, Point{X: x, Y: y})
	}
}

// ConvertParallel behaves exactly like Convert but splits the range
// across workers goroutines, each writing only its own sub-range.
// Cancellation is honored between chunks; the core per-point work never
// blocks.
func (c *Converter) ConvertParallel(ctx context.Context, src, dst Buffer, start, n, workers int) error {
	if err := checkRange(src, dst, start, n); err != nil {
		return fmt.Errorf("in mapproj.Converter.ConvertParallel: %v", err)
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		return c.Convert(src, dst, start, n)
	}
	g, ctx := errgroup.WithContext(ctx)
	per := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		begin := start + w*per
		end := begin + per
		if end > start+n {
			end = start + n
		}
		if begin >= end {
			break
		}
		g.Go(func() error {
			for chunk := begin; chunk < end; chunk += convertChunk {
				if err := ctx.Err(); err != nil {
					return err
				}
				stop := chunk + convertChunk
				if stop > end {
					stop = end
				}
				c.convertRange(src, dst, chunk, stop)
			}
			return nil
		})
	}
	return g.Wait()
}
