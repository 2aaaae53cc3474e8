package noise

import "math"

// cellular is Worley noise: one jittered feature point per lattice cell,
// searched over the 3x3 neighbourhood of the sample's cell.
type cellular struct {
	seed     int64
	distance DistanceFunc
	ret      ReturnType
	jitter   float64
	lookup   Sampler
	maxDist  float64
}

func newCellular(seed int64, cfg CellularConfig, lookup Sampler) *cellular {
	c := &cellular{
		seed:     seed,
		distance: cfg.Distance,
		ret:      cfg.Return,
		jitter:   cfg.Jitter,
		lookup:   lookup,
	}

	// Largest possible nearest-feature distance: a feature in the sample's own
	// cell can be at most one cell diagonal away.
	switch cfg.Distance {
	case Manhattan:
		c.maxDist = 2
	case Natural:
		c.maxDist = 4
	default:
		c.maxDist = 2 // squared euclidean
	}

	return c
}

func (c *cellular) metric(dx, dy float64) float64 {
	switch c.distance {
	case Manhattan:
		return math.Abs(dx) + math.Abs(dy)
	case Natural:
		return math.Abs(dx) + math.Abs(dy) + dx*dx + dy*dy
	default:
		return dx*dx + dy*dy
	}
}

// feature returns the feature point of cell (xi, yi) and the cell's hash.
func (c *cellular) feature(xi, yi int64) (fx, fy float64, h uint64) {
	h = hash2(xi, yi, c.seed)
	jx := float64(h&0xFFFF)/0xFFFF - 0.5
	jy := float64((h>>16)&0xFFFF)/0xFFFF - 0.5
	return float64(xi) + 0.5 + jx*c.jitter, float64(yi) + 0.5 + jy*c.jitter, h
}

func (c *cellular) eval(x, y float64) float64 {
	cx := int64(math.Floor(x))
	cy := int64(math.Floor(y))

	d1 := math.Inf(1)
	d2 := math.Inf(1)
	var closestX, closestY float64
	var closestHash uint64

	for yi := cy - 1; yi <= cy+1; yi++ {
		for xi := cx - 1; xi <= cx+1; xi++ {
			fx, fy, h := c.feature(xi, yi)
			d := c.metric(fx-x, fy-y)
			if d < d1 {
				d2 = d1
				d1 = d
				closestX, closestY, closestHash = fx, fy, h
			} else if d < d2 {
				d2 = d
			}
		}
	}

	switch c.ret {
	case CellValue:
		return unit(closestHash>>32)*2 - 1
	case NoiseLookup:
		return c.lookup.Sample(closestX, closestY)
	}

	n1 := math.Min(d1/c.maxDist, 1)
	n2 := math.Min(d2/c.maxDist, 1)

	switch c.ret {
	case Distance:
		return n1*2 - 1
	case Distance2:
		return n2*2 - 1
	case Distance2Add:
		return n1 + n2 - 1
	case Distance2Sub:
		return (n2-n1)*2 - 1
	case Distance2Mul:
		return n1*n2*2 - 1
	case Distance2Div:
		if n2 == 0 {
			return -1
		}
		return n1/n2*2 - 1
	}
	return 0
}
