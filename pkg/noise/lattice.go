package noise

import "math"

// hash2 is a SplitMix64-style integer hash, stable across runs.
func hash2(x, y, seed int64) uint64 {
	v := uint64(x)*0x9E3779B97F4A7C15 + uint64(y)*0x517CC1B727220A95 + uint64(seed)
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

// unit maps the low 32 bits of h to [0, 1].
func unit(h uint64) float64 {
	return float64(h&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

// latticeValue returns a value in [-1, 1] for an integer lattice point.
func latticeValue(x, y, seed int64) float64 {
	return unit(hash2(x, y, seed))*2 - 1
}

// quintic is the 6t^5 - 15t^4 + 10t^3 fade curve.
func quintic(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

type valueNoise struct {
	seed int64
}

func (n valueNoise) eval(x, y float64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	xi := int64(x0)
	yi := int64(y0)

	fx := quintic(x - x0)
	fy := quintic(y - y0)

	v00 := latticeValue(xi, yi, n.seed)
	v10 := latticeValue(xi+1, yi, n.seed)
	v01 := latticeValue(xi, yi+1, n.seed)
	v11 := latticeValue(xi+1, yi+1, n.seed)

	return lerp(lerp(v00, v10, fx), lerp(v01, v11, fx), fy)
}

// cubicBounding rescales Catmull-Rom output, whose absolute weight sum peaks
// at 1.25 per axis, back into [-1, 1].
const cubicBounding = 1 / (1.25 * 1.25)

type cubicNoise struct {
	seed int64
}

func (n cubicNoise) eval(x, y float64) float64 {
	x1 := math.Floor(x)
	y1 := math.Floor(y)
	xi := int64(x1)
	yi := int64(y1)
	tx := x - x1
	ty := y - y1

	var rows [4]float64
	for j := int64(-1); j <= 2; j++ {
		rows[j+1] = catmullRom(
			latticeValue(xi-1, yi+j, n.seed),
			latticeValue(xi, yi+j, n.seed),
			latticeValue(xi+1, yi+j, n.seed),
			latticeValue(xi+2, yi+j, n.seed),
			tx,
		)
	}

	return catmullRom(rows[0], rows[1], rows[2], rows[3], ty) * cubicBounding
}

func catmullRom(a, b, c, d, t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return 0.5 * ((-t3+2*t2-t)*a + (3*t3-5*t2+2)*b + (-3*t3+4*t2+t)*c + (t3-t2)*d)
}

// whiteNoise hashes the exact coordinate bits, so every distinct point is
// independent.
type whiteNoise struct {
	seed int64
}

func (n whiteNoise) eval(x, y float64) float64 {
	hx := int64(math.Float64bits(x))
	hy := int64(math.Float64bits(y))
	return latticeValue(hx, hy, n.seed)
}
