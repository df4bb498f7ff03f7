package analysis

import "math"

// ceilEps absorbs float representation error in ratios of non-integral
// task parameters so an exact multiple never rounds up an extra unit.
const ceilEps = 1e-9

// ceilDiv returns ceil(x/y) with exact integer arithmetic when both
// operands are integral, which is the common case for task parameters
// expressed in ticks or milliseconds.
func ceilDiv(x, y float64) float64 {
	if isIntegral(x) && isIntegral(y) {
		xi, yi := int64(x), int64(y)
		return float64((xi + yi - 1) / yi)
	}
	q := x / y
	if r := math.Round(q); math.Abs(q-r) < ceilEps {
		return r
	}
	return math.Ceil(q)
}

// floorDiv returns floor(x/y) under the same exactness rules as ceilDiv.
func floorDiv(x, y float64) float64 {
	if isIntegral(x) && isIntegral(y) {
		return float64(int64(x) / int64(y))
	}
	q := x / y
	if r := math.Round(q); math.Abs(q-r) < ceilEps {
		return r
	}
	return math.Floor(q)
}

// maxExact bounds the integer fast path to values float64 holds exactly.
const maxExact = 1 << 53

func isIntegral(x float64) bool {
	return x == math.Trunc(x) && math.Abs(x) < maxExact
}
