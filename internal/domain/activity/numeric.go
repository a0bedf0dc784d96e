package activity

import "math"

// Numeric coercion applied once at the normalizer boundary. Source records
// carry optional and occasionally garbage numeric fields; everything placed
// into Points goes through these helpers so no downstream component ever sees
// NaN, an infinity, or a missing value.

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return finite(*v)
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ratio computes the success percentage for earned points against a maximum.
// A zero or negative maximum yields 0; the result is clamped to [0,100].
func ratio(earned, maximum float64) float64 {
	if maximum <= 0 {
		return 0
	}
	r := round2(earned / maximum * 100)
	if r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return r
}

// signRatio is the success percentage for sign-bearing HR entries that have no
// natural maximum: 100 when the entry did not cost points, 0 when it did.
func signRatio(earned float64) float64 {
	if earned >= 0 {
		return 100
	}
	return 0
}
