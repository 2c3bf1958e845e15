package utils

import "math"

// CalculateBMI computes body mass index from weight in kg and height in cm,
// rounded to two decimals. Returns 0 when height is unset.
func CalculateBMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	m := heightCm / 100
	return math.Round(weightKg/(m*m)*100) / 100
}
