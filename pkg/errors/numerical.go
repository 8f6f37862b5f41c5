package errors

import (
	"math"
)

// CheckScalar checks a single scalar value for numerical instability.
func CheckScalar(operation string, value float64, iteration int) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewNumericalInstabilityError(operation, []float64{value}, iteration)
	}
	return nil
}

// SafeDivide performs division with protection against division by zero.
// Returns 0 if denominator is zero or close to zero.
func SafeDivide(numerator, denominator float64) float64 {
	if math.Abs(denominator) < 1e-10 {
		return 0
	}
	return numerator / denominator
}

// EntropyTerm returns p*log2(p), treating p <= 0 as contributing zero.
// It is the per-class term of Shannon entropy.
func EntropyTerm(p float64) float64 {
	if p <= 0 {
		return 0
	}
	return p * math.Log2(p)
}
