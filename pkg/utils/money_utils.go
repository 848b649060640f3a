package utils

import (
	"fmt"
	"math"
)

// Monetary amounts are stored as integer minor currency units (paise).
// Request payloads carry major units; conversion happens exactly once at the
// service boundary.

// MajorToMinor converts a major-unit amount (e.g. 50.00) to minor units (5000).
func MajorToMinor(major float64) int64 {
	return int64(math.Round(major * 100))
}

// MinorToMajor converts stored minor units back to a major-unit amount.
func MinorToMajor(minor int64) float64 {
	return float64(minor) / 100
}

// FormatMinor renders a minor-unit amount as a two-decimal major-unit string,
// e.g. 10000 -> "100.00".
func FormatMinor(minor int64) string {
	return fmt.Sprintf("%.2f", MinorToMajor(minor))
}
