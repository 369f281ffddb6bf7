// Package uniformity scores how evenly a set of integer samples covers the
// values it contains. The score is frequency-based Shannon entropy, which
// makes it a cheap sanity check for the output of a uniform generator
// without committing to a full statistical test.
package uniformity

import "math"

// Entropy calculates the Shannon entropy of the sample frequency
// distribution in bits.
//
// Formula: H(X) = -Σ P(x) * log2(P(x))
//
// Returns a value between 0 (all samples identical) and log2(n) where n is
// the number of distinct values observed.
func Entropy(samples []int64) float64 {
	if len(samples) == 0 {
		return 0
	}

	// Count frequency of each observed value
	freq := make(map[int64]int, len(samples))
	for _, s := range samples {
		freq[s]++
	}

	var entropy float64
	length := float64(len(samples))

	for _, count := range freq {
		probability := float64(count) / length
		entropy -= probability * math.Log2(probability)
	}

	return entropy
}

// Normalized calculates the normalized Shannon entropy (0-1 scale).
// This divides the entropy by the maximum possible entropy for the number
// of distinct values observed.
//
// Returns:
//   - 0: Completely skewed (all samples are the same value)
//   - 1: Every observed value appears equally often
func Normalized(samples []int64) float64 {
	if len(samples) == 0 {
		return 0
	}

	entropy := Entropy(samples)

	// Count distinct values
	distinct := make(map[int64]struct{}, len(samples))
	for _, s := range samples {
		distinct[s] = struct{}{}
	}

	// Maximum entropy is log2(distinct values)
	maxEntropy := math.Log2(float64(len(distinct)))
	if maxEntropy == 0 {
		return 0
	}

	return entropy / maxEntropy
}

// Score returns a uniformity metric between 0-100.
// This is a user-friendly representation where:
//   - 0-25: Heavily skewed
//   - 25-50: Noticeably skewed
//   - 50-75: Roughly even
//   - 75-100: Close to uniform
func Score(samples []int64) float64 {
	return Normalized(samples) * 100
}

// IsUniform checks if samples are spread roughly evenly over the observed
// values. Returns true if the normalized entropy is above the threshold
// (default 0.95).
func IsUniform(samples []int64, threshold float64) bool {
	if threshold <= 0 {
		threshold = 0.95
	}
	return Normalized(samples) >= threshold
}
