package generator

import (
	"crypto/sha1" //nolint:gosec
	"time"
)

// getSeed mixes integer seed with string key, so that fields and batches sharing
// one base seed get different random sequences.
func getSeed(intSeed uint64, strSeed string) uint64 {
	if intSeed == 0 {
		intSeed = uint64(time.Now().UnixNano()) //nolint:gosec
	}

	for _, b := range sha1.Sum([]byte(strSeed)) { //nolint:gosec
		intSeed = intSeed*31 + uint64(b)
	}

	return intSeed
}

// fastRandomFloat generates a pseudo-random float64 in the range [0,1) from a given uint64 seed.
// This function is deterministic: the same seed always produces the same output.
//
// The logic and idea behind the function are as follows:
//   - It applies the SplitMix64 algorithm to the seed to ensure a well-distributed state.
//   - It then performs a XorShift64 transformation for better bit scrambling.
//   - The upper 53 bits are normalized by dividing by 2^53 to map the value to [0,1).
func fastRandomFloat(seed uint64) float64 {
	// SplitMix64 algorithm
	seed += 0x9e3779b97f4a7c15
	seed ^= seed >> 30 //nolint:mnd
	seed *= 0xbf58476d1ce4e5b9
	seed ^= seed >> 27 //nolint:mnd
	seed *= 0x94d049bb133111eb
	seed ^= seed >> 31 //nolint:mnd

	// XorShift64 transformation
	seed ^= seed >> 12 //nolint:mnd
	seed ^= seed << 25 //nolint:mnd
	seed ^= seed >> 27 //nolint:mnd

	return float64(seed>>11) / (1 << 53) //nolint:mnd
}
