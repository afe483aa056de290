package utils

// IsPowerOf2 - Returns true if n is a positive power of 2
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Reduce - Reduces hash value h to a bucket index between 0 and bucketCount - 1.
// Power of 2 bucket counts use h & (bucketCount - 1), which equals h % bucketCount for them.
// A bucketCount below 1 gives 0.
func Reduce(h uint64, bucketCount int) int {
	if bucketCount < 1 {
		return 0
	}
	if IsPowerOf2(bucketCount) {
		return int(h & uint64(bucketCount-1))
	}

	return int(h % uint64(bucketCount))
}
