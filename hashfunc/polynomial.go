package hashfunc

import "github.com/gostonefire/chainhashmap/internal/utils"

// Polynomial - The default string hash, h = sum(key[i] * 31^(n-1-i)) over the bytes of key with
// wrapping unsigned arithmetic, reduced modulo the bucket count.
type Polynomial struct{}

// BucketIndex - Given key it generates an index (bucket) between 0 and bucketCount - 1
func (Polynomial) BucketIndex(key string, bucketCount int) int {
	var h uint64
	for i := 0; i < len(key); i++ {
		h = h*31 + uint64(key[i])
	}

	return utils.Reduce(h, bucketCount)
}
