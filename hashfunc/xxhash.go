package hashfunc

import (
	"github.com/cespare/xxhash/v2"
	"github.com/gostonefire/chainhashmap/internal/utils"
)

// XXHash - Bucket selection using the 64 bit xxHash of the key
type XXHash struct{}

// BucketIndex - Given key it generates an index (bucket) between 0 and bucketCount - 1
func (XXHash) BucketIndex(key string, bucketCount int) int {
	return utils.Reduce(xxhash.Sum64String(key), bucketCount)
}
