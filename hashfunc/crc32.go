package hashfunc

import (
	"github.com/gostonefire/chainhashmap/internal/utils"
	"hash/crc32"
)

// CRC32 - Bucket selection using crc32.ChecksumIEEE over the key. The checksum is masked with
// bucketCount - 1 when bucketCount is a power of 2, which it is for every table grown from the minimum size.
type CRC32 struct{}

// BucketIndex - Given key it generates an index (bucket) between 0 and bucketCount - 1
func (CRC32) BucketIndex(key string, bucketCount int) int {
	return utils.Reduce(uint64(crc32.ChecksumIEEE([]byte(key))), bucketCount)
}
