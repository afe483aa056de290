package chainhashmap

import (
	"fmt"
	"github.com/gostonefire/chainhashmap/internal/conf"
)

// rehash - Doubles the number of buckets and moves every entry whose bucket changed.
//
// Only the buckets that existed before growing are scanned, the new ones are empty right after the resize.
// Within a chain the position is only advanced past entries that stay, a moved entry is removed and the
// next entry slides into its position.
//
// Every new bucket number is checked before the table is touched, so a misbehaving hash function leaves
// the table as it was (with the entry that triggered the rehash already added).
func (H *HashTable[K, V]) rehash() (err error) {
	oldBuckets := H.table.Size()
	newBuckets := oldBuckets * conf.GrowthFactor

	for i := 0; i < oldBuckets; i++ {
		chain, _ := H.table.At(i)
		for _, entry := range chain.Values() {
			if _, err = H.bucketNo(entry.Key, newBuckets); err != nil {
				H.logger.Warn("rehash aborted", "buckets", oldBuckets, "error", err)
				err = fmt.Errorf("error while rehashing to %d buckets: %w", newBuckets, err)
				return
			}
		}
	}

	err = H.table.Resize(newBuckets)
	if err != nil {
		return
	}

	var moved int
	for i := 0; i < oldBuckets; i++ {
		chain, _ := H.table.At(i)
		for pos := 0; pos < chain.Size(); {
			entry, _ := chain.At(pos)
			target, _ := H.bucketNo(entry.Key, newBuckets)
			if target == i {
				pos++
				continue
			}

			targetChain, _ := H.table.At(target)
			targetChain.PushBack(*entry)
			_ = chain.Remove(pos)
			moved++
		}
	}

	H.rehashes++
	H.logger.Debug("hash table rehashed",
		"old_buckets", oldBuckets,
		"new_buckets", newBuckets,
		"entries", H.count,
		"moved", moved,
	)

	return
}
