package chainhashmap

import (
	"fmt"
	"github.com/gostonefire/chainhashmap/linkedlist"
	"strings"
)

// Stat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of entries stored
//   - NumberOfBuckets is the current number of buckets
//   - UsedBuckets is the number of buckets holding at least one entry
//   - LongestChain is the number of entries in the fullest bucket
//   - LoadFactor is Records / NumberOfBuckets
//   - Rehashes is the number of times the buckets have been doubled
//   - BucketDistribution is the number of entries stored in each bucket
type Stat struct {
	Records            int
	NumberOfBuckets    int
	UsedBuckets        int
	LongestChain       int
	LoadFactor         float64
	Rehashes           int
	BucketDistribution []int
}

// Stat - Walks through the entire set of buckets and produce a Stat struct with information.
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of entries per bucket, false will set Stat.BucketDistribution to nil.
func (H *HashTable[K, V]) Stat(includeDistribution bool) (stat Stat) {
	stat = Stat{
		NumberOfBuckets: H.table.Size(),
		LoadFactor:      H.LoadFactor(),
		Rehashes:        H.rehashes,
	}
	if includeDistribution {
		stat.BucketDistribution = make([]int, H.table.Size())
	}

	H.table.Foreach(func(i int, chain *linkedlist.List[Entry[K, V]]) {
		size := chain.Size()
		stat.Records += size
		if size > 0 {
			stat.UsedBuckets++
		}
		if size > stat.LongestChain {
			stat.LongestChain = size
		}
		if includeDistribution {
			stat.BucketDistribution[i] = size
		}
	})

	return
}

// Dump - Returns a deterministic listing of the element count and every key/value pair in bucket then chain
// order. It is meant for logs and tests, not as a serialization format.
func (H *HashTable[K, V]) Dump() string {
	var sb strings.Builder
	sb.WriteString(" {")
	_, _ = fmt.Fprintf(&sb, "\n\tcount of elements: %d,", H.count)
	sb.WriteString("\n\ttable: [")
	H.Foreach(func(key K, value *V) {
		_, _ = fmt.Fprintf(&sb, "\n\t\t%v => %v,", key, *value)
	})
	sb.WriteString("\n\t]")
	sb.WriteString("\n}")

	return sb.String()
}

// String - Same as Dump
func (H *HashTable[K, V]) String() string {
	return H.Dump()
}
