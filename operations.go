package chainhashmap

import (
	"fmt"
	"github.com/gostonefire/chainhashmap/cerr"
	"github.com/gostonefire/chainhashmap/internal/conf"
	"github.com/gostonefire/chainhashmap/linkedlist"
)

// Insert - Updates the value of an existing entry with an equal key, or adds a new entry if there is none.
// Adding an entry that takes the load factor above the max load factor doubles the buckets.
//   - key is the identifier of the entry, compared with ==
//   - value is the value to store
//
// It returns:
//   - err is a standard error wrapping cerr.IndexOutOfRange if the hash function returned a bucket outside the table
func (H *HashTable[K, V]) Insert(key K, value V) (err error) {
	chain, err := H.chainFor(key)
	if err != nil {
		return
	}

	if entry, found := chain.Find(H.matching(key)); found {
		entry.Value = value
		return
	}

	chain.PushBack(Entry[K, V]{Key: key, Value: value})
	H.count++

	if H.LoadFactor() > H.maxLoadFactor {
		err = H.rehash()
	}

	return
}

// Lookup - Returns a reference to the value stored for key. The reference is only valid until the next
// Insert, Remove or Clear on the table.
//   - key is the identifier of the entry
//
// It returns:
//   - value is a reference to the stored value, nil if not found
//   - found is true if the key was found
//   - err is a standard error wrapping cerr.IndexOutOfRange if the hash function returned a bucket outside the table
func (H *HashTable[K, V]) Lookup(key K) (value *V, found bool, err error) {
	chain, err := H.chainFor(key)
	if err != nil {
		return
	}

	entry, found := chain.Find(H.matching(key))
	if found {
		value = &entry.Value
	}

	return
}

// Get - Same as Lookup but returns a copy of the value, the zero value if not found
func (H *HashTable[K, V]) Get(key K) (value V, found bool, err error) {
	p, found, err := H.Lookup(key)
	if found {
		value = *p
	}

	return
}

// Contains - Returns true if there is an entry for key
func (H *HashTable[K, V]) Contains(key K) (found bool, err error) {
	_, found, err = H.Lookup(key)

	return
}

// Remove - Removes the entry for key. Removing a key that is not present is not an error.
//   - key is the identifier of the entry
//
// It returns:
//   - removed is true if an entry was removed
//   - err is a standard error wrapping cerr.IndexOutOfRange if the hash function returned a bucket outside the table
func (H *HashTable[K, V]) Remove(key K) (removed bool, err error) {
	chain, err := H.chainFor(key)
	if err != nil {
		return
	}

	if removed = chain.RemoveOneIf(H.matching(key)); removed {
		H.count--
	}

	return
}

// Clear - Releases all chains and the bucket storage, then starts over with the minimum number of buckets
func (H *HashTable[K, V]) Clear() {
	released := H.count
	H.table.Clear()
	H.count = 0
	_ = H.table.Resize(conf.MinBuckets)

	H.logger.Debug("hash table cleared", "released_entries", released)
}

// Count - Returns the total number of entries across all chains
func (H *HashTable[K, V]) Count() int {
	return H.count
}

// BucketCount - Returns the current number of buckets
func (H *HashTable[K, V]) BucketCount() int {
	return H.table.Size()
}

// LoadFactor - Returns count / buckets
func (H *HashTable[K, V]) LoadFactor() float64 {
	return float64(H.count) / float64(H.table.Size())
}

// MaxLoadFactor - Returns the load factor above which the table grows
func (H *HashTable[K, V]) MaxLoadFactor() float64 {
	return H.maxLoadFactor
}

// Rehashes - Returns how many times the table has doubled its buckets
func (H *HashTable[K, V]) Rehashes() int {
	return H.rehashes
}

// BucketOf - Returns which bucket number the given key results in
//   - key is the identifier of an entry
func (H *HashTable[K, V]) BucketOf(key K) (bucketNo int, err error) {
	bucketNo, err = H.bucketNo(key, H.table.Size())

	return
}

// Foreach - Calls visitor with every key and a reference to its value, bucket by bucket and within a bucket
// in chain order. The visitor may change values but must not insert or remove entries.
func (H *HashTable[K, V]) Foreach(visitor func(key K, value *V)) {
	H.table.Foreach(func(_ int, chain *linkedlist.List[Entry[K, V]]) {
		chain.Foreach(func(entry *Entry[K, V]) {
			visitor(entry.Key, &entry.Value)
		})
	})
}

// Keys - Returns all keys in bucket then chain order
func (H *HashTable[K, V]) Keys() (keys []K) {
	keys = make([]K, 0, H.count)
	H.Foreach(func(key K, _ *V) {
		keys = append(keys, key)
	})

	return
}

// bucketNo - Asks the hash function for the bucket of key given bucketCount buckets and checks that
// the answer is within range.
func (H *HashTable[K, V]) bucketNo(key K, bucketCount int) (bucketNo int, err error) {
	bucketNo = H.hashFunction.BucketIndex(key, bucketCount)
	if bucketNo < 0 || bucketNo >= bucketCount {
		err = fmt.Errorf("received bucket number from hash function is outside permitted range: %w",
			cerr.NewIndexOutOfRange("bucket %d not in [0, %d)", bucketNo, bucketCount))
		return
	}

	return
}

// chainFor - Returns the chain that key belongs to
func (H *HashTable[K, V]) chainFor(key K) (chain *linkedlist.List[Entry[K, V]], err error) {
	bucketNo, err := H.BucketOf(key)
	if err != nil {
		return
	}

	chain, err = H.table.At(bucketNo)

	return
}

// matching - Returns a predicate matching entries with key
func (H *HashTable[K, V]) matching(key K) func(entry Entry[K, V]) bool {
	return func(entry Entry[K, V]) bool {
		return entry.Key == key
	}
}
