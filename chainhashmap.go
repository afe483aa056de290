package chainhashmap

import (
	"github.com/gostonefire/chainhashmap/cerr"
	"github.com/gostonefire/chainhashmap/dynarray"
	"github.com/gostonefire/chainhashmap/hashfunc"
	"github.com/gostonefire/chainhashmap/internal/conf"
	"github.com/gostonefire/chainhashmap/internal/logging"
	"github.com/gostonefire/chainhashmap/linkedlist"
	"log/slog"
	"math"
)

// Entry - A key/value pair, stored as the payload of one node in exactly one bucket chain
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Conf - Is a struct to be passed in the call to New or NewStringTable and contains configuration that
// affects growth and diagnostics.
//   - MaxLoadFactor is the count / buckets ratio above which the table doubles its buckets, 0 (zero) gives 0.75
//   - HashAlgorithm is the name of the string hash algorithm used by NewStringTable, empty gives polynomial
//   - Logger receives debug records on rehash and clear, nil discards them
type Conf struct {
	MaxLoadFactor float64
	HashAlgorithm string
	Logger        *slog.Logger
}

// HashTable - The main implementation struct, an array of buckets each holding a chain of entries
// whose keys hash to that bucket. It is not safe for concurrent use.
type HashTable[K comparable, V any] struct {
	table         dynarray.Array[linkedlist.List[Entry[K, V]]]
	hashFunction  hashfunc.HashFunction[K]
	count         int
	maxLoadFactor float64
	rehashes      int
	logger        *slog.Logger
}

// New - Returns a new hash table with 4 empty buckets.
//   - hashFunction is the bucket selection algorithm, it must be pure and return indices within [0, bucketCount)
//   - hashTableConf is a Conf struct, its zero value gives the defaults
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - err is of type cerr.InvalidArgument if hashFunction is nil
func New[K comparable, V any](hashFunction hashfunc.HashFunction[K], hashTableConf Conf) (hashTable *HashTable[K, V], err error) {
	if hashFunction == nil {
		err = cerr.NewInvalidArgument("hash function can not be nil")
		return
	}

	maxLoadFactor := hashTableConf.MaxLoadFactor
	if maxLoadFactor <= 0 || math.IsNaN(maxLoadFactor) {
		maxLoadFactor = conf.DefaultMaxLoadFactor
	}

	logger := hashTableConf.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	hashTable = &HashTable[K, V]{
		hashFunction:  hashFunction,
		maxLoadFactor: maxLoadFactor,
		logger:        logger,
	}
	err = hashTable.table.Resize(conf.MinBuckets)

	return
}

// NewStringTable - Returns a new hash table keyed by strings using the hash algorithm named in hashTableConf.HashAlgorithm.
// It returns an error of type cerr.InvalidArgument if the algorithm is unknown.
func NewStringTable[V any](hashTableConf Conf) (hashTable *HashTable[string, V], err error) {
	hashFunction, err := hashfunc.ByName(hashTableConf.HashAlgorithm)
	if err != nil {
		return
	}

	return New[string, V](hashFunction, hashTableConf)
}
