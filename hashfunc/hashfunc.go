package hashfunc

import (
	"fmt"
	"github.com/gostonefire/chainhashmap/cerr"
)

// HashFunction - Interface that permits a user of the HashTable to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
type HashFunction[K any] interface {
	// BucketIndex - Given key it generates an index (bucket) between 0 and bucketCount - 1.
	// It is called with bucketCount >= 1 and must be a pure function of its inputs, the table relies on
	// the same key and bucketCount always giving the same index when it rehashes.
	// Any index returned outside 0 -> bucketCount - 1 will result in an error down stream.
	BucketIndex(key K, bucketCount int) int
}

// Func - Adapter to allow the use of an ordinary function as a HashFunction
type Func[K any] func(key K, bucketCount int) int

// BucketIndex - Calls f(key, bucketCount)
func (f Func[K]) BucketIndex(key K, bucketCount int) int {
	return f(key, bucketCount)
}

// Names of the string hash algorithms available through ByName
const (
	PolynomialName = "polynomial"
	CRC32Name      = "crc32"
	XXHashName     = "xxhash"
)

// ByName - Returns the string hash algorithm registered under name, an empty name gives the default Polynomial.
// It returns an error of type cerr.InvalidArgument for unknown names.
func ByName(name string) (hashFunction HashFunction[string], err error) {
	switch name {
	case "", PolynomialName:
		hashFunction = Polynomial{}
	case CRC32Name:
		hashFunction = CRC32{}
	case XXHashName:
		hashFunction = XXHash{}
	default:
		err = cerr.NewInvalidArgument("unknown hash algorithm %q, use one of %s", name,
			fmt.Sprintf("%s, %s, %s", PolynomialName, CRC32Name, XXHashName))
	}

	return
}
