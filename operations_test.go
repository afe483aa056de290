//go:build unit

package chainhashmap

import (
	"bytes"
	"fmt"
	"github.com/gostonefire/chainhashmap/cerr"
	"github.com/gostonefire/chainhashmap/hashfunc"
	"github.com/gostonefire/chainhashmap/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

var weekdays = []string{"Poniedziałek", "Wtorek", "Środa", "Czwartek", "Piątek", "Sobota", "Niedziela"}

// chainKeys - Returns the keys of bucket i in chain order
func chainKeys[K comparable, V any](t *testing.T, ht *HashTable[K, V], i int) (keys []K) {
	chain, err := ht.table.At(i)
	require.NoError(t, err)
	for _, e := range chain.Values() {
		keys = append(keys, e.Key)
	}
	return
}

// assertPlacement - Checks that every key sits in the bucket the hash function gives and that count matches the chains
func assertPlacement[K comparable, V any](t *testing.T, ht *HashTable[K, V]) {
	total := 0
	for i := 0; i < ht.BucketCount(); i++ {
		for _, key := range chainKeys(t, ht, i) {
			assert.Equal(t, i, ht.hashFunction.BucketIndex(key, ht.BucketCount()), "key %v in bucket %d", key, i)
			total++
		}
	}
	assert.Equal(t, ht.Count(), total, "count equals sum of chain sizes")
}

func TestHashTable_Insert(t *testing.T) {
	t.Run("round trip for unique keys", func(t *testing.T) {
		// Prepare
		ht, err := New[string, int](hashfunc.Polynomial{}, Conf{})
		require.NoError(t, err)

		// Execute
		for i := 0; i < 200; i++ {
			err = ht.Insert(fmt.Sprintf("key-%d", i), i)
			assert.NoError(t, err, "insert key/value")
		}

		// Check
		assert.Equal(t, 200, ht.Count())
		for i := 0; i < 200; i++ {
			v, found, err := ht.Get(fmt.Sprintf("key-%d", i))
			assert.NoError(t, err)
			assert.True(t, found, "key-%d found", i)
			assert.Equal(t, i, v, "correct value")
		}
		assertPlacement(t, ht)
	})

	t.Run("upsert keeps one entry with the latest value", func(t *testing.T) {
		// Prepare
		ht, err := New[string, int](hashfunc.Polynomial{}, Conf{})
		require.NoError(t, err)

		// Execute
		require.NoError(t, ht.Insert("a", 1))
		require.NoError(t, ht.Insert("a", 2))

		// Check
		assert.Equal(t, 1, ht.Count(), "count increased by one")
		v, found, err := ht.Get("a")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, 2, v, "latest value")
		assert.Equal(t, []string{"a"}, ht.Keys(), "no duplicate key")
	})

	t.Run("load factor stays at or below max after every insert", func(t *testing.T) {
		// Prepare
		ht, err := New[int, int](modHash, Conf{})
		require.NoError(t, err)

		// Execute and check
		for i := 0; i < 1000; i++ {
			require.NoError(t, ht.Insert(i*7, i))
			assert.LessOrEqual(t, ht.LoadFactor(), ht.MaxLoadFactor(), "after insert %d", i)
		}
		assert.Equal(t, 2048, ht.BucketCount())
		assert.Equal(t, 9, ht.Rehashes())
	})

	t.Run("error when hash function returns a bucket outside the table", func(t *testing.T) {
		// Prepare
		bad := hashfunc.Func[string](func(key string, bucketCount int) int { return bucketCount })
		ht, err := New[string, int](bad, Conf{})
		require.NoError(t, err)

		// Execute
		err = ht.Insert("a", 1)

		// Check
		assert.ErrorIs(t, err, cerr.IndexOutOfRange{})
		assert.Equal(t, 0, ht.Count(), "nothing inserted")

		_, _, err = ht.Lookup("a")
		assert.ErrorIs(t, err, cerr.IndexOutOfRange{})
		_, err = ht.Remove("a")
		assert.ErrorIs(t, err, cerr.IndexOutOfRange{})
		_, err = ht.BucketOf("a")
		assert.ErrorIs(t, err, cerr.IndexOutOfRange{})
	})

	t.Run("negative bucket is rejected", func(t *testing.T) {
		// Prepare
		ht, err := New[int, int](hashfunc.Func[int](func(key int, bucketCount int) int { return -1 }), Conf{})
		require.NoError(t, err)

		// Execute
		err = ht.Insert(1, 1)

		// Check
		assert.ErrorIs(t, err, cerr.IndexOutOfRange{})
	})

	t.Run("works with struct keys", func(t *testing.T) {
		// Prepare
		type point struct{ x, y int }
		h := hashfunc.Func[point](func(p point, bucketCount int) int {
			return ((p.x*31+p.y)%bucketCount + bucketCount) % bucketCount
		})
		ht, err := New[point, string](h, Conf{})
		require.NoError(t, err)

		// Execute
		for x := -3; x <= 3; x++ {
			require.NoError(t, ht.Insert(point{x, -x}, fmt.Sprint(x)))
		}

		// Check
		v, found, err := ht.Get(point{-2, 2})
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "-2", v)
		assertPlacement(t, ht)
	})
}

func TestHashTable_Rehash(t *testing.T) {
	t.Run("end to end with seven keys", func(t *testing.T) {
		// Prepare
		ht, err := NewStringTable[int](Conf{})
		require.NoError(t, err)

		// Execute
		for i, day := range weekdays {
			require.NoError(t, ht.Insert(day, i+1))
		}

		// Check
		assert.Greater(t, ht.BucketCount(), 4, "at least one rehash")
		assert.Equal(t, 16, ht.BucketCount())
		assert.Equal(t, 2, ht.Rehashes())
		for i, day := range weekdays {
			v, found, err := ht.Get(day)
			assert.NoError(t, err)
			assert.True(t, found, "%s found", day)
			assert.Equal(t, i+1, v)
		}
		assertPlacement(t, ht)

		removed, err := ht.Remove("Piątek")
		assert.NoError(t, err)
		assert.True(t, removed)
		_, found, err := ht.Lookup("Piątek")
		assert.NoError(t, err)
		assert.False(t, found, "removed key not found")
		assert.Equal(t, 6, ht.Count())
		for _, day := range weekdays {
			if day == "Piątek" {
				continue
			}
			found, err = ht.Contains(day)
			assert.NoError(t, err)
			assert.True(t, found, "%s still found", day)
		}
	})

	t.Run("relocates interleaved entries of one bucket", func(t *testing.T) {
		// Prepare
		ht, err := New[int, int](modHash, Conf{MaxLoadFactor: 2})
		require.NoError(t, err)
		for _, k := range []int{1, 5, 9, 13, 17, 21, 25, 29} {
			require.NoError(t, ht.Insert(k, k))
		}
		require.Equal(t, 4, ht.BucketCount(), "no rehash yet")
		require.Equal(t, []int{1, 5, 9, 13, 17, 21, 25, 29}, chainKeys(t, ht, 1))

		// Execute
		require.NoError(t, ht.Insert(33, 33))

		// Check
		assert.Equal(t, 8, ht.BucketCount())
		assert.Equal(t, []int{1, 9, 17, 25, 33}, chainKeys(t, ht, 1), "staying entries keep their order")
		assert.Equal(t, []int{5, 13, 21, 29}, chainKeys(t, ht, 5), "every relocatable entry moved in order")
		assertPlacement(t, ht)
	})

	t.Run("relocates consecutive entries of one bucket", func(t *testing.T) {
		// Prepare
		ht, err := New[int, int](modHash, Conf{MaxLoadFactor: 1})
		require.NoError(t, err)
		for _, k := range []int{1, 5, 13, 21} {
			require.NoError(t, ht.Insert(k, k))
		}

		// Execute
		require.NoError(t, ht.Insert(9, 9))

		// Check
		assert.Equal(t, 8, ht.BucketCount())
		assert.Equal(t, []int{1, 9}, chainKeys(t, ht, 1))
		assert.Equal(t, []int{5, 13, 21}, chainKeys(t, ht, 5))
		assert.Equal(t, 5, ht.Count())
	})

	t.Run("failing hash function leaves table at old size", func(t *testing.T) {
		// Prepare
		h := hashfunc.Func[int](func(key int, bucketCount int) int {
			if bucketCount > 4 {
				return bucketCount
			}
			return key % bucketCount
		})
		ht, err := New[int, int](h, Conf{})
		require.NoError(t, err)
		for k := 0; k < 3; k++ {
			require.NoError(t, ht.Insert(k, k))
		}

		// Execute
		err = ht.Insert(3, 3)

		// Check
		assert.ErrorIs(t, err, cerr.IndexOutOfRange{})
		assert.Equal(t, 4, ht.BucketCount(), "not grown")
		assert.Equal(t, 4, ht.Count(), "entry kept")
		for k := 0; k < 4; k++ {
			v, found, err := ht.Get(k)
			assert.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, k, v)
		}
	})

	t.Run("logs rehash at debug level", func(t *testing.T) {
		// Prepare
		var buf bytes.Buffer
		logger := logging.New(logging.Config{Level: logging.LevelDebug, Writer: &buf})
		ht, err := New[int, int](modHash, Conf{Logger: logger})
		require.NoError(t, err)

		// Execute
		for k := 0; k < 4; k++ {
			require.NoError(t, ht.Insert(k, k))
		}

		// Check
		assert.Contains(t, buf.String(), "hash table rehashed")
		assert.Contains(t, buf.String(), "new_buckets=8")
	})
}

func TestHashTable_Lookup(t *testing.T) {
	t.Run("returns a reference that updates in place", func(t *testing.T) {
		// Prepare
		ht, err := New[string, int](hashfunc.XXHash{}, Conf{})
		require.NoError(t, err)
		require.NoError(t, ht.Insert("a", 1))

		// Execute
		p, found, err := ht.Lookup("a")
		require.NoError(t, err)
		require.True(t, found)
		*p = 10

		// Check
		v, _, _ := ht.Get("a")
		assert.Equal(t, 10, v)
		assert.Equal(t, 1, ht.Count(), "lookup does not change count")
	})

	t.Run("reports absence without error", func(t *testing.T) {
		// Prepare
		ht, err := New[string, int](hashfunc.CRC32{}, Conf{})
		require.NoError(t, err)

		// Execute
		p, found, err := ht.Lookup("missing")

		// Check
		assert.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, p)
		v, found, err := ht.Get("missing")
		assert.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, 0, v, "zero value")
	})
}

func TestHashTable_Remove(t *testing.T) {
	t.Run("removes key and decrements count", func(t *testing.T) {
		// Prepare
		ht, err := New[int, string](modHash, Conf{})
		require.NoError(t, err)
		require.NoError(t, ht.Insert(1, "one"))
		require.NoError(t, ht.Insert(5, "five"))

		// Execute
		removed, err := ht.Remove(1)

		// Check
		assert.NoError(t, err)
		assert.True(t, removed)
		assert.Equal(t, 1, ht.Count())
		found, _ := ht.Contains(1)
		assert.False(t, found)
		v, found, _ := ht.Get(5)
		assert.True(t, found, "chain neighbour kept")
		assert.Equal(t, "five", v)
	})

	t.Run("removing an absent key is a no-op", func(t *testing.T) {
		// Prepare
		ht, err := New[int, string](modHash, Conf{})
		require.NoError(t, err)
		require.NoError(t, ht.Insert(1, "one"))

		// Execute
		removed, err := ht.Remove(2)

		// Check
		assert.NoError(t, err)
		assert.False(t, removed)
		assert.Equal(t, 1, ht.Count(), "count unchanged")
	})
}

func TestHashTable_Clear(t *testing.T) {
	t.Run("releases entries and starts over at minimum size", func(t *testing.T) {
		// Prepare
		ht, err := New[int, int](modHash, Conf{})
		require.NoError(t, err)
		for k := 0; k < 20; k++ {
			require.NoError(t, ht.Insert(k, k))
		}
		require.Greater(t, ht.BucketCount(), 4)

		// Execute
		ht.Clear()
		ht.Clear()

		// Check
		assert.Equal(t, 0, ht.Count())
		assert.Equal(t, 4, ht.BucketCount())
		found, err := ht.Contains(3)
		assert.NoError(t, err)
		assert.False(t, found)

		require.NoError(t, ht.Insert(3, 30))
		v, found, _ := ht.Get(3)
		assert.True(t, found, "usable after clear")
		assert.Equal(t, 30, v)
	})
}

func TestHashTable_Foreach(t *testing.T) {
	t.Run("visits bucket then chain order and mutates values", func(t *testing.T) {
		// Prepare
		ht, err := New[int, int](modHash, Conf{})
		require.NoError(t, err)
		for _, k := range []int{6, 2, 1} {
			require.NoError(t, ht.Insert(k, k))
		}

		// Execute
		var keys []int
		ht.Foreach(func(key int, value *int) {
			keys = append(keys, key)
			*value *= 100
		})

		// Check
		assert.Equal(t, []int{1, 6, 2}, keys)
		assert.Equal(t, keys, ht.Keys())
		v, _, _ := ht.Get(6)
		assert.Equal(t, 600, v)
	})
}

func TestHashTable_Dump(t *testing.T) {
	t.Run("lists count and pairs in bucket then chain order", func(t *testing.T) {
		// Prepare
		ht, err := New[int, string](modHash, Conf{})
		require.NoError(t, err)
		require.NoError(t, ht.Insert(3, "three"))
		require.NoError(t, ht.Insert(1, "one"))
		require.NoError(t, ht.Insert(2, "two"))

		// Execute
		dump := ht.Dump()

		// Check
		want := " {\n\tcount of elements: 3,\n\ttable: [\n\t\t1 => one,\n\t\t2 => two,\n\t\t3 => three,\n\t]\n}"
		assert.Equal(t, want, dump)
		assert.Equal(t, dump, ht.String())
	})

	t.Run("empty table", func(t *testing.T) {
		ht, err := New[int, string](modHash, Conf{})
		require.NoError(t, err)
		assert.Equal(t, " {\n\tcount of elements: 0,\n\ttable: [\n\t]\n}", ht.Dump())
	})
}

func TestHashTable_Stat(t *testing.T) {
	t.Run("reports distribution over buckets", func(t *testing.T) {
		// Prepare
		ht, err := New[int, int](modHash, Conf{})
		require.NoError(t, err)
		for _, k := range []int{0, 4, 1} {
			require.NoError(t, ht.Insert(k, k))
		}

		// Execute
		stat := ht.Stat(true)

		// Check
		assert.Equal(t, 3, stat.Records)
		assert.Equal(t, 4, stat.NumberOfBuckets)
		assert.Equal(t, 2, stat.UsedBuckets)
		assert.Equal(t, 2, stat.LongestChain)
		assert.Equal(t, 0.75, stat.LoadFactor)
		assert.Equal(t, 0, stat.Rehashes)
		assert.Equal(t, []int{2, 1, 0, 0}, stat.BucketDistribution)
	})

	t.Run("distribution left out on request", func(t *testing.T) {
		ht, err := New[int, int](modHash, Conf{})
		require.NoError(t, err)
		assert.Nil(t, ht.Stat(false).BucketDistribution)
	})
}
