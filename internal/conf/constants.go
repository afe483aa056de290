package conf

// MinBuckets - Number of buckets a new or cleared hash table starts with
const MinBuckets int = 4

// DefaultMaxLoadFactor - Load factor (count / buckets) above which the table doubles its buckets
const DefaultMaxLoadFactor float64 = 0.75

// GrowthFactor - Factor the number of buckets is multiplied with on rehash
const GrowthFactor int = 2

// EnvMaxLoadFactor - Environment variable overriding the max load factor
const EnvMaxLoadFactor string = "CHAINHASHMAP_MAX_LOAD_FACTOR"

// EnvHashAlgorithm - Environment variable selecting the string hash algorithm
const EnvHashAlgorithm string = "CHAINHASHMAP_HASH_ALGORITHM"

// EnvLogLevel - Environment variable setting the log level (DEBUG, INFO, WARN, ERROR)
const EnvLogLevel string = "CHAINHASHMAP_LOG_LEVEL"

// EnvLogFormat - Environment variable setting the log format (text or json)
const EnvLogFormat string = "CHAINHASHMAP_LOG_FORMAT"
