package chainhashmap

import (
	"github.com/gostonefire/chainhashmap/hashfunc"
	"github.com/gostonefire/chainhashmap/internal/conf"
	"github.com/gostonefire/chainhashmap/internal/logging"
	"github.com/xyproto/env/v2"
)

// ConfFromEnv - Returns a Conf populated from the environment, unset variables give the defaults.
//   - CHAINHASHMAP_MAX_LOAD_FACTOR sets Conf.MaxLoadFactor (default 0.75)
//   - CHAINHASHMAP_HASH_ALGORITHM sets Conf.HashAlgorithm (polynomial, crc32 or xxhash)
//   - CHAINHASHMAP_LOG_LEVEL and CHAINHASHMAP_LOG_FORMAT set up Conf.Logger writing to stderr
func ConfFromEnv() Conf {
	return Conf{
		MaxLoadFactor: env.Float64(conf.EnvMaxLoadFactor, conf.DefaultMaxLoadFactor),
		HashAlgorithm: env.Str(conf.EnvHashAlgorithm, hashfunc.PolynomialName),
		Logger: logging.New(logging.Config{
			Level:  logging.LogLevel(env.Str(conf.EnvLogLevel, string(logging.LevelInfo))),
			Format: env.Str(conf.EnvLogFormat, "text"),
		}),
	}
}
