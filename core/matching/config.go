package matching

import (
	"github.com/Quod-Financial/quantreplay-sub002/config/encoding"
	"github.com/Quod-Financial/quantreplay-sub002/logging"
)

// namedLogger is the identifier for package and should ideally match the package name
// this is simply emitted as a hierarchical label e.g. 'placement.matching'.
const namedLogger = "matching"

// Config represents the configuration of the matching engine.
type Config struct {
	Level encoding.LogLevel

	LogPriceLevelsDebug   encoding.Bool
	LogRemovedOrdersDebug encoding.Bool
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level: encoding.LogLevel{Level: logging.InfoLevel},

		LogPriceLevelsDebug:   false,
		LogRemovedOrdersDebug: false,
	}
}
