package depth

import (
	"github.com/Quod-Financial/quantreplay-sub002/config/encoding"
	"github.com/Quod-Financial/quantreplay-sub002/logging"
)

// namedLogger is the identifier for package and should ideally match the package name
// this is simply emitted as a hierarchical label e.g. 'depth'.
const namedLogger = "depth"

// Config represents the configuration of the market depth view.
type Config struct {
	Level encoding.LogLevel

	// ExcludeOwnOrders hides the venue's own orders from the depth view,
	// the inverted "include own orders" venue flag.
	ExcludeOwnOrders encoding.Bool

	// RecentTradeCache is the number of trades kept for the recent trade
	// stream.
	RecentTradeCache int
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:            encoding.LogLevel{Level: logging.InfoLevel},
		ExcludeOwnOrders: false,
		RecentTradeCache: 128,
	}
}
