package placement

import (
	"github.com/Quod-Financial/quantreplay-sub002/config/encoding"
	"github.com/Quod-Financial/quantreplay-sub002/logging"
)

// namedLogger is the identifier for package and should ideally match the package name
// this is simply emitted as a hierarchical label e.g. 'placement'.
const namedLogger = "placement"

// Config represents the configuration of the placement engine.
type Config struct {
	Level encoding.LogLevel

	// Venue level time in force support flags.
	SupportDayOrders encoding.Bool
	SupportIOCOrders encoding.Bool
	SupportFOKOrders encoding.Bool
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level: encoding.LogLevel{Level: logging.InfoLevel},

		SupportDayOrders: true,
		SupportIOCOrders: true,
		SupportFOKOrders: true,
	}
}
