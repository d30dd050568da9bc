package flowgen

import (
	"github.com/Quod-Financial/quantreplay-sub002/config/encoding"
	"github.com/Quod-Financial/quantreplay-sub002/logging"
)

// namedLogger is the identifier for package and should ideally match the package name
// this is simply emitted as a hierarchical label e.g. 'flowgen'.
const namedLogger = "flowgen"

// Config represents the configuration of the random order flow generator.
type Config struct {
	Level encoding.LogLevel

	// Seed makes a run reproducible; zero seeds from the current time.
	Seed int64

	// Size bounds for generated orders, before instrument quantity
	// constraints are applied.
	MinSize uint64
	MaxSize uint64

	// Volatility is the standard deviation of the relative price step of
	// the random walk.
	Volatility float64

	// Ratios of the flow taking each shape; the remainder of the unit
	// interval produces resting day orders.
	IOCRatio    float64
	FOKRatio    float64
	MarketRatio float64

	// Parties is the pool of synthetic party identifiers.
	Parties []string
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:       encoding.LogLevel{Level: logging.InfoLevel},
		Seed:        0,
		MinSize:     1,
		MaxSize:     100,
		Volatility:  0.002,
		IOCRatio:    0.2,
		FOKRatio:    0.05,
		MarketRatio: 0.05,
		Parties:     []string{"trader-1", "trader-2", "trader-3", "trader-4"},
	}
}
