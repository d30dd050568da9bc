package store

import (
	"github.com/Quod-Financial/quantreplay-sub002/config/encoding"
	"github.com/Quod-Financial/quantreplay-sub002/logging"
)

// namedLogger is the identifier for package and should ideally match the package name
// this is simply emitted as a hierarchical label e.g. 'store'.
const namedLogger = "store"

// Config represents the configuration of the journal store.
type Config struct {
	Level encoding.LogLevel

	// Enabled turns the journal on; when off nothing is persisted and
	// nothing is recovered.
	Enabled encoding.Bool
	// Path is the directory holding the badger database.
	Path string
	// InMemory keeps the whole journal in memory, used by tests.
	InMemory encoding.Bool
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:    encoding.LogLevel{Level: logging.InfoLevel},
		Enabled:  false,
		Path:     "venuesim-journal",
		InMemory: false,
	}
}
