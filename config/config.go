package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/Quod-Financial/quantreplay-sub002/config/encoding"
	"github.com/Quod-Financial/quantreplay-sub002/core/depth"
	"github.com/Quod-Financial/quantreplay-sub002/core/flowgen"
	"github.com/Quod-Financial/quantreplay-sub002/core/instruments"
	"github.com/Quod-Financial/quantreplay-sub002/core/matching"
	"github.com/Quod-Financial/quantreplay-sub002/core/placement"
	"github.com/Quod-Financial/quantreplay-sub002/core/store"
	"github.com/Quod-Financial/quantreplay-sub002/logging"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const configFileName = "config.toml"

// Venue groups the venue level behaviour flags. They shape the whole
// session rather than one engine, so they live beside the per package
// configurations rather than inside one of them.
type Venue struct {
	// Name identifies the simulated venue in logs and streams.
	Name string

	// Time in force support, mirrored into the placement engine.
	SupportDayOrders encoding.Bool
	SupportIOCOrders encoding.Bool
	SupportFOKOrders encoding.Bool

	// CancelOnDisconnect expires resting orders when a session drops.
	CancelOnDisconnect encoding.Bool

	// Streaming flags for the log listener.
	StreamTrades       encoding.Bool
	StreamTradeVolume  encoding.Bool
	StreamTradeParties encoding.Bool
	StreamAggressor    encoding.Bool

	// IncludeOwnOrders exposes the venue's own flow in the depth view.
	IncludeOwnOrders encoding.Bool

	// Timezone is the IANA name used for order and trade timestamps.
	Timezone string

	// OrderRate is the interval between generated orders.
	OrderRate encoding.Duration
}

// Config is the root configuration of a simulator process, aggregating
// every package level configuration plus the listing records to trade.
type Config struct {
	Logging   logging.Config
	Venue     Venue
	Matching  matching.Config
	Placement placement.Config
	Depth     depth.Config
	Store     store.Config
	FlowGen   flowgen.Config

	Listings []instruments.Listing
}

// NewDefaultConfig returns a runnable default configuration with a
// single synthetic listing.
func NewDefaultConfig() Config {
	return Config{
		Logging: logging.NewDefaultConfig(),
		Venue: Venue{
			Name:               "SIM",
			SupportDayOrders:   true,
			SupportIOCOrders:   true,
			SupportFOKOrders:   true,
			CancelOnDisconnect: false,
			StreamTrades:       true,
			StreamTradeVolume:  true,
			StreamTradeParties: false,
			StreamAggressor:    false,
			IncludeOwnOrders:   true,
			Timezone:           "UTC",
			OrderRate:          encoding.Duration{Duration: 250 * time.Millisecond},
		},
		Matching:  matching.NewDefaultConfig(),
		Placement: placement.NewDefaultConfig(),
		Depth:     depth.NewDefaultConfig(),
		Store:     store.NewDefaultConfig(),
		FlowGen:   flowgen.NewDefaultConfig(),
		Listings: []instruments.Listing{
			{ID: "AAPL"},
		},
	}
}

// Reconcile copies the venue level flags into the package configurations
// that consume them, so each engine only reads its own config.
func (c *Config) Reconcile() {
	c.Placement.SupportDayOrders = c.Venue.SupportDayOrders
	c.Placement.SupportIOCOrders = c.Venue.SupportIOCOrders
	c.Placement.SupportFOKOrders = c.Venue.SupportFOKOrders
	c.Depth.ExcludeOwnOrders = encoding.Bool(!c.Venue.IncludeOwnOrders)
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Venue.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid timezone %q", c.Venue.Timezone)
	}
	return loc, nil
}

// Read loads the configuration file from a root directory.
func Read(rootPath string) (*Config, error) {
	path := filepath.Join(rootPath, configFileName)
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config at %s", path)
	}
	cfg := NewDefaultConfig()
	if _, err := toml.Decode(string(buf), &cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to decode config at %s", path)
	}
	cfg.Reconcile()
	return &cfg, nil
}

// Write saves a configuration file under a root directory, refusing to
// overwrite an existing one.
func Write(rootPath string, cfg Config) error {
	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create config root %s", rootPath)
	}
	path := filepath.Join(rootPath, configFileName)
	if _, err := os.Stat(path); err == nil {
		return errors.Errorf("configuration already exists at %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create config at %s", path)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return errors.Wrapf(err, "failed to encode config at %s", path)
	}
	return nil
}
