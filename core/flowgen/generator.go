package flowgen

import (
	"math/rand"
	"time"

	"github.com/Quod-Financial/quantreplay-sub002/core/instruments"
	"github.com/Quod-Financial/quantreplay-sub002/core/types"
	"github.com/Quod-Financial/quantreplay-sub002/libs/num"
	"github.com/Quod-Financial/quantreplay-sub002/logging"
)

// Generator produces a random order flow for one instrument: a decimal
// price walk around the listing's price seed, with prices aligned to the
// price tick, sizes aligned to the quantity tick and bounds, and a time
// in force mix restricted to what the venue supports. The statistical
// shape is deliberately naive, realism is not a goal here.
type Generator struct {
	log *logging.Logger
	cfg Config

	instrument *instruments.Instrument
	rng        *rand.Rand
	ref        num.Decimal

	tifs []types.OrderTimeInForce
}

// New creates a generator for one instrument. The allow flags mirror the
// venue's time in force support.
func New(
	log *logging.Logger,
	config Config,
	instrument *instruments.Instrument,
	allowDay, allowIOC, allowFOK bool,
) *Generator {
	log = log.Named(namedLogger)
	log.SetLevel(config.Level.Get())

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	tifs := make([]types.OrderTimeInForce, 0, 3)
	if allowDay {
		tifs = append(tifs, types.OrderTimeInForceDay)
	}
	if allowIOC {
		tifs = append(tifs, types.OrderTimeInForceIOC)
	}
	if allowFOK {
		tifs = append(tifs, types.OrderTimeInForceFOK)
	}
	if len(tifs) == 0 {
		// a venue supporting nothing generates nothing useful, fall back
		// to day orders so the book at least builds up
		tifs = append(tifs, types.OrderTimeInForceDay)
	}

	return &Generator{
		log:        log,
		cfg:        config,
		instrument: instrument,
		rng:        rand.New(rand.NewSource(seed)),
		ref:        instrument.PriceSeed,
		tifs:       tifs,
	}
}

// Reference returns the current reference price of the walk.
func (g *Generator) Reference() num.Decimal {
	return g.ref
}

// Next produces the next order submission of the flow.
func (g *Generator) Next() *types.OrderSubmission {
	g.step()

	side := types.SideBuy
	if g.rng.Intn(2) == 1 {
		side = types.SideSell
	}

	sub := &types.OrderSubmission{
		Instrument: g.instrument.ID,
		Party:      g.party(),
		Side:       side,
		Size:       g.size(),
		Type:       types.OrderTypeLimit,
	}

	sub.TimeInForce = g.timeInForce()
	if g.allows(types.OrderTimeInForceIOC) && g.rng.Float64() < g.cfg.MarketRatio {
		sub.Type = types.OrderTypeMarket
		sub.TimeInForce = types.OrderTimeInForceIOC
	}
	if sub.Type == types.OrderTypeLimit {
		sub.Price = g.price(side)
	}
	return sub
}

// step advances the reference price random walk, clamped to one tick.
func (g *Generator) step() {
	step := num.DecimalOne().Add(num.DecimalFromFloat(g.cfg.Volatility * g.rng.NormFloat64()))
	g.ref = g.ref.Mul(step)

	tick := num.DecimalFromUint(g.instrument.PriceTick)
	if g.ref.LessThan(tick) {
		g.ref = tick
	}
}

// price quotes around the reference: buys a little under, sells a little
// over, rounded to the price tick and floored at one tick.
func (g *Generator) price(side types.Side) *num.Uint {
	offset := num.DecimalFromFloat(g.cfg.Volatility * g.rng.Float64() * 2)
	quote := g.ref
	if side == types.SideBuy {
		quote = quote.Mul(num.DecimalOne().Sub(offset))
	} else {
		quote = quote.Mul(num.DecimalOne().Add(offset))
	}

	price, overflow := num.UintFromDecimal(quote)
	if overflow {
		price = num.UintZero()
	}

	tick := g.instrument.PriceTick
	price.Sub(price, num.UintZero().Mod(price, tick))
	if price.LT(tick) {
		price = tick.Clone()
	}
	return price
}

func (g *Generator) size() uint64 {
	lo, hi := g.cfg.MinSize, g.cfg.MaxSize
	if in := g.instrument; in.MinQuantity > 0 {
		lo = num.MaxV(lo, in.MinQuantity)
	}
	if in := g.instrument; in.MaxQuantity > 0 {
		hi = num.MinV(hi, in.MaxQuantity)
	}
	if lo == 0 {
		lo = 1
	}
	if hi < lo {
		hi = lo
	}

	size := lo + uint64(g.rng.Int63n(int64(hi-lo+1)))

	if tick := g.instrument.QuantityTick; tick > 1 {
		size -= size % tick
		if size < lo {
			size = lo + (tick-lo%tick)%tick
		}
	}
	return size
}

func (g *Generator) timeInForce() types.OrderTimeInForce {
	r := g.rng.Float64()
	if g.allows(types.OrderTimeInForceIOC) && r < g.cfg.IOCRatio {
		return types.OrderTimeInForceIOC
	}
	if g.allows(types.OrderTimeInForceFOK) && r < g.cfg.IOCRatio+g.cfg.FOKRatio {
		return types.OrderTimeInForceFOK
	}
	if g.allows(types.OrderTimeInForceDay) {
		return types.OrderTimeInForceDay
	}
	return g.tifs[g.rng.Intn(len(g.tifs))]
}

func (g *Generator) allows(tif types.OrderTimeInForce) bool {
	for _, t := range g.tifs {
		if t == tif {
			return true
		}
	}
	return false
}

func (g *Generator) party() string {
	if len(g.cfg.Parties) == 0 {
		return "trader-1"
	}
	return g.cfg.Parties[g.rng.Intn(len(g.cfg.Parties))]
}
