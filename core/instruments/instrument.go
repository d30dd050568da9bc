package instruments

import (
	"github.com/Quod-Financial/quantreplay-sub002/libs/num"

	"github.com/pkg/errors"
)

// ErrMissingListingID is raised by the builder for listings without an
// identifier, before a snapshot ever reaches the matching core.
var ErrMissingListingID = errors.New("listing record has no identifier")

// Listing is the record consumed from the persistence collaborator. All
// fields beside the identifier are optional; tick and quantity values
// travel as strings so they can be TOML encoded losslessly.
type Listing struct {
	ID         string
	DatabaseID *int64

	Symbol           *string
	SecurityType     *string
	PriceCurrency    *string
	SecurityExchange *string
	PartyID          *string
	PartyRole        *string

	CUSIP           *string
	SEDOL           *string
	ISIN            *string
	RIC             *string
	ExchangeSymbol  *string
	BloombergSymbol *string

	PriceTick    *string
	QuantityTick *uint64
	MinQuantity  *uint64
	MaxQuantity  *uint64

	// PriceSeed is the reference price the synthetic flow walks around.
	PriceSeed *string
}

// Instrument is the immutable snapshot the matching core trades. It is
// built once from a Listing at load time and never mutated afterwards.
type Instrument struct {
	ID         string
	DatabaseID *int64

	Symbol           string
	SecurityType     string
	PriceCurrency    string
	SecurityExchange string
	PartyID          string
	PartyRole        string

	CUSIP           string
	SEDOL           string
	ISIN            string
	RIC             string
	ExchangeSymbol  string
	BloombergSymbol string

	PriceTick    *num.Uint
	QuantityTick uint64
	MinQuantity  uint64
	MaxQuantity  uint64

	PriceSeed num.Decimal
}

// NewFromListing builds the immutable instrument snapshot, applying each
// optional listing field once. Defaults: price tick 1, quantity tick 1,
// no quantity bounds, price seed 100.
func NewFromListing(l Listing) (*Instrument, error) {
	if l.ID == "" {
		return nil, ErrMissingListingID
	}

	in := &Instrument{
		ID:           l.ID,
		DatabaseID:   l.DatabaseID,
		PriceTick:    num.NewUint(1),
		QuantityTick: 1,
		PriceSeed:    num.DecimalFromInt64(100),
	}

	setString(&in.Symbol, l.Symbol)
	setString(&in.SecurityType, l.SecurityType)
	setString(&in.PriceCurrency, l.PriceCurrency)
	setString(&in.SecurityExchange, l.SecurityExchange)
	setString(&in.PartyID, l.PartyID)
	setString(&in.PartyRole, l.PartyRole)
	setString(&in.CUSIP, l.CUSIP)
	setString(&in.SEDOL, l.SEDOL)
	setString(&in.ISIN, l.ISIN)
	setString(&in.RIC, l.RIC)
	setString(&in.ExchangeSymbol, l.ExchangeSymbol)
	setString(&in.BloombergSymbol, l.BloombergSymbol)

	if l.PriceTick != nil {
		tick, overflow := num.UintFromString(*l.PriceTick, 10)
		if overflow || tick.IsZero() {
			return nil, errors.Errorf("listing %s: invalid price tick %q", l.ID, *l.PriceTick)
		}
		in.PriceTick = tick
	}
	if l.QuantityTick != nil {
		if *l.QuantityTick == 0 {
			return nil, errors.Errorf("listing %s: invalid quantity tick 0", l.ID)
		}
		in.QuantityTick = *l.QuantityTick
	}
	if l.MinQuantity != nil {
		in.MinQuantity = *l.MinQuantity
	}
	if l.MaxQuantity != nil {
		in.MaxQuantity = *l.MaxQuantity
	}
	if l.MinQuantity != nil && l.MaxQuantity != nil && *l.MinQuantity > *l.MaxQuantity {
		return nil, errors.Errorf("listing %s: min quantity %d above max quantity %d",
			l.ID, *l.MinQuantity, *l.MaxQuantity)
	}
	if l.PriceSeed != nil {
		seed, err := num.DecimalFromString(*l.PriceSeed)
		if err != nil {
			return nil, errors.Wrapf(err, "listing %s: invalid price seed", l.ID)
		}
		in.PriceSeed = seed
	}

	return in, nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
