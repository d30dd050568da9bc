package types

import (
	"fmt"

	"github.com/Quod-Financial/quantreplay-sub002/libs/num"
)

// Trade is a single execution between an aggressive and a passive order.
// Its identifier is a market entry identifier minted by the id generator.
type Trade struct {
	ID         string
	Instrument string
	Price      *num.Uint
	Size       uint64
	Buyer      string
	Seller     string
	Aggressor  Side
	BuyOrder   string
	SellOrder  string
	Timestamp  int64
}

func (t Trade) String() string {
	return fmt.Sprintf(
		"ID(%s) instrument(%s) price(%s) size(%v) buyer(%s) seller(%s) aggressor(%s) buyOrder(%s) sellOrder(%s) timestamp(%v)",
		t.ID,
		t.Instrument,
		num.UintToString(t.Price),
		t.Size,
		t.Buyer,
		t.Seller,
		t.Aggressor.String(),
		t.BuyOrder,
		t.SellOrder,
		t.Timestamp,
	)
}
