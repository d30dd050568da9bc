package idgeneration

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrCollisionDetected is returned when a freshly minted identifier
// duplicates one already issued, or one recovered from persisted state.
// The operation needing the identifier fails, the process carries on.
var ErrCollisionDetected = errors.New("identifier collision detected")

// Sequence is an unsigned monotonic counter. The first issued value is 1.
type Sequence struct {
	n uint64
}

// Current returns the last issued value, zero if nothing was issued.
func (s *Sequence) Current() uint64 {
	return s.n
}

// Next issues the next value.
func (s *Sequence) Next() uint64 {
	s.n++
	return s.n
}

// Generator mints order, market entry and execution identifiers for one
// instrument's matching context. No mutex required, each instrument's
// context works deterministically and sequentially.
type Generator struct {
	orders     Sequence
	entries    Sequence
	executions map[string]*Sequence
	known      map[string]struct{}
}

func New() *Generator {
	return &Generator{
		executions: map[string]*Sequence{},
		known:      map[string]struct{}{},
	}
}

// Restore seeds the collision set with identifiers recovered from
// persisted state, so they can never be issued again.
func (g *Generator) Restore(ids ...string) {
	for _, id := range ids {
		g.known[id] = struct{}{}
	}
}

// OrderSequence exposes the order id counter.
func (g *Generator) OrderSequence() *Sequence {
	return &g.orders
}

// MarketEntrySequence exposes the market entry id counter.
func (g *Generator) MarketEntrySequence() *Sequence {
	return &g.entries
}

// NextOrderID mints the next order identifier.
func (g *Generator) NextOrderID() (string, error) {
	return g.issue(fmt.Sprintf("O-%010d", g.orders.Next()))
}

// NextMarketEntryID mints the next market entry identifier.
func (g *Generator) NextMarketEntryID() (string, error) {
	return g.issue(fmt.Sprintf("M-%010d", g.entries.Next()))
}

// NextExecutionID mints the next execution identifier for the given order.
// Execution identifiers follow "<order-id>-1", "<order-id>-2", ... with the
// counter carried forward across the whole life of the order.
func (g *Generator) NextExecutionID(orderID string) (string, error) {
	seq, ok := g.executions[orderID]
	if !ok {
		seq = &Sequence{}
		g.executions[orderID] = seq
	}
	return g.issue(fmt.Sprintf("%s-%d", orderID, seq.Next()))
}

func (g *Generator) issue(id string) (string, error) {
	if _, ok := g.known[id]; ok {
		return "", errors.Wrap(ErrCollisionDetected, id)
	}
	g.known[id] = struct{}{}
	return id, nil
}
