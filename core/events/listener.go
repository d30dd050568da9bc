package events

import (
	"github.com/Quod-Financial/quantreplay-sub002/core/types"
)

//go:generate go run github.com/golang/mock/mockgen -destination mocks/mocks.go -package mocks github.com/Quod-Financial/quantreplay-sub002/core/events Listener

// Listener receives the notifications produced by the placement pipeline,
// in emission order. Calls are synchronous, made from the single goroutine
// owning the instrument's matching state; implementations must be
// non-blocking and must not re-enter the matching core.
type Listener interface {
	// Client notification channel.
	OnOrderPlacementConfirmation(types.OrderPlacementConfirmation)
	OnOrderPlacementReject(types.OrderPlacementReject)
	// Order book notification channel.
	OnOrderAdded(types.OrderAdded)
	OnOrderRemoved(types.OrderRemoved)
}

// NoopListener discards all notifications.
type NoopListener struct{}

func (NoopListener) OnOrderPlacementConfirmation(types.OrderPlacementConfirmation) {}
func (NoopListener) OnOrderPlacementReject(types.OrderPlacementReject)             {}
func (NoopListener) OnOrderAdded(types.OrderAdded)                                 {}
func (NoopListener) OnOrderRemoved(types.OrderRemoved)                             {}

// Listeners fans a notification out to every listener, preserving order.
type Listeners []Listener

func (ls Listeners) OnOrderPlacementConfirmation(e types.OrderPlacementConfirmation) {
	for _, l := range ls {
		l.OnOrderPlacementConfirmation(e)
	}
}

func (ls Listeners) OnOrderPlacementReject(e types.OrderPlacementReject) {
	for _, l := range ls {
		l.OnOrderPlacementReject(e)
	}
}

func (ls Listeners) OnOrderAdded(e types.OrderAdded) {
	for _, l := range ls {
		l.OnOrderAdded(e)
	}
}

func (ls Listeners) OnOrderRemoved(e types.OrderRemoved) {
	for _, l := range ls {
		l.OnOrderRemoved(e)
	}
}
