package main

import (
	"github.com/Quod-Financial/quantreplay-sub002/core/types"
	"github.com/Quod-Financial/quantreplay-sub002/logging"
)

// logListener publishes the placement notification channels as log
// records, the closest thing a standalone simulator has to a client
// session.
type logListener struct {
	log        *logging.Logger
	instrument string
}

func newLogListener(log *logging.Logger, instrument string) *logListener {
	return &logListener{
		log:        log.Named("session"),
		instrument: instrument,
	}
}

func (l *logListener) OnOrderPlacementConfirmation(e types.OrderPlacementConfirmation) {
	l.log.Info("order placement confirmed",
		logging.Instrument(l.instrument),
		logging.ExecutionID(e.ExecutionID))
}

func (l *logListener) OnOrderPlacementReject(e types.OrderPlacementReject) {
	l.log.Info("order placement rejected",
		logging.Instrument(l.instrument),
		logging.ExecutionID(e.ExecutionID),
		logging.String("reject-text", e.RejectText))
}

func (l *logListener) OnOrderAdded(e types.OrderAdded) {
	l.log.Info("order added to book",
		logging.Instrument(l.instrument),
		logging.OrderID(e.OrderID))
}

func (l *logListener) OnOrderRemoved(e types.OrderRemoved) {
	l.log.Info("order removed from book",
		logging.Instrument(l.instrument),
		logging.OrderID(e.OrderID))
}
