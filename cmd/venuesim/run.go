package main

import (
	"context"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Quod-Financial/quantreplay-sub002/config"
	"github.com/Quod-Financial/quantreplay-sub002/core/depth"
	"github.com/Quod-Financial/quantreplay-sub002/core/events"
	"github.com/Quod-Financial/quantreplay-sub002/core/flowgen"
	"github.com/Quod-Financial/quantreplay-sub002/core/idgeneration"
	"github.com/Quod-Financial/quantreplay-sub002/core/instruments"
	"github.com/Quod-Financial/quantreplay-sub002/core/matching"
	"github.com/Quod-Financial/quantreplay-sub002/core/phases"
	"github.com/Quod-Financial/quantreplay-sub002/core/placement"
	"github.com/Quod-Financial/quantreplay-sub002/core/store"
	"github.com/Quod-Financial/quantreplay-sub002/core/types"
	"github.com/Quod-Financial/quantreplay-sub002/logging"

	uuid "github.com/satori/go.uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "run the simulator session",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.NewLoggerFromEnv(rootArgs.env)
			defer log.AtExit()

			cfg, err := config.Read(rootArgs.rootPath)
			if err != nil {
				return err
			}
			if cfg.Logging.Environment != rootArgs.env {
				log = logging.NewLoggerFromEnv(cfg.Logging.Environment)
				defer log.AtExit()
			}
			ctx, cancel := signal.NotifyContext(
				context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return runSession(ctx, log, cfg)
		},
	}
}

func runSession(ctx context.Context, log *logging.Logger, cfg *config.Config) error {
	sessionID := uuid.NewV4().String()
	log.Info("starting simulator session",
		logging.String("session-id", sessionID),
		logging.String("venue", cfg.Venue.Name),
		logging.Int("listings", len(cfg.Listings)))

	var journal *store.Store
	if cfg.Store.Enabled {
		var err error
		journal, err = store.New(log, cfg.Store)
		if err != nil {
			return err
		}
		defer journal.Close()
	}

	var wg sync.WaitGroup
	for _, listing := range cfg.Listings {
		in, err := instruments.NewFromListing(listing)
		if err != nil {
			return err
		}
		sess, err := newInstrumentSession(log, cfg, in, journal)
		if err != nil {
			return err
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess.loop(ctx)
		}()
	}

	wg.Wait()
	log.Info("simulator session stopped", logging.String("session-id", sessionID))
	return nil
}

// instrumentSession owns one instrument's full stack. Every piece of
// matching state is touched only from loop's goroutine.
type instrumentSession struct {
	log *logging.Logger
	cfg *config.Config

	instrument *instruments.Instrument
	engine     *placement.Engine
	depth      *depth.Book
	gen        *flowgen.Generator
	journal    *store.Store
}

func newInstrumentSession(
	log *logging.Logger,
	cfg *config.Config,
	in *instruments.Instrument,
	journal *store.Store,
) (*instrumentSession, error) {
	idgen := idgeneration.New()
	if journal != nil {
		issued, err := journal.IssuedIDs(in.ID)
		if err != nil {
			return nil, err
		}
		if len(issued) > 0 {
			log.Info("recovered issued identifiers from journal",
				logging.Instrument(in.ID),
				logging.Int("count", len(issued)))
		}
		idgen.Restore(issued...)
	}

	book := matching.NewOrderBook(log, cfg.Matching, in.ID)
	listener := events.Listeners{newLogListener(log, in.ID)}
	engine := placement.New(log, cfg.Placement, in.ID, book, idgen, listener)

	return &instrumentSession{
		log:        log.Named("run").With(logging.Instrument(in.ID)),
		cfg:        cfg,
		instrument: in,
		engine:     engine,
		depth:      depth.New(log, cfg.Depth, in.PartyID),
		gen: flowgen.New(log, cfg.FlowGen, in,
			bool(cfg.Venue.SupportDayOrders),
			bool(cfg.Venue.SupportIOCOrders),
			bool(cfg.Venue.SupportFOKOrders)),
		journal: journal,
	}, nil
}

func (s *instrumentSession) loop(ctx context.Context) {
	rate := s.cfg.Venue.OrderRate.Get()
	if rate <= 0 {
		rate = 250 * time.Millisecond
	}
	ticker := time.NewTicker(rate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.shutdown()
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

// shutdown ends the instrument's session: with cancel-on-disconnect set
// every resting order is cancelled before the market closes.
func (s *instrumentSession) shutdown() {
	if s.cfg.Venue.CancelOnDisconnect {
		for _, id := range s.engine.Book().GetOrderIDs() {
			conf, err := s.engine.CancelOrder(id)
			if err != nil {
				s.log.Error("failed to cancel order on disconnect",
					logging.OrderID(id), logging.Error(err))
				continue
			}
			s.depth.OnCancel(conf.Order)
		}
	}
	s.engine.EnterPhase(phases.New(phases.PhaseClosed, phases.StatusHalt, nil))
	s.log.Info("instrument flow stopped")
}

func (s *instrumentSession) tick() {
	sub := s.gen.Next()
	conf, err := s.engine.SubmitOrder(sub)
	if err != nil {
		s.log.Error("order submission failed", logging.Error(err))
		return
	}

	s.depth.OnConfirmation(conf)
	s.streamTrades(conf.Trades)
	s.journalConfirmation(conf)

	if s.log.IsDebug() {
		if bid, ok := s.depth.BestBid(); ok {
			s.log.Debug("best bid",
				logging.BigUint("price", bid.Price),
				logging.Uint64("volume", bid.Volume))
		}
		if ask, ok := s.depth.BestAsk(); ok {
			s.log.Debug("best ask",
				logging.BigUint("price", ask.Price),
				logging.Uint64("volume", ask.Volume))
		}
	}
}

// streamTrades publishes executed trades honouring the venue streaming
// flags, quiet fields are simply left out of the record.
func (s *instrumentSession) streamTrades(trades []*types.Trade) {
	if !s.cfg.Venue.StreamTrades {
		return
	}
	for _, t := range trades {
		fields := []zap.Field{
			logging.String("trade-id", t.ID),
			logging.BigUint("price", t.Price),
		}
		if s.cfg.Venue.StreamTradeVolume {
			fields = append(fields, logging.Uint64("size", t.Size))
		}
		if s.cfg.Venue.StreamTradeParties {
			fields = append(fields,
				logging.String("buyer", t.Buyer),
				logging.String("seller", t.Seller))
		}
		if s.cfg.Venue.StreamAggressor {
			fields = append(fields, logging.String("aggressor", t.Aggressor.String()))
		}
		s.log.Info("trade", fields...)
	}
}

func (s *instrumentSession) journalConfirmation(conf *types.OrderConfirmation) {
	if s.journal == nil {
		return
	}
	if err := s.journal.SaveOrder(conf.Order); err != nil {
		s.log.Error("failed to journal order", logging.Error(err))
	}
	for _, t := range conf.Trades {
		if err := s.journal.SaveTrade(t); err != nil {
			s.log.Error("failed to journal trade", logging.Error(err))
		}
	}
	for _, o := range conf.PassiveOrdersAffected {
		if err := s.journal.SaveOrder(o); err != nil {
			s.log.Error("failed to journal order", logging.Error(err))
		}
	}
}
