package store

import (
	"encoding/json"

	"github.com/Quod-Financial/quantreplay-sub002/core/types"
	"github.com/Quod-Financial/quantreplay-sub002/logging"

	"github.com/dgraph-io/badger/v2"
	"github.com/pkg/errors"
)

// Keys are namespaced per instrument, identifier sequences are scoped to
// one instrument's matching context.
const (
	orderPrefix = "orders/"
	tradePrefix = "trades/"
	idPrefix    = "ids/"
)

func key(prefix, instrument, id string) []byte {
	return []byte(prefix + instrument + "/" + id)
}

// Store journals orders, trades and issued identifiers in a badger
// database so a restarted session can recover the identifiers it already
// handed out. It is a journal, not a system of record: durability beyond
// badger's defaults is out of scope.
type Store struct {
	log *logging.Logger
	db  *badger.DB
}

// New opens the journal. Callers should not construct a store when the
// journal is disabled in the configuration.
func New(log *logging.Logger, config Config) (*Store, error) {
	log = log.Named(namedLogger)
	log.SetLevel(config.Level.Get())

	opts := badger.DefaultOptions(config.Path).
		WithLogger(log.Named("badger"))
	if config.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true).
			WithLogger(log.Named("badger"))
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open journal store")
	}
	return &Store{
		log: log,
		db:  db,
	}, nil
}

// Close flushes and closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveOrder journals the current state of an order, keyed by id under the
// order's instrument, and records the id as issued.
func (s *Store) SaveOrder(o *types.Order) error {
	buf, err := json.Marshal(o)
	if err != nil {
		return errors.Wrap(err, "failed to encode order")
	}
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key(orderPrefix, o.Instrument, o.ID), buf); err != nil {
			return err
		}
		return txn.Set(key(idPrefix, o.Instrument, o.ID), nil)
	})
}

// SaveTrade journals a trade, keyed by its market entry id, and records
// the id as issued.
func (s *Store) SaveTrade(t *types.Trade) error {
	if t.ID == "" {
		// an unpublishable trade, nothing to key it by
		return nil
	}
	buf, err := json.Marshal(t)
	if err != nil {
		return errors.Wrap(err, "failed to encode trade")
	}
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key(tradePrefix, t.Instrument, t.ID), buf); err != nil {
			return err
		}
		return txn.Set(key(idPrefix, t.Instrument, t.ID), nil)
	})
}

// SaveIssuedID records an identifier as issued without journalling a
// payload, used for execution ids.
func (s *Store) SaveIssuedID(instrument, id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(idPrefix, instrument, id), nil)
	})
}

// IssuedIDs returns every identifier recorded as issued for one
// instrument, used to seed the id generator's collision set on recovery.
func (s *Store) IssuedIDs(instrument string) ([]string, error) {
	prefix := key(idPrefix, instrument, "")
	var ids []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			k := it.Item().Key()
			ids = append(ids, string(k[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan issued ids")
	}
	return ids, nil
}

// GetOrder reads an order back from the journal.
func (s *Store) GetOrder(instrument, id string) (*types.Order, error) {
	var o types.Order
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(orderPrefix, instrument, id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &o)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, types.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read order")
	}
	return &o, nil
}
