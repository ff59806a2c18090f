package transaction

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/pocket-ledger/internal/pagination"
)

var _ ITransactionStore = (*Store)(nil)

// Store is the in-memory home of all transactions. It owns the identity
// index, the time index and the running balance.
type Store struct {
	nextID  atomic.Int64
	count   atomic.Int64
	balance atomic.Pointer[decimal.Decimal]
	byID    sync.Map // int64 -> Transaction
	times   *timeIndex
	clock   func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the clock used to stamp new records.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

// NewStore creates an empty Store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		times: newTimeIndex(),
		clock: time.Now,
	}
	zero := decimal.Zero
	s.balance.Store(&zero)

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save assigns the next id and creation time to a new record and folds its
// signed amount into the balance. The balance reflects the record before the
// record becomes visible to readers.
func (s *Store) Save(amount decimal.Decimal, kind Kind, description string) (Transaction, error) {
	if !kind.Valid() {
		return Transaction{}, ErrInvalidKind
	}

	// The id is taken before the clock is read. Concurrent saves can still
	// stamp a higher id with an earlier time; the time index orders by
	// createdAt and breaks ties by id.
	id := s.nextID.Add(1)
	now := s.clock().UTC()
	tx := Transaction{
		ID:             id,
		Amount:         amount,
		Kind:           kind,
		Description:    description,
		CreatedAt:      now,
		LastModifiedAt: now,
	}

	s.foldBalance(tx.SignedAmount())
	s.byID.Store(tx.ID, tx)
	s.count.Add(1)
	s.times.insert(tx.CreatedAt, tx.ID)

	return tx, nil
}

func (s *Store) foldBalance(delta decimal.Decimal) {
	for {
		current := s.balance.Load()
		next := current.Add(delta)
		if s.balance.CompareAndSwap(current, &next) {
			return
		}
	}
}

// FindByID retrieves a transaction by id.
func (s *Store) FindByID(id int64) (Transaction, bool) {
	v, ok := s.byID.Load(id)
	if !ok {
		return Transaction{}, false
	}
	return v.(Transaction), true
}

// FindAll returns every transaction, most recent first.
func (s *Store) FindAll(req pagination.Request) Page {
	return s.collect(s.times.descend, nil, req)
}

// FindByDateRange returns transactions created within [start, end].
func (s *Store) FindByDateRange(start, end time.Time, req pagination.Request) Page {
	return s.collect(rangeScan(s.times, start, end), nil, req)
}

// FindByType returns transactions of the given kind.
func (s *Store) FindByType(kind Kind, req pagination.Request) Page {
	return s.collect(s.times.descend, ofKind(kind), req)
}

// FindByDateRangeAndType returns transactions of the given kind created within [start, end].
func (s *Store) FindByDateRangeAndType(start, end time.Time, kind Kind, req pagination.Request) Page {
	return s.collect(rangeScan(s.times, start, end), ofKind(kind), req)
}

// CalculateBalance returns the running balance.
func (s *Store) CalculateBalance() decimal.Decimal {
	return *s.balance.Load()
}

// CountTransactions returns the number of stored transactions.
func (s *Store) CountTransactions() int64 {
	return s.count.Load()
}

type scan func(fn func(id int64) bool)

func rangeScan(ix *timeIndex, start, end time.Time) scan {
	return func(fn func(id int64) bool) {
		ix.descendRange(start, end, fn)
	}
}

func ofKind(kind Kind) func(Transaction) bool {
	return func(t Transaction) bool {
		return t.Kind == kind
	}
}

// collect walks a scan in index order, counting every match and keeping only
// the ones inside the requested window.
func (s *Store) collect(walk scan, match func(Transaction) bool, req pagination.Request) Page {
	if req.Size <= 0 {
		return pagination.New[Transaction](nil, req, 0)
	}

	offset := req.Offset()
	items := make([]Transaction, 0, req.Size)
	total := 0

	walk(func(id int64) bool {
		tx, ok := s.FindByID(id)
		if !ok {
			return true
		}
		if match != nil && !match(tx) {
			return true
		}
		if total >= offset && len(items) < req.Size {
			items = append(items, tx)
		}
		total++
		return true
	})

	return pagination.New(items, req, total)
}
