package query

import (
	"errors"

	"github.com/carson-networks/pocket-ledger/internal/storage/transaction"
)

// ErrNoStrategyAvailable means no registered strategy claimed a filter. The
// default strategies cover every filter, so this is a wiring defect.
var ErrNoStrategyAvailable = errors.New("query: no strategy available for filter")

// DefaultStrategies returns the built-in strategies in registration order.
func DefaultStrategies() []Strategy {
	return []Strategy{
		AllTransactions{},
		ByType{},
		ByDateRange{},
		ByDateRangeAndType{},
	}
}

// Dispatcher runs a filter through the first strategy that claims it.
type Dispatcher struct {
	strategies []Strategy
}

// NewDispatcher creates a Dispatcher over the given strategies, evaluated in
// order. With no strategies it uses DefaultStrategies.
func NewDispatcher(strategies ...Strategy) *Dispatcher {
	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}
	return &Dispatcher{strategies: strategies}
}

// Select returns the strategy that will answer the filter.
func (d *Dispatcher) Select(f Filter) (Strategy, error) {
	for _, strategy := range d.strategies {
		if strategy.CanHandle(f) {
			return strategy, nil
		}
	}
	return nil, ErrNoStrategyAvailable
}

// Execute answers the filter against the store.
func (d *Dispatcher) Execute(f Filter, store transaction.ITransactionStore) (transaction.Page, error) {
	strategy, err := d.Select(f)
	if err != nil {
		return transaction.Page{}, err
	}
	return strategy.Execute(f, store), nil
}
