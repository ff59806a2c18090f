package query

import (
	"time"

	"github.com/carson-networks/pocket-ledger/internal/pagination"
	"github.com/carson-networks/pocket-ledger/internal/storage/transaction"
)

// Filter describes a history query. A date range applies only when both
// bounds are present.
type Filter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Kind      *transaction.Kind
	Page      pagination.Request
}

func (f Filter) HasDateRange() bool {
	return f.StartDate != nil && f.EndDate != nil
}

func (f Filter) HasType() bool {
	return f.Kind != nil
}

// Strategy is one retrieval path. CanHandle reports whether it answers the filter.
type Strategy interface {
	Name() string
	CanHandle(f Filter) bool
	Execute(f Filter, store transaction.ITransactionStore) transaction.Page
}

// AllTransactions answers unfiltered queries.
type AllTransactions struct{}

func (AllTransactions) Name() string { return "all" }

func (AllTransactions) CanHandle(f Filter) bool {
	return !f.HasDateRange() && !f.HasType()
}

func (AllTransactions) Execute(f Filter, store transaction.ITransactionStore) transaction.Page {
	return store.FindAll(f.Page)
}

// ByType answers queries filtered by kind only.
type ByType struct{}

func (ByType) Name() string { return "type" }

func (ByType) CanHandle(f Filter) bool {
	return f.HasType() && !f.HasDateRange()
}

func (ByType) Execute(f Filter, store transaction.ITransactionStore) transaction.Page {
	return store.FindByType(*f.Kind, f.Page)
}

// ByDateRange answers queries filtered by creation time only.
type ByDateRange struct{}

func (ByDateRange) Name() string { return "dateRange" }

func (ByDateRange) CanHandle(f Filter) bool {
	return f.HasDateRange() && !f.HasType()
}

func (ByDateRange) Execute(f Filter, store transaction.ITransactionStore) transaction.Page {
	return store.FindByDateRange(*f.StartDate, *f.EndDate, f.Page)
}

// ByDateRangeAndType answers queries filtered by both creation time and kind.
type ByDateRangeAndType struct{}

func (ByDateRangeAndType) Name() string { return "dateRangeAndType" }

func (ByDateRangeAndType) CanHandle(f Filter) bool {
	return f.HasDateRange() && f.HasType()
}

func (ByDateRangeAndType) Execute(f Filter, store transaction.ITransactionStore) transaction.Page {
	return store.FindByDateRangeAndType(*f.StartDate, *f.EndDate, *f.Kind, f.Page)
}
