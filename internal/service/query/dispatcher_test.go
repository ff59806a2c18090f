package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/pocket-ledger/internal/pagination"
	"github.com/carson-networks/pocket-ledger/internal/storage/transaction"
)

var (
	start = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end   = time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)
	req   = pagination.NewRequest(1, 10)
)

func kindPtr(k transaction.Kind) *transaction.Kind { return &k }

func resultPage(ids ...int64) transaction.Page {
	items := make([]transaction.Transaction, len(ids))
	for i, id := range ids {
		items[i] = transaction.Transaction{ID: id}
	}
	return pagination.New(items, req, len(ids))
}

func TestFilter_Predicates(t *testing.T) {
	tests := []struct {
		name      string
		filter    Filter
		wantRange bool
		wantType  bool
	}{
		{name: "empty", filter: Filter{}},
		{name: "start only", filter: Filter{StartDate: &start}},
		{name: "end only", filter: Filter{EndDate: &end}},
		{name: "range", filter: Filter{StartDate: &start, EndDate: &end}, wantRange: true},
		{name: "type", filter: Filter{Kind: kindPtr(transaction.KindDeposit)}, wantType: true},
		{name: "both", filter: Filter{StartDate: &start, EndDate: &end, Kind: kindPtr(transaction.KindWithdrawal)}, wantRange: true, wantType: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantRange, tt.filter.HasDateRange())
			assert.Equal(t, tt.wantType, tt.filter.HasType())
		})
	}
}

func TestDispatcher_ExactlyOneStrategyClaimsEachFilter(t *testing.T) {
	filters := map[string]Filter{
		"all":              {},
		"type":             {Kind: kindPtr(transaction.KindDeposit)},
		"dateRange":        {StartDate: &start, EndDate: &end},
		"dateRangeAndType": {StartDate: &start, EndDate: &end, Kind: kindPtr(transaction.KindDeposit)},
	}

	for want, filter := range filters {
		t.Run(want, func(t *testing.T) {
			claimed := 0
			for _, strategy := range DefaultStrategies() {
				if strategy.CanHandle(filter) {
					claimed++
				}
			}
			assert.Equal(t, 1, claimed)

			strategy, err := NewDispatcher().Select(filter)
			require.NoError(t, err)
			assert.Equal(t, want, strategy.Name())
		})
	}
}

func TestDispatcher_NoFilter(t *testing.T) {
	store := transaction.NewMockITransactionStore(t)
	store.EXPECT().FindAll(req).Return(resultPage(3, 2, 1))

	page, err := NewDispatcher().Execute(Filter{Page: req}, store)

	require.NoError(t, err)
	assert.Len(t, page.Items, 3)
}

func TestDispatcher_TypeOnly(t *testing.T) {
	store := transaction.NewMockITransactionStore(t)
	store.EXPECT().FindByType(transaction.KindWithdrawal, req).Return(resultPage(4))

	page, err := NewDispatcher().Execute(Filter{Kind: kindPtr(transaction.KindWithdrawal), Page: req}, store)

	require.NoError(t, err)
	assert.Equal(t, int64(4), page.Items[0].ID)
}

func TestDispatcher_RangeOnly(t *testing.T) {
	store := transaction.NewMockITransactionStore(t)
	store.EXPECT().FindByDateRange(start, end, req).Return(resultPage(7, 6))

	page, err := NewDispatcher().Execute(Filter{StartDate: &start, EndDate: &end, Page: req}, store)

	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalElements)
}

func TestDispatcher_RangeAndType(t *testing.T) {
	store := transaction.NewMockITransactionStore(t)
	store.EXPECT().FindByDateRangeAndType(start, end, transaction.KindDeposit, req).Return(resultPage(5))

	page, err := NewDispatcher().Execute(Filter{
		StartDate: &start,
		EndDate:   &end,
		Kind:      kindPtr(transaction.KindDeposit),
		Page:      req,
	}, store)

	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
}

func TestDispatcher_SingleBoundFallsBackToAll(t *testing.T) {
	store := transaction.NewMockITransactionStore(t)
	store.EXPECT().FindAll(req).Return(resultPage())

	_, err := NewDispatcher().Execute(Filter{StartDate: &start, Page: req}, store)

	require.NoError(t, err)
	store.AssertNotCalled(t, "FindByDateRange", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatcher_NoStrategyAvailable(t *testing.T) {
	store := transaction.NewMockITransactionStore(t)

	_, err := NewDispatcher(ByType{}).Execute(Filter{Page: req}, store)

	assert.ErrorIs(t, err, ErrNoStrategyAvailable)
}

type recordingStrategy struct {
	claims bool
	ran    *bool
}

func (recordingStrategy) Name() string { return "recording" }

func (s recordingStrategy) CanHandle(Filter) bool { return s.claims }

func (s recordingStrategy) Execute(f Filter, _ transaction.ITransactionStore) transaction.Page {
	*s.ran = true
	return pagination.New[transaction.Transaction](nil, f.Page, 0)
}

func TestDispatcher_FirstClaimantWins(t *testing.T) {
	var firstRan, secondRan bool
	d := NewDispatcher(
		recordingStrategy{claims: false, ran: new(bool)},
		recordingStrategy{claims: true, ran: &firstRan},
		recordingStrategy{claims: true, ran: &secondRan},
	)

	_, err := d.Execute(Filter{Page: req}, transaction.NewMockITransactionStore(t))

	require.NoError(t, err)
	assert.True(t, firstRan)
	assert.False(t, secondRan)
}
