package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/pocket-ledger/internal/config"
	"github.com/carson-networks/pocket-ledger/internal/operator"
	"github.com/carson-networks/pocket-ledger/internal/operator/actions"
	"github.com/carson-networks/pocket-ledger/internal/service"
	"github.com/carson-networks/pocket-ledger/internal/storage"
)

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	return m.Called(ctx, action).Error(0)
}

type fixedBalance decimal.Decimal

func (b fixedBalance) GetBalance(context.Context) service.Balance {
	return service.Balance{Balance: decimal.Decimal(b)}
}

func TestRun_Disabled(t *testing.T) {
	logger, hook := test.NewNullLogger()
	proc := new(mockProcessor)
	s := NewSeeder(proc, fixedBalance(decimal.Zero), logger, 1)

	created, err := s.Run(context.Background(), config.SeedConfig{Enabled: false, Count: 10})

	require.NoError(t, err)
	assert.Zero(t, created)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "Data seeding disabled.", hook.LastEntry().Message)
	proc.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestRun_LowBalanceAlwaysDeposits(t *testing.T) {
	logger, _ := test.NewNullLogger()
	proc := new(mockProcessor)
	var seen []*actions.CreateTransaction
	proc.On("Process", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			seen = append(seen, args.Get(1).(*actions.CreateTransaction))
		}).
		Return(nil)

	s := NewSeeder(proc, fixedBalance(decimal.NewFromInt(999)), logger, 7)
	created, err := s.Run(context.Background(), config.SeedConfig{Enabled: true, Count: 20})

	require.NoError(t, err)
	assert.Equal(t, 20, created)
	require.Len(t, seen, 20)
	for _, a := range seen {
		assert.Equal(t, service.TransactionTypeDeposit, a.Type)
		assert.True(t, a.Amount.GreaterThanOrEqual(decimal.NewFromInt(minDeposit)), a.Amount.String())
		assert.True(t, a.Amount.LessThanOrEqual(decimal.NewFromInt(maxDeposit)), a.Amount.String())
		assert.LessOrEqual(t, -a.Amount.Exponent(), int32(amountPrecision))
		assert.NotEmpty(t, a.Description)
	}
}

func TestRun_HighBalanceMixesTypes(t *testing.T) {
	logger, _ := test.NewNullLogger()
	proc := new(mockProcessor)
	counts := map[service.TransactionType]int{}
	proc.On("Process", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			a := args.Get(1).(*actions.CreateTransaction)
			counts[a.Type]++
			if a.Type == service.TransactionTypeWithdrawal {
				assert.True(t, a.Amount.GreaterThanOrEqual(decimal.NewFromInt(minWithdrawal)))
				assert.True(t, a.Amount.LessThanOrEqual(decimal.NewFromInt(maxWithdrawal)))
			}
		}).
		Return(nil)

	s := NewSeeder(proc, fixedBalance(decimal.NewFromInt(50000)), logger, 42)
	created, err := s.Run(context.Background(), config.SeedConfig{Enabled: true, Count: 200})

	require.NoError(t, err)
	assert.Equal(t, 200, created)
	assert.Positive(t, counts[service.TransactionTypeDeposit])
	assert.Greater(t, counts[service.TransactionTypeWithdrawal], counts[service.TransactionTypeDeposit])
}

func TestRun_FailuresAreLoggedAndSkipped(t *testing.T) {
	logger, hook := test.NewNullLogger()
	proc := new(mockProcessor)
	proc.On("Process", mock.Anything, mock.Anything).Return(errors.New("rejected")).Once()
	proc.On("Process", mock.Anything, mock.Anything).Return(nil)

	s := NewSeeder(proc, fixedBalance(decimal.Zero), logger, 3)
	created, err := s.Run(context.Background(), config.SeedConfig{Enabled: true, Count: 3})

	require.NoError(t, err)
	assert.Equal(t, 2, created)

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Message == "Seeder.Run.transactionFailed" {
			warned = true
		}
	}
	assert.True(t, warned)
}

func TestRun_StopsOnCancel(t *testing.T) {
	logger, _ := test.NewNullLogger()
	proc := new(mockProcessor)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	created, err := NewSeeder(proc, fixedBalance(decimal.Zero), logger, 1).
		Run(ctx, config.SeedConfig{Enabled: true, Count: 5})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, created)
}

func TestRun_ThroughOperator(t *testing.T) {
	logger, _ := test.NewNullLogger()
	svc := service.NewService(storage.NewStorage(), logger)
	delegator := operator.NewOperatorDelegator(svc.Transaction, 2, 10)
	delegator.Start()
	defer delegator.Stop()

	s := NewSeeder(delegator, svc.Transaction, logger, 11)
	created, err := s.Run(context.Background(), config.SeedConfig{Enabled: true, Count: 25})
	require.NoError(t, err)

	balance := svc.Transaction.GetBalance(context.Background())
	assert.Equal(t, int64(created), balance.TotalTransactions)
	assert.False(t, balance.Balance.IsNegative())
}
