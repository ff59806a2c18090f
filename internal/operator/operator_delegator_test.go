package operator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/pocket-ledger/internal/operator/actions"
	"github.com/carson-networks/pocket-ledger/internal/service"
)

type mockLedger struct {
	mock.Mock
}

func (m *mockLedger) CreateTransaction(ctx context.Context, create service.TransactionCreate) (*service.Transaction, error) {
	args := m.Called(ctx, create)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func newStartedDelegator(t *testing.T, ledger actions.Ledger, workers int) *OperatorDelegator {
	t.Helper()
	d := NewOperatorDelegator(ledger, workers, 10)
	d.Start()
	t.Cleanup(d.Stop)
	return d
}

func TestProcess_CreateTransaction(t *testing.T) {
	ledger := new(mockLedger)
	amount := decimal.RequireFromString("25.00")
	ledger.On("CreateTransaction", mock.Anything, service.TransactionCreate{
		Amount:      amount,
		Type:        service.TransactionTypeDeposit,
		Description: "Gift",
	}).Return(&service.Transaction{ID: 1, Amount: amount, Type: service.TransactionTypeDeposit}, nil)

	d := newStartedDelegator(t, ledger, 2)
	action := &actions.CreateTransaction{Amount: amount, Type: service.TransactionTypeDeposit, Description: "Gift"}

	err := d.Process(context.Background(), action)

	require.NoError(t, err)
	require.NotNil(t, action.Created)
	assert.Equal(t, int64(1), action.Created.ID)
	ledger.AssertExpectations(t)
}

func TestProcess_PropagatesActionError(t *testing.T) {
	ledger := new(mockLedger)
	rejection := &service.InsufficientBalanceError{
		Current:   decimal.Zero,
		Requested: decimal.RequireFromString("5.00"),
	}
	ledger.On("CreateTransaction", mock.Anything, mock.Anything).Return(nil, rejection)

	d := newStartedDelegator(t, ledger, 1)
	action := &actions.CreateTransaction{Amount: decimal.RequireFromString("5.00"), Type: service.TransactionTypeWithdrawal}

	err := d.Process(context.Background(), action)

	assert.ErrorIs(t, err, service.ErrInsufficientBalance)
	assert.Nil(t, action.Created)
}

func TestProcess_CancelledBeforeEnqueue(t *testing.T) {
	ledger := new(mockLedger)
	d := NewOperatorDelegator(ledger, 1, 1)
	// Workers are not started, so a cancelled context is the only way out.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Process(ctx, &actions.CreateTransaction{})

	assert.True(t, errors.Is(err, context.Canceled))
	ledger.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
}

func TestProcess_TimesOutWaitingForWorker(t *testing.T) {
	ledger := new(mockLedger)
	release := make(chan struct{})
	ledger.On("CreateTransaction", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(&service.Transaction{ID: 1}, nil)

	d := newStartedDelegator(t, ledger, 1)
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := d.Process(ctx, &actions.CreateTransaction{})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestProcess_AfterStop(t *testing.T) {
	d := NewOperatorDelegator(new(mockLedger), 1, 1)
	d.Start()
	d.Stop()
	d.Stop()

	err := d.Process(context.Background(), &actions.CreateTransaction{})

	assert.ErrorIs(t, err, ErrStopped)
}

func TestProcess_ConcurrentCallers(t *testing.T) {
	ledger := new(mockLedger)
	ledger.On("CreateTransaction", mock.Anything, mock.Anything).Return(&service.Transaction{ID: 1}, nil)

	d := newStartedDelegator(t, ledger, 4)

	const callers = 50
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			if err := d.Process(context.Background(), &actions.CreateTransaction{}); err != nil {
				t.Errorf("process: %v", err)
			}
		}()
	}
	wg.Wait()

	ledger.AssertNumberOfCalls(t, "CreateTransaction", callers)
}
