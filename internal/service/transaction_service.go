package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/pocket-ledger/internal/pagination"
	"github.com/carson-networks/pocket-ledger/internal/service/query"
	"github.com/carson-networks/pocket-ledger/internal/storage"
	"github.com/carson-networks/pocket-ledger/internal/storage/transaction"
)

// TransactionService handles transaction business logic. It is the only
// writer of the transaction store.
type TransactionService struct {
	storage    *storage.Storage
	dispatcher *query.Dispatcher
	logger     *logrus.Logger
	clock      func() time.Time

	// withdrawMu serialises the balance check and commit of withdrawals.
	withdrawMu sync.Mutex
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, logger *logrus.Logger) *TransactionService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &TransactionService{
		storage:    store,
		dispatcher: query.NewDispatcher(),
		logger:     logger,
		clock:      time.Now,
	}
}

// CreateTransaction records a deposit or withdrawal. A withdrawal larger than
// the current balance fails with *InsufficientBalanceError.
func (s *TransactionService) CreateTransaction(ctx context.Context, create TransactionCreate) (*Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	kind := typeToStorage(create.Type)
	if kind == transaction.KindWithdrawal {
		s.withdrawMu.Lock()
		defer s.withdrawMu.Unlock()

		current := s.storage.Transactions.CalculateBalance()
		if current.LessThan(create.Amount) {
			s.logger.WithFields(logrus.Fields{
				"currentBalance":  current.StringFixed(2),
				"requestedAmount": create.Amount.StringFixed(2),
			}).Info("TransactionService.CreateTransaction.insufficientBalance")
			return nil, &InsufficientBalanceError{Current: current, Requested: create.Amount}
		}
	}

	// A caller that gave up while waiting on the withdrawal lock must not
	// commit. Save itself does not block, so past this point the record lands.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	row, err := s.storage.Transactions.Save(create.Amount, kind, create.Description)
	if err != nil {
		return nil, fmt.Errorf("save transaction: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"transactionID": row.ID,
		"type":          row.Kind.String(),
	}).Debug("TransactionService.CreateTransaction.saved")

	tx := transactionFromStorage(row)
	return &tx, nil
}

// GetTransaction retrieves a transaction by id.
func (s *TransactionService) GetTransaction(ctx context.Context, id int64) (*Transaction, error) {
	row, ok := s.storage.Transactions.FindByID(id)
	if !ok {
		return nil, &TransactionNotFoundError{ID: id}
	}
	tx := transactionFromStorage(row)
	return &tx, nil
}

// GetBalance returns the current balance and transaction count.
func (s *TransactionService) GetBalance(ctx context.Context) Balance {
	return Balance{
		Balance:           s.storage.Transactions.CalculateBalance(),
		TotalTransactions: s.storage.Transactions.CountTransactions(),
		AsOf:              s.clock(),
	}
}

// QueryTransactions returns a page of the history matching the query.
func (s *TransactionService) QueryTransactions(ctx context.Context, q TransactionQuery) (TransactionPage, error) {
	filter := query.Filter{
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
		Page:      q.Page,
	}
	if q.Type != nil {
		kind := typeToStorage(*q.Type)
		filter.Kind = &kind
	}

	rows, err := s.dispatcher.Execute(filter, s.storage.Transactions)
	if err != nil {
		s.logger.WithError(err).Error("TransactionService.QueryTransactions.dispatch")
		return TransactionPage{}, fmt.Errorf("query transactions: %w", err)
	}

	return pagination.Map(rows, transactionFromStorage), nil
}
