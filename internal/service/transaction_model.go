package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/pocket-ledger/internal/pagination"
	"github.com/carson-networks/pocket-ledger/internal/storage/transaction"
)

// TransactionType represents a transaction type in the service layer.
type TransactionType int8

const (
	TransactionTypeDeposit TransactionType = iota + 1
	TransactionTypeWithdrawal
)

// ParseTransactionType accepts DEPOSIT or WITHDRAWAL in any case.
func ParseTransactionType(value string) (TransactionType, error) {
	kind, err := transaction.ParseKind(value)
	if err != nil {
		return 0, err
	}
	return typeFromStorage(kind), nil
}

func (t TransactionType) String() string {
	return typeToStorage(t).String()
}

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID             int64
	Amount         decimal.Decimal
	Type           TransactionType
	Description    string
	CreatedAt      time.Time
	LastModifiedAt time.Time
}

// TransactionCreate is the input for recording a new transaction.
type TransactionCreate struct {
	Amount      decimal.Decimal
	Type        TransactionType
	Description string
}

// TransactionQuery selects a page of the transaction history. The date
// range applies only when both bounds are set; both bounds are inclusive.
type TransactionQuery struct {
	StartDate *time.Time
	EndDate   *time.Time
	Type      *TransactionType
	Page      pagination.Request
}

// TransactionPage is a page of transactions, most recent first.
type TransactionPage = pagination.Page[Transaction]

// Balance is the ledger balance together with the transaction count. The
// two values are read separately and may straddle a concurrent write.
type Balance struct {
	Balance           decimal.Decimal
	TotalTransactions int64
	AsOf              time.Time
}

func typeToStorage(t TransactionType) transaction.Kind {
	return transaction.Kind(t)
}

func typeFromStorage(k transaction.Kind) TransactionType {
	return TransactionType(k)
}

func transactionFromStorage(row transaction.Transaction) Transaction {
	return Transaction{
		ID:             row.ID,
		Amount:         row.Amount,
		Type:           typeFromStorage(row.Kind),
		Description:    row.Description,
		CreatedAt:      row.CreatedAt,
		LastModifiedAt: row.LastModifiedAt,
	}
}
