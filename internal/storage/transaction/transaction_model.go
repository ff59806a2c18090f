package transaction

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/pocket-ledger/internal/pagination"
)

// ErrInvalidKind is returned when a record is saved with an unknown kind.
var ErrInvalidKind = errors.New("transaction: invalid kind")

// Kind is the direction of a transaction.
type Kind int8

const (
	KindDeposit Kind = iota + 1
	KindWithdrawal
)

// Multiplier is the sign applied to the amount when folding it into the balance.
func (k Kind) Multiplier() int64 {
	switch k {
	case KindDeposit:
		return 1
	case KindWithdrawal:
		return -1
	default:
		return 0
	}
}

func (k Kind) Valid() bool {
	return k == KindDeposit || k == KindWithdrawal
}

func (k Kind) String() string {
	switch k {
	case KindDeposit:
		return "DEPOSIT"
	case KindWithdrawal:
		return "WITHDRAWAL"
	default:
		return fmt.Sprintf("Kind(%d)", int8(k))
	}
}

// ParseKind accepts DEPOSIT or WITHDRAWAL in any case, ignoring surrounding spaces.
func ParseKind(value string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "DEPOSIT":
		return KindDeposit, nil
	case "WITHDRAWAL":
		return KindWithdrawal, nil
	default:
		return 0, fmt.Errorf("Invalid transaction type: '%s'. Valid values are: DEPOSIT, WITHDRAWAL", value)
	}
}

// Transaction represents a transaction record.
type Transaction struct {
	ID             int64
	Amount         decimal.Decimal
	Kind           Kind
	Description    string
	CreatedAt      time.Time
	LastModifiedAt time.Time
}

// SignedAmount is the amount with the kind's multiplier applied.
func (t Transaction) SignedAmount() decimal.Decimal {
	return t.Amount.Mul(decimal.NewFromInt(t.Kind.Multiplier()))
}

// Page is a window of transactions, most recent first.
type Page = pagination.Page[Transaction]

// ITransactionStore defines the interface for transaction storage operations.
// Page requests must carry a size of at least one.
//
//go:generate mockery --name ITransactionStore --inpackage --with-expecter
type ITransactionStore interface {
	Save(amount decimal.Decimal, kind Kind, description string) (Transaction, error)
	FindByID(id int64) (Transaction, bool)
	FindAll(req pagination.Request) Page
	FindByDateRange(start, end time.Time, req pagination.Request) Page
	FindByType(kind Kind, req pagination.Request) Page
	FindByDateRangeAndType(start, end time.Time, kind Kind, req pagination.Request) Page
	CalculateBalance() decimal.Decimal
	CountTransactions() int64
}
