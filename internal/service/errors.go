package service

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance for withdrawal")
	ErrTransactionNotFound = errors.New("transaction not found")
)

// InsufficientBalanceError rejects a withdrawal larger than the current balance.
type InsufficientBalanceError struct {
	Current   decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("%v: current %s, requested %s",
		ErrInsufficientBalance, e.Current.StringFixed(2), e.Requested.StringFixed(2))
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// TransactionNotFoundError reports a lookup of an id that was never assigned.
type TransactionNotFoundError struct {
	ID int64
}

func (e *TransactionNotFoundError) Error() string {
	return fmt.Sprintf("%v: id %d", ErrTransactionNotFound, e.ID)
}

func (e *TransactionNotFoundError) Is(target error) bool {
	return target == ErrTransactionNotFound
}
