package actions

import (
	"context"

	"github.com/carson-networks/pocket-ledger/internal/service"
)

// Ledger is the write side of the ledger an action runs against.
type Ledger interface {
	CreateTransaction(ctx context.Context, create service.TransactionCreate) (*service.Transaction, error)
}

type IAction interface {
	Perform(ctx context.Context, ledger Ledger) error
}
