package storage

import (
	"github.com/carson-networks/pocket-ledger/internal/storage/transaction"
)

// Storage groups the stores the service layer reads from and writes to.
type Storage struct {
	Transactions transaction.ITransactionStore
}

// NewStorage creates an empty in-memory Storage. Nothing survives a restart.
func NewStorage(opts ...transaction.Option) *Storage {
	return &Storage{
		Transactions: transaction.NewStore(opts...),
	}
}
