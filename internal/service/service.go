package service

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/pocket-ledger/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage, logger *logrus.Logger) *Service {
	return &Service{
		Transaction: NewTransactionService(store, logger),
	}
}
