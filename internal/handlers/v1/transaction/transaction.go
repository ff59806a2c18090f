package transaction

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/pocket-ledger/internal/config"
	"github.com/carson-networks/pocket-ledger/internal/service"
)

const amountPlaces = 2

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID               int64     `json:"id" doc:"Transaction ID"`
	Amount           string    `json:"amount" doc:"Decimal amount with two places"`
	Type             string    `json:"type" enum:"DEPOSIT,WITHDRAWAL" doc:"Transaction type"`
	Description      string    `json:"description,omitempty" doc:"Free-text description"`
	CreatedDate      time.Time `json:"createdDate" doc:"When the transaction was recorded"`
	LastModifiedDate time.Time `json:"lastModifiedDate" doc:"Equal to createdDate, transactions are immutable"`
}

// TransactionEnvelope wraps a single transaction in the success envelope.
type TransactionEnvelope struct {
	Message   string      `json:"message" doc:"Human readable outcome"`
	Status    bool        `json:"status" doc:"Always true on success"`
	Timestamp time.Time   `json:"timestamp" doc:"When the response was produced"`
	Data      Transaction `json:"data"`
}

// Limits are the boundary checks applied before a request reaches the
// ledger.
type Limits struct {
	MinAmount            decimal.Decimal
	MaxAmount            decimal.Decimal
	MaxDescriptionLength int
	DefaultPageSize      int
	MaxPageSize          int
}

func LimitsFromConfig(cfg config.LedgerConfig) Limits {
	minAmount, maxAmount := cfg.Limits()
	return Limits{
		MinAmount:            minAmount,
		MaxAmount:            maxAmount,
		MaxDescriptionLength: cfg.MaxDescriptionLength,
		DefaultPageSize:      cfg.DefaultPageSize,
		MaxPageSize:          cfg.MaxPageSize,
	}
}

func fromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:               tx.ID,
		Amount:           tx.Amount.StringFixed(amountPlaces),
		Type:             tx.Type.String(),
		Description:      tx.Description,
		CreatedDate:      tx.CreatedAt,
		LastModifiedDate: tx.LastModifiedAt,
	}
}

func envelope(message string, tx service.Transaction, now time.Time) TransactionEnvelope {
	return TransactionEnvelope{
		Message:   message,
		Status:    true,
		Timestamp: now,
		Data:      fromService(tx),
	}
}
