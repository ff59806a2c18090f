package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/pocket-ledger/internal/service"
)

// CreateTransaction records one deposit or withdrawal. Created is set once
// Perform succeeds.
type CreateTransaction struct {
	Amount      decimal.Decimal
	Type        service.TransactionType
	Description string

	Created *service.Transaction
}

func (t *CreateTransaction) Perform(ctx context.Context, ledger Ledger) error {
	created, err := ledger.CreateTransaction(ctx, service.TransactionCreate{
		Amount:      t.Amount,
		Type:        t.Type,
		Description: t.Description,
	})
	if err != nil {
		return err
	}

	t.Created = created
	return nil
}
