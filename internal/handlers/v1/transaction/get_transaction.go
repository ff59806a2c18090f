package transaction

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/pocket-ledger/internal/handlers/v1/apierror"
	"github.com/carson-networks/pocket-ledger/internal/service"
)

// GetTransactionInput is the Huma input for fetching one transaction.
type GetTransactionInput struct {
	ID string `path:"id" doc:"ID of the transaction"`
}

// GetTransactionOutput is the Huma output for fetching one transaction.
type GetTransactionOutput struct {
	Body TransactionEnvelope
}

type transactionGetter interface {
	GetTransaction(ctx context.Context, id int64) (*service.Transaction, error)
}

// GetTransactionHandler handles GET /api/v1/transactions/{id}.
type GetTransactionHandler struct {
	TransactionService transactionGetter
	Logger             *logrus.Logger
	clock              func() time.Time
}

func NewGetTransactionHandler(svc transactionGetter, logger *logrus.Logger) *GetTransactionHandler {
	return &GetTransactionHandler{TransactionService: svc, Logger: logger, clock: time.Now}
}

func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/api/v1/transactions/{id}",
		Summary:     "Get transaction by ID",
		Description: "Retrieve a specific transaction by its ID. ID must be a valid integer.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseTransactionID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, huma.NewError(http.StatusBadRequest, "id should be of type integer")
	}
	return id, nil
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *GetTransactionInput) (*GetTransactionOutput, error) {
	id, err := parseTransactionID(input.ID)
	if err != nil {
		return nil, err
	}

	tx, err := h.TransactionService.GetTransaction(ctx, id)
	if err != nil {
		return nil, apierror.FromService(ctx, h.Logger, err)
	}

	return &GetTransactionOutput{Body: envelope("OK", *tx, h.clock())}, nil
}
