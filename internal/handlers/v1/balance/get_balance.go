package balance

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/pocket-ledger/internal/logging"
	"github.com/carson-networks/pocket-ledger/internal/service"
)

// Balance is the API response model for the ledger balance.
type Balance struct {
	Balance           string    `json:"balance" doc:"Current balance with two decimal places"`
	TotalTransactions int64     `json:"totalTransactions" doc:"Number of recorded transactions"`
	AsOfTimestamp     time.Time `json:"asOfTimestamp" doc:"When the balance was read"`
}

// BalanceEnvelope wraps the balance in the success envelope.
type BalanceEnvelope struct {
	Message   string    `json:"message"`
	Status    bool      `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Data      Balance   `json:"data"`
}

type GetBalanceOutput struct {
	Body BalanceEnvelope
}

type balanceReader interface {
	GetBalance(ctx context.Context) service.Balance
}

// GetBalanceHandler handles GET /api/v1/balance.
type GetBalanceHandler struct {
	TransactionService balanceReader
	clock              func() time.Time
}

func NewGetBalanceHandler(svc balanceReader) *GetBalanceHandler {
	return &GetBalanceHandler{TransactionService: svc, clock: time.Now}
}

func (h *GetBalanceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-balance",
		Method:      http.MethodGet,
		Path:        "/api/v1/balance",
		Summary:     "Get current balance",
		Description: "Get the current balance with the transaction count.",
		Tags:        []string{"Balance"},
	}, h.handle)
}

func (h *GetBalanceHandler) handle(ctx context.Context, _ *struct{}) (*GetBalanceOutput, error) {
	b := h.TransactionService.GetBalance(ctx)
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("totalTransactions", b.TotalTransactions)
	}

	return &GetBalanceOutput{Body: BalanceEnvelope{
		Message:   "OK",
		Status:    true,
		Timestamp: h.clock(),
		Data: Balance{
			Balance:           b.Balance.StringFixed(2),
			TotalTransactions: b.TotalTransactions,
			AsOfTimestamp:     b.AsOf,
		},
	}}, nil
}
