package status

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/carson-networks/pocket-ledger/internal/logging"
	"github.com/carson-networks/pocket-ledger/internal/service"
)

type balanceReader interface {
	GetBalance(ctx context.Context) service.Balance
}

type Response struct {
	Status       string `json:"status"`
	Transactions int64  `json:"transactions"`
}

type Handler struct {
	Ledger balanceReader
}

func NewHandler(ledger balanceReader) Handler {
	return Handler{Ledger: ledger}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	resp := Response{
		Status:       "UP",
		Transactions: h.Ledger.GetBalance(req.Context()).TotalTransactions,
	}
	logData.AddData("transactions", resp.Transactions)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(resp)
}
