package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/pocket-ledger/internal/handlers/v1/apierror"
	"github.com/carson-networks/pocket-ledger/internal/logging"
	"github.com/carson-networks/pocket-ledger/internal/pagination"
	"github.com/carson-networks/pocket-ledger/internal/service"
)

// localDateTime is the zone-less form accepted next to RFC 3339. It is read as UTC.
const localDateTime = "2006-01-02T15:04:05"

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Page      int    `query:"page" minimum:"0" default:"0" doc:"Page number (0-based)"`
	Size      int    `query:"size" doc:"Page size, clamped to the configured maximum"`
	StartDate string `query:"startDate" doc:"Inclusive start, RFC 3339 or 2006-01-02T15:04:05 (UTC)"`
	EndDate   string `query:"endDate" doc:"Inclusive end, RFC 3339 or 2006-01-02T15:04:05 (UTC)"`
	Type      string `query:"type" doc:"DEPOSIT or WITHDRAWAL"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Data          []Transaction `json:"data" doc:"Page of transactions, most recent first"`
	PageNumber    int           `json:"pageNumber" doc:"Page number (0-based)"`
	PageSize      int           `json:"pageSize" doc:"Page size used for this page"`
	TotalElements int           `json:"totalElements" doc:"Number of matching transactions"`
	TotalPages    int           `json:"totalPages" doc:"Number of pages at this page size"`
	First         bool          `json:"first" doc:"Whether this is the first page"`
	Last          bool          `json:"last" doc:"Whether this is the last page"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	QueryTransactions(ctx context.Context, q service.TransactionQuery) (service.TransactionPage, error)
}

// ListTransactionsHandler handles GET /api/v1/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
	Limits             Limits
	Logger             *logrus.Logger
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister, limits Limits, logger *logrus.Logger) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc, Limits: limits, Logger: logger}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/api/v1/transactions",
		Summary:     "Get transaction history",
		Description: "Get paginated transaction history with optional date range and type filters.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseDate(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		t = t.UTC()
		return &t, nil
	}
	t, err := time.ParseInLocation(localDateTime, value, time.UTC)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, name+" must be an ISO date-time", err)
	}
	return &t, nil
}

// parseListTransactionsInput parses and validates the query. Size falls
// back to the default when absent and is clamped to the maximum.
func parseListTransactionsInput(input *ListTransactionsInput, limits Limits) (service.TransactionQuery, error) {
	var q service.TransactionQuery

	if input.Page < 0 {
		return q, huma.NewError(http.StatusBadRequest, "page must be non-negative")
	}
	size := input.Size
	switch {
	case size < 0:
		return q, huma.NewError(http.StatusBadRequest, "size must be positive")
	case size == 0:
		size = limits.DefaultPageSize
	case size > limits.MaxPageSize:
		size = limits.MaxPageSize
	}
	q.Page = pagination.NewRequest(input.Page, size)
	if q.Page.Overflows() {
		return q, huma.NewError(http.StatusBadRequest, "page is too large for the page size")
	}

	start, err := parseDate("startDate", input.StartDate)
	if err != nil {
		return q, err
	}
	end, err := parseDate("endDate", input.EndDate)
	if err != nil {
		return q, err
	}
	if (start == nil) != (end == nil) {
		return q, huma.NewError(http.StatusBadRequest, "startDate and endDate must be given together")
	}
	if start != nil && start.After(*end) {
		return q, huma.NewError(http.StatusBadRequest, "startDate must not be after endDate")
	}
	q.StartDate, q.EndDate = start, end

	if input.Type != "" {
		txType, err := service.ParseTransactionType(input.Type)
		if err != nil {
			return q, huma.NewError(http.StatusBadRequest, err.Error())
		}
		q.Type = &txType
	}

	return q, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	q, err := parseListTransactionsInput(input, h.Limits)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	page, err := h.TransactionService.QueryTransactions(ctx, q)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.FromService(ctx, h.Logger, err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(page.Items))
		logData.AddData("totalElements", page.TotalElements)
	}

	view := pagination.Map(page, fromService)
	return &ListTransactionsOutput{Body: ListTransactionsResponseBody{
		Data:          view.Items,
		PageNumber:    view.Request.Number,
		PageSize:      view.Request.Size,
		TotalElements: view.TotalElements,
		TotalPages:    view.TotalPages(),
		First:         view.IsFirst(),
		Last:          view.IsLast(),
	}}, nil
}
