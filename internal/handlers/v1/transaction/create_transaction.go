package transaction

import (
	"context"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/pocket-ledger/internal/handlers/v1/apierror"
	"github.com/carson-networks/pocket-ledger/internal/logging"
	"github.com/carson-networks/pocket-ledger/internal/operator/actions"
	"github.com/carson-networks/pocket-ledger/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Amount      string `json:"amount" required:"true" example:"100.50" doc:"Decimal amount, at most two decimal places"`
	Type        string `json:"type" required:"true" example:"DEPOSIT" doc:"DEPOSIT or WITHDRAWAL"`
	Description string `json:"description,omitempty" required:"false" example:"Monthly salary" doc:"Optional description"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body TransactionEnvelope
}

// actionProcessor runs write actions on the operator pool.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CreateTransactionHandler handles POST /api/v1/transactions.
type CreateTransactionHandler struct {
	Operator actionProcessor
	Limits   Limits
	Logger   *logrus.Logger
	clock    func() time.Time
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op actionProcessor, limits Limits, logger *logrus.Logger) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op, Limits: limits, Logger: logger, clock: time.Now}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/api/v1/transactions",
		Summary:       "Create a new transaction",
		Description:   "Create a new deposit or withdrawal transaction.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput applies the amount, type and description
// rules to the request body.
func parseCreateTransactionInput(input *CreateTransactionInput, limits Limits) (service.TransactionCreate, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return service.TransactionCreate{}, huma.NewError(http.StatusBadRequest, "Amount must be a decimal number", err)
	}
	if !amount.Equal(amount.Round(amountPlaces)) {
		return service.TransactionCreate{}, huma.NewError(http.StatusBadRequest, "Amount must have at most 2 decimal places")
	}
	if amount.LessThan(limits.MinAmount) {
		return service.TransactionCreate{}, huma.NewError(http.StatusBadRequest,
			fmt.Sprintf("Amount must be at least %s", limits.MinAmount.StringFixed(amountPlaces)))
	}
	if amount.GreaterThan(limits.MaxAmount) {
		return service.TransactionCreate{}, huma.NewError(http.StatusBadRequest,
			fmt.Sprintf("Amount must not exceed %s", limits.MaxAmount.StringFixed(amountPlaces)))
	}

	txType, err := service.ParseTransactionType(input.Body.Type)
	if err != nil {
		return service.TransactionCreate{}, huma.NewError(http.StatusBadRequest, err.Error())
	}

	if utf8.RuneCountInString(input.Body.Description) > limits.MaxDescriptionLength {
		return service.TransactionCreate{}, huma.NewError(http.StatusBadRequest,
			fmt.Sprintf("Description must not exceed %d characters", limits.MaxDescriptionLength))
	}

	return service.TransactionCreate{
		Amount:      amount,
		Type:        txType,
		Description: input.Body.Description,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	create, err := parseCreateTransactionInput(input, h.Limits)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("transactionType", create.Type.String())
	}

	action := &actions.CreateTransaction{
		Amount:      create.Amount,
		Type:        create.Type,
		Description: create.Description,
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.FromService(ctx, h.Logger, err)
	}

	if logData != nil {
		logData.AddData("transactionID", action.Created.ID)
	}

	return &CreateTransactionOutput{
		Body: envelope("Transaction created successfully", *action.Created, h.clock()),
	}, nil
}
