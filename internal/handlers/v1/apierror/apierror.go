// Package apierror maps ledger failures onto huma error responses. Every
// error response carries an error id that is also written to the log.
package apierror

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/pocket-ledger/internal/logging"
	"github.com/carson-networks/pocket-ledger/internal/operator"
	"github.com/carson-networks/pocket-ledger/internal/service"
)

const (
	errorIDPrefix        = "Error ID: "
	contactSupportPrefix = "Contact support with Error ID: "
	errorIDLocation      = "errorId"
)

var (
	baseNewError = huma.NewError
	installOnce  sync.Once
)

// Install makes every huma error, including schema validation failures,
// carry an error id. It is safe to call more than once.
func Install(logger *logrus.Logger) {
	installOnce.Do(func() {
		huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
			if _, ok := errorID(errs); !ok {
				id := newErrorID()
				errs = append(errs, idDetail(status, id))
				logger.WithFields(logrus.Fields{
					"errorID": id,
					"status":  status,
				}).Infof("Handler.error: %s", msg)
			}
			return baseNewError(status, msg, errs...)
		}
	})
}

// FromService converts a service-layer error into a huma error and logs it
// under a fresh error id.
func FromService(ctx context.Context, logger *logrus.Logger, err error) error {
	id := newErrorID()
	entry := logger.WithError(err).WithField("errorID", id)
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("errorID", id)
	}

	var insufficient *service.InsufficientBalanceError
	switch {
	case errors.As(err, &insufficient):
		entry.WithFields(logrus.Fields{
			"currentBalance":  insufficient.Current.String(),
			"requestedAmount": insufficient.Requested.String(),
		}).Warn("Handler.insufficientBalance")
		return huma.NewError(http.StatusUnprocessableEntity, err.Error(), idDetail(http.StatusUnprocessableEntity, id))
	case errors.Is(err, service.ErrTransactionNotFound):
		entry.Warn("Handler.transactionNotFound")
		return huma.NewError(http.StatusNotFound, err.Error(), idDetail(http.StatusNotFound, id))
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded), errors.Is(err, operator.ErrStopped):
		entry.Warn("Handler.unavailable")
		return huma.NewError(http.StatusServiceUnavailable, "Service temporarily unavailable", idDetail(http.StatusServiceUnavailable, id))
	default:
		entry.Error("Handler.unexpectedError")
		return huma.NewError(http.StatusInternalServerError, "Internal server error", idDetail(http.StatusInternalServerError, id))
	}
}

// ErrorID returns the id carried by a huma error model, if any.
func ErrorID(model *huma.ErrorModel) (string, bool) {
	if model == nil {
		return "", false
	}
	for _, d := range model.Errors {
		if d != nil && d.Location == errorIDLocation {
			return strings.TrimPrefix(strings.TrimPrefix(d.Message, contactSupportPrefix), errorIDPrefix), true
		}
	}
	return "", false
}

func errorID(errs []error) (string, bool) {
	for _, err := range errs {
		var d *huma.ErrorDetail
		if errors.As(err, &d) && d.Location == errorIDLocation {
			return d.Message, true
		}
	}
	return "", false
}

func idDetail(status int, id string) *huma.ErrorDetail {
	prefix := errorIDPrefix
	if status >= http.StatusInternalServerError {
		prefix = contactSupportPrefix
	}
	return &huma.ErrorDetail{
		Message:  prefix + id,
		Location: errorIDLocation,
	}
}

func newErrorID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return "unknown"
	}
	return id.String()
}
