package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/pocket-ledger/internal/handlers/v1/apierror"
	"github.com/carson-networks/pocket-ledger/internal/handlers/v1/balance"
	"github.com/carson-networks/pocket-ledger/internal/handlers/v1/status"
	"github.com/carson-networks/pocket-ledger/internal/handlers/v1/transaction"
	"github.com/carson-networks/pocket-ledger/internal/logging"
	"github.com/carson-networks/pocket-ledger/internal/operator"
	"github.com/carson-networks/pocket-ledger/internal/service"
)

const defaultShutdownTimeout = 10 * time.Second

type Rest struct {
	Logger          *logrus.Logger
	Port            int
	Service         *service.Service
	Operator        *operator.OperatorDelegator
	Limits          transaction.Limits
	ShutdownTimeout time.Duration
}

// Handler builds the router: the plain status endpoint plus the huma API.
func (r *Rest) Handler() http.Handler {
	apierror.Install(r.Logger)

	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Service.Transaction)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("Pocket Ledger", "1.0.0"))
	api.UseMiddleware(logging.Middleware(r.Logger))

	balance.NewGetBalanceHandler(r.Service.Transaction).Register(api)
	transaction.NewCreateTransactionHandler(r.Operator, r.Limits, r.Logger).Register(api)
	transaction.NewGetTransactionHandler(r.Service.Transaction, r.Logger).Register(api)
	transaction.NewListTransactionsHandler(r.Service.Transaction, r.Limits, r.Logger).Register(api)

	return mux
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + strconv.Itoa(r.Port),
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	timeout := r.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}
