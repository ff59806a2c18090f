package seed

import (
	"context"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/pocket-ledger/internal/config"
	"github.com/carson-networks/pocket-ledger/internal/operator/actions"
	"github.com/carson-networks/pocket-ledger/internal/service"
)

const (
	lowBalance      = 1000
	depositChance   = 0.3
	minDeposit      = 200
	maxDeposit      = 3000
	minWithdrawal   = 5
	maxWithdrawal   = 500
	amountPrecision = 2
)

type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

type balanceReader interface {
	GetBalance(ctx context.Context) service.Balance
}

// Seeder fills an empty ledger with plausible demo transactions.
type Seeder struct {
	processor actionProcessor
	balances  balanceReader
	logger    *logrus.Logger
	faker     *gofakeit.Faker
}

// NewSeeder builds a Seeder. A zero random seed draws a fresh sequence.
func NewSeeder(processor actionProcessor, balances balanceReader, logger *logrus.Logger, random int64) *Seeder {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Seeder{
		processor: processor,
		balances:  balances,
		logger:    logger,
		faker:     gofakeit.New(uint64(random)),
	}
}

// Run creates cfg.Count transactions. Rejected transactions are logged and
// skipped; only context cancellation stops the run early. It returns the
// number of transactions recorded.
func (s *Seeder) Run(ctx context.Context, cfg config.SeedConfig) (int, error) {
	if !cfg.Enabled {
		s.logger.Info("Data seeding disabled.")
		return 0, nil
	}

	s.logger.WithField("count", cfg.Count).Info("Seeder.Run.start")

	created := 0
	for i := 0; i < cfg.Count; i++ {
		if err := ctx.Err(); err != nil {
			return created, err
		}

		action := s.next(ctx)
		if err := s.processor.Process(ctx, action); err != nil {
			if ctx.Err() != nil {
				return created, ctx.Err()
			}
			s.logger.WithError(err).WithFields(logrus.Fields{
				"type":   action.Type.String(),
				"amount": action.Amount.StringFixed(amountPrecision),
			}).Warn("Seeder.Run.transactionFailed")
			continue
		}
		created++
	}

	s.logger.WithField("created", created).Info("Seeder.Run.complete")
	return created, nil
}

func (s *Seeder) next(ctx context.Context) *actions.CreateTransaction {
	txType := s.pickType(ctx)

	var amount decimal.Decimal
	if txType == service.TransactionTypeDeposit {
		amount = s.amount(minDeposit, maxDeposit)
	} else {
		amount = s.amount(minWithdrawal, maxWithdrawal)
	}

	return &actions.CreateTransaction{
		Amount:      amount,
		Type:        txType,
		Description: s.faker.ProductName(),
	}
}

func (s *Seeder) pickType(ctx context.Context) service.TransactionType {
	if s.balances.GetBalance(ctx).Balance.IntPart() < lowBalance {
		return service.TransactionTypeDeposit
	}
	if s.faker.Float64() < depositChance {
		return service.TransactionTypeDeposit
	}
	return service.TransactionTypeWithdrawal
}

func (s *Seeder) amount(lo, hi float64) decimal.Decimal {
	return decimal.NewFromFloat(s.faker.Float64Range(lo, hi)).Round(amountPrecision)
}
