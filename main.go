package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/pocket-ledger/api"
	"github.com/carson-networks/pocket-ledger/internal/config"
	"github.com/carson-networks/pocket-ledger/internal/handlers/v1/transaction"
	"github.com/carson-networks/pocket-ledger/internal/logging"
	"github.com/carson-networks/pocket-ledger/internal/operator"
	"github.com/carson-networks/pocket-ledger/internal/seed"
	"github.com/carson-networks/pocket-ledger/internal/service"
	"github.com/carson-networks/pocket-ledger/internal/storage"
)

func main() {
	app := &cli.App{
		Name:  "pocket-ledger",
		Usage: "in-memory single-account ledger over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "optional YAML config file",
				EnvVars: []string{"LEDGER_CONFIG"},
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("pocket-ledger")
	}
}

func run(c *cli.Context) error {
	logger := logging.SetupLogging()
	logger.Info("pocket-ledger starting")

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		logger.WithError(err).Error("config.Load")
		return err
	}
	if err := logging.SetLevel(logger, cfg.Log.Level); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := service.NewService(storage.NewStorage(), logger)

	delegator := operator.NewOperatorDelegator(svc.Transaction, cfg.Operator.Workers, cfg.Operator.QueueSize)
	delegator.Start()
	defer delegator.Stop()

	httpRest := api.Rest{
		Logger:          logger,
		Port:            cfg.HTTP.Port,
		Service:         svc,
		Operator:        delegator,
		Limits:          transaction.LimitsFromConfig(cfg.Ledger),
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}
	seeder := seed.NewSeeder(delegator, svc.Transaction, logger, cfg.Seed.Random)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpRest.Serve(gctx)
	})
	g.Go(func() error {
		_, err := seeder.Run(gctx, cfg.Seed)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	err = g.Wait()
	logger.Info("pocket-ledger stopped")
	return err
}
