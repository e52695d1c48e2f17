package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/saeidalz13/battleship-peer/api"
	"github.com/saeidalz13/battleship-peer/db"
	"github.com/saeidalz13/battleship-peer/db/sqlc"
	"github.com/saeidalz13/battleship-peer/internal"
	"github.com/saeidalz13/battleship-peer/internal/config"
	mc "github.com/saeidalz13/battleship-peer/models/connection"
)

func mustBuildLogger(stage string) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if stage == config.StageProd {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	return logger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := mustBuildLogger(cfg.Stage)
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	transport := mc.NewPeerSessionManager()
	defer transport.Close()

	opts := []api.PeerOption{api.WithBoardSize(cfg.BoardSize)}
	if cfg.DatabaseURL != "" {
		database := db.MustConnectToDb(cfg.DatabaseURL)
		defer database.Close()

		serverIpNet, err := internal.ServerIpNet()
		if err != nil {
			panic(err)
		}
		dbManager := sqlc.NewDbManager(sqlc.New(database), serverIpNet)
		opts = append(opts, api.WithStateStore(dbManager.States), api.WithAnalytics(dbManager.Analytics))
	} else {
		zap.S().Info("DATABASE_URL is not set; peer state is kept in memory")
	}

	peer, err := api.NewPeer(cfg.PeerAddress, transport, opts...)
	if err != nil {
		panic(err)
	}

	sessionManager := mc.NewClientSessionManager()
	server := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		Handler:           api.SetupRoutes(api.NewRequestProcessor(peer, sessionManager)),
		ReadHeaderTimeout: time.Second * 5,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return peer.Run(ctx)
	})
	g.Go(func() error {
		sessionManager.CleanupPeriodically(ctx)
		return nil
	})
	g.Go(func() error {
		zap.S().Infof("peer %s listening to port %d", cfg.PeerAddress, cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		zap.S().Errorf("peer stopped: %v", err)
	}
	zap.S().Info("peer shut down")
}
