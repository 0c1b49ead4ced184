package cmd

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Iush-Yadav/SafeStreet/internal/components"
	"github.com/Iush-Yadav/SafeStreet/internal/config"
	"github.com/Iush-Yadav/SafeStreet/internal/domain"
)

func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := components.SetupLogger(cfg.Env)

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	comps, err := components.InitComponents(appCtx, cfg, logger)
	if err != nil {
		logger.Error("could not init components", "err", err)
		return err
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var wg sync.WaitGroup

	// One-shot device position: best effort. The map recenters before the
	// location becomes visible to proximity checks; failure stays silent.
	wg.Add(1)
	go func() {
		defer wg.Done()
		comps.Provider.Acquire(ctx, func(coord domain.Coordinate) {
			comps.Flow.Recenter(coord)
		})
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		comps.Checker.Run(ctx)
		logger.Info("proximity checker stopped")
	}()

	if comps.Sender != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			comps.Sender.Run(ctx)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := comps.HttpServer.Run(ctx); err != nil {
			logger.Error("http server failed", "err", err)
		}
		logger.Info("http server stopped")
	}()

	quitChan := make(chan os.Signal, 1)
	signal.Notify(quitChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChan

	stop()
	logger.Info("captured signal, initiating shutdown", "signal", sig.String())

	wg.Wait()

	logger.Info("shutting down the services...")
	comps.ShutdownAll()
	logger.Info("gracefully shut down")

	return nil
}
