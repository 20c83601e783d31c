package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	echoapi "github.com/baseldt/lms/apps/api/echo"
	"github.com/baseldt/lms/core"
	"github.com/baseldt/lms/core/course"
	"github.com/baseldt/lms/core/session"
	"github.com/baseldt/lms/core/user"
	logsvc "github.com/baseldt/lms/services/logger"
	"github.com/baseldt/lms/services/metrics"
	"github.com/baseldt/lms/storage/kv/backend"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf, err := core.NewConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	defer logger.Close()

	storeLogger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "STORE : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)

	storage, closer, err := backend.Open(context.Background(), conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up %s storage: %v", conf.Session.Backend, err), err)
	}
	defer func() {
		if err = closer.Close(); err != nil {
			storeLogger.Error("Failed to close", err)
		}
	}()

	catalog := course.NewSeededCatalog()
	sessions := session.NewManager(user.NewSeededRoster(), storage, session.Options{
		Key:      conf.Session.StorageKey,
		Delay:    conf.Session.Delay,
		Notifier: core.LogNotifier(logger),
		Logger:   storeLogger,
	})

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q, %s storage", conf.Build, conf.Session.Backend))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)
	course.InitValidators(validate, translator)

	server := echoapi.NewServer(echoapi.ServerDeps{
		Conf:       conf,
		Logger:     logger,
		Sessions:   sessions,
		Catalog:    catalog,
		Progress:   course.NewSeededProgress(catalog),
		Metrics:    metrics.New(),
		Validate:   validate,
		Translator: translator,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	debug := &http.Server{Addr: conf.Server.DebugHost, Handler: http.DefaultServeMux}
	g.Go(func() error {
		if err := debug.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		return debug.Close()
	})

	// Idle browser contexts are dropped from memory; their sessions are restored from storage.
	if idle := conf.Session.IdleTimeout; idle > 0 {
		g.Go(func() error {
			return sessions.RunReaper(ctx, conf.Session.ReapInterval, idle)
		})
	}

	// =========================================================================
	// Start API Service

	g.Go(func() error {
		server.Start()
		return nil
	})

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Error(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		sctx, scancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer scancel()

		if err = server.Shutdown(sctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Error(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}

	cancel()
	if err = g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("stopping services: %v", err), err)
	}
}
