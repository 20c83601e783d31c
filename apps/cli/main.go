package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/baseldt/lms/core"
	"github.com/baseldt/lms/core/course"
	"github.com/baseldt/lms/core/session"
	"github.com/baseldt/lms/core/user"
	logsvc "github.com/baseldt/lms/services/logger"
	"github.com/baseldt/lms/storage/kv/backend"
)

func main() {
	os.Exit(start())
}

// start returns the exit code once every resource is released.
func start() int {
	conf, err := core.NewConfig()
	if err != nil {
		log.Printf("loading config: %v", err)
		return 1
	}
	// the process is the browser context: the file store plays localStorage
	conf.Session.Backend = core.BackendFile

	logger := logsvc.NewRollbarLogger(log.New(os.Stderr, "CLI : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile), conf)
	defer logger.Close()

	ctx := context.Background()
	storage, closer, err := backend.Open(ctx, conf)
	if err != nil {
		logger.Error(fmt.Sprintf("setting up storage in %s: %v", conf.Session.FileDir, err), err)
		return 1
	}
	defer closer.Close()

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)

	cli := commandLine{
		store: session.NewStore(ctx, user.NewSeededRoster(), storage, session.Options{
			Key:      conf.Session.StorageKey,
			Delay:    conf.Session.Delay,
			Notifier: printNotifier(os.Stdout),
			Logger:   logger,
		}),
		catalog:    course.NewSeededCatalog(),
		validate:   validate,
		translator: translator,
		out:        os.Stdout,
	}
	if err = cli.run(ctx, os.Args); err != nil {
		if err != errHelp && err != errFailed {
			fmt.Fprintf(os.Stderr, "\nerror: %s\n", err)
		}
		return 1
	}
	return 0
}
