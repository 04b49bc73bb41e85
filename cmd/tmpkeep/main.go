package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/op/go-logging"
	"github.com/spf13/afero"

	"github.com/CristovaoMNunes/tmpkeep/cmd/tmpkeep/command"
	"github.com/CristovaoMNunes/tmpkeep/internal/app"
	"github.com/CristovaoMNunes/tmpkeep/internal/tempres"
)

var version = "local"

var log = logging.MustGetLogger("tmpkeep")

func loggingInit(debug bool) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.NewBackendFormatter(backend,
		logging.MustStringFormatter(`%{color}%{message}%{color:reset}`))

	leveled := logging.AddModuleLevel(formatter)
	if debug {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.INFO, "")
	}

	logging.SetBackend(leveled)
}

func main() {
	fs := afero.NewOsFs()

	hooks := &tempres.ExitHooks{}
	defer hooks.Run()

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupts
		hooks.Run()
		os.Exit(130)
	}()

	settings, err := app.LoadSettings(fs)
	if err != nil {
		loggingInit(false)
		log.Errorf("Failed to load settings: %s", err)
		os.Exit(1)
	}

	tempRoot := settings.TempRoot
	if tempRoot == "" {
		tempRoot = os.TempDir()
	}

	opts := command.Options{
		Version:      version,
		TempRoot:     tempRoot,
		Prefix:       settings.Prefix,
		PurgePattern: settings.PurgePattern,
		InitLogging:  loggingInit,
		RunStage: func(cfg app.Config) error {
			return runApp(fs, hooks, cfg, (*app.App).Run)
		},
		RunPurge: func(cfg app.Config) error {
			return runApp(fs, hooks, cfg, (*app.App).Purge)
		},
	}

	if err := command.Execute(opts, nil); err != nil {
		log.Errorf("Execution failed: %s", err)
		hooks.Run()
		os.Exit(1)
	}
}

// runApp wires the per-invocation registry and application together. The
// registry shares the process-wide exit hooks so transient workspaces are
// removed on normal return, error exit, and interrupt alike.
func runApp(fs afero.Fs, hooks *tempres.ExitHooks, cfg app.Config, run func(*app.App) error) error {
	registry := tempres.NewRegistry(fs, hooks,
		tempres.WithTempRoot(cfg.TempRoot),
		tempres.WithPrefix(cfg.Prefix),
		tempres.WithLogger(log),
	)

	application, err := app.New(cfg, app.Dependencies{
		FS:       fs,
		Registry: registry,
		Logger:   log,
		In:       os.Stdin,
		Out:      os.Stdout,
	})
	if err != nil {
		return err
	}

	return run(application)
}
