package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/busdepot/internal/buildinfo"
	"github.com/dmitrijs2005/busdepot/internal/cli"
	"github.com/dmitrijs2005/busdepot/internal/config"
	"github.com/dmitrijs2005/busdepot/internal/filex"
	"github.com/dmitrijs2005/busdepot/internal/logging"
	"github.com/dmitrijs2005/busdepot/internal/persistence"
	"github.com/dmitrijs2005/busdepot/internal/services"
	"github.com/dmitrijs2005/busdepot/internal/session"
	"github.com/dmitrijs2005/busdepot/internal/store"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	if err := run(context.Background(), config.LoadConfig()); err != nil {
		log.Fatalf("%v", err)
	}

}

func run(ctx context.Context, cfg *config.Config) error {
	if _, err := filex.EnsureDir(cfg.DataDir); err != nil {
		return fmt.Errorf("data dir: %w", err)
	}

	var logOut io.Writer = os.Stderr
	if path := cfg.LogPath(); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, JSON: cfg.LogJSON, Writer: logOut})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	logger.Info(ctx, "starting", "data_dir", cfg.DataDir, "storage", cfg.Storage)

	gw, err := persistence.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}

	st := store.New(gw.LoadRoutes(ctx), gw.LoadAccounts(ctx))
	svc := services.NewDepotService(st, gw, session.New(st), logger)
	defer func() {
		if err := svc.Close(); err != nil {
			logger.Error(ctx, "shutdown", "error", err)
		}
	}()

	return cli.NewApp(svc, os.Stdin, os.Stdout).Run(ctx)
}
