package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/mimamsa/internal/client/cli"
	"github.com/dmitrijs2005/mimamsa/internal/client/client"
	"github.com/dmitrijs2005/mimamsa/internal/client/config"
	"github.com/dmitrijs2005/mimamsa/internal/client/controller"
	"github.com/dmitrijs2005/mimamsa/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/mimamsa/internal/client/services"
	"github.com/dmitrijs2005/mimamsa/internal/client/session"
	"github.com/dmitrijs2005/mimamsa/internal/filex"
	"github.com/dmitrijs2005/mimamsa/internal/logging"
)

func main() {

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.LoadConfig()
	if err := run(ctx, cancel, cfg); err != nil {
		log.Fatalf("%v", err)
	}

}

func run(ctx context.Context, cancel context.CancelFunc, cfg *config.Config) error {
	var logOut io.Writer = os.Stderr
	if cfg.LogFile != "" {
		f, err := filex.OpenAppend(cfg.LogFile)
		if err != nil {
			return fmt.Errorf("log file error: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	logger, err := logging.New(cfg.LogFormat, cfg.LogLevel, logOut)
	if err != nil {
		return fmt.Errorf("logger error: %w", err)
	}
	defer func() { _ = logging.Flush(logger) }()

	db, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("database error: %w", err)
	}
	defer db.Close()

	api, err := client.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, logger)
	if err != nil {
		return fmt.Errorf("api client error: %w", err)
	}

	sessions := session.NewManager(metadata.NewSQLiteRepository(db), logger)
	auth := services.NewAuthService(api)
	ctl := controller.New(auth, sessions, logger)
	app := cli.NewApp(ctl, auth, services.NewCatalogService(api), services.NewPoemService(api), logger)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		sig := <-sigs
		logger.Info(ctx, "received signal, shutting down", "signal", sig.String())
		cancel()
		db.Close()
		_ = logging.Flush(logger)
		fmt.Println("\nBye!")
		os.Exit(0)
	}()

	return app.Run(ctx)
}
