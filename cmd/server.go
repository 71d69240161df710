package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"refstats/internal/config"
	"refstats/internal/http/handler"
	"refstats/internal/http/handler/middleware"
	"refstats/internal/http/payload"
	"refstats/internal/http/server"
	"refstats/internal/registry"
	"refstats/pkg/log"
	"syscall"

	"github.com/spf13/pflag"
)

// Serve starts the query API and blocks until a termination signal arrives.
func Serve(args []string) error {
	flags := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	port := flags.String("port", "", "port to listen on, overrides API_PORT")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.NewApp(*port == "")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *port != "" {
		cfg.Port = *port
	}

	logger := log.NewZapLogger("refstats", log.ParseLevel(cfg.LogLevel))
	defer logger.Sync()

	entries, err := registry.LoadFile(cfg.RegistryPath)
	if err != nil {
		logger.Errorw("failed to load code registry", "error", err, "path", cfg.RegistryPath)
		return err
	}

	referrals := newReferralStats(logger, cfg, entries)

	// handler
	referralHlr := handler.NewReferralHandler(
		logger,
		payload.QueryValidator{},
		referrals)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.GetData, referralHlr.HandleGetData)
	mux.HandleFunc(handler.PostRefresh, referralHlr.HandleRefresh)
	mux.HandleFunc(handler.GetDuplicates, referralHlr.HandleGetDuplicates)

	srv := server.NewHTTP(logger, hdlr, cfg.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) || err == nil {
		return sdErr
	}

	return err
}
