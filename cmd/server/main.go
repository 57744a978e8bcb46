// cavecrawler-server serves the game to browsers over a websocket and to
// terminals over SSH. Every connection plays its own game.
//
//	go build -o cavecrawler-server ./cmd/server
//	./cavecrawler-server [-config cavecrawler.toml]
//
// Then open ws://localhost:8080/ws from a client, or: ssh -p 2222 localhost
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cavecrawler/internal/config"
	"cavecrawler/internal/game"
	"cavecrawler/internal/logging"
	internalssh "cavecrawler/internal/ssh"
	"cavecrawler/internal/web"

	"go.uber.org/zap"
)

func main() {
	cfgPath := flag.String("config", "", "path to a TOML config file (overridden by $"+config.EnvPath+")")
	flag.Parse()

	cfg, err := config.LoadEnv(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := serve(ctx, cfg, log); err != nil {
		log.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
	log.Info("server stopped")
}

// serve runs the HTTP and SSH listeners until ctx ends or one of them fails.
func serve(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	opts := sessionOptions(log)
	errc := make(chan error, 2)

	httpSrv := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           newMux(cfg, log, opts),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("http server listening", zap.String("addr", httpSrv.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- fmt.Errorf("http: %w", err)
		}
	}()

	if cfg.Server.SSHAddr != "" {
		signer, err := internalssh.LoadOrCreateHostKey(cfg.Server.HostKey, log)
		if err != nil {
			return err
		}
		sshSrv := internalssh.NewServer(cfg, log, opts...)
		go func() {
			if err := sshSrv.ListenAndServe(ctx, cfg.Server.SSHAddr, signer); err != nil {
				errc <- fmt.Errorf("ssh: %w", err)
			}
		}()
	}

	var err error
	select {
	case <-ctx.Done():
	case err = <-errc:
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if serr := httpSrv.Shutdown(shutdownCtx); serr != nil {
		log.Warn("http shutdown", zap.Error(serr))
	}
	return err
}

func newMux(cfg *config.Config, log *zap.Logger, opts []game.SessionOption) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/ws", web.NewHandler(cfg, log, opts...))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	return mux
}

func sessionOptions(log *zap.Logger) []game.SessionOption {
	dir, err := game.RunLogDir()
	if err != nil {
		log.Warn("run log disabled", zap.Error(err))
		return nil
	}
	return []game.SessionOption{game.WithRunLog(dir)}
}
