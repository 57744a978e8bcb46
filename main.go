// Command cavecrawler plays the game in the local terminal.
//
//	go run . [-config cavecrawler.toml] [-seed N]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cavecrawler/internal/config"
	"cavecrawler/internal/game"
	"cavecrawler/internal/logging"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// defaultLogFile keeps log lines off the terminal the game draws on.
const defaultLogFile = "cavecrawler.log"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "", "path to a TOML config file (overridden by $"+config.EnvPath+")")
	seed := flag.Int64("seed", 0, "world seed; 0 picks one from the clock")
	flag.Parse()

	cfg, err := config.LoadEnv(*cfgPath)
	if err != nil {
		return err
	}
	if *seed != 0 {
		cfg.World.Seed = *seed
	}
	if cfg.Logging.File == "" {
		cfg.Logging.File = defaultLogFile
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	var opts []game.SessionOption
	if dir, err := game.RunLogDir(); err == nil {
		opts = append(opts, game.WithRunLog(dir))
	} else {
		log.Warn("run log disabled", zap.Error(err))
	}
	sess, err := game.Open(cfg, log, "local", opts...)
	if err != nil {
		return err
	}
	defer sess.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := game.Play(ctx, screen, sess); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
