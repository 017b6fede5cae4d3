// Command gemduel runs a two-player Gem Duel game in the terminal.
//
// Players alternate single-step moves (U/D/L/R) on a 6x6 board, collecting
// gems while avoiding obstacles. The game ends after 30 accepted moves or
// when no gems remain, and the player holding more gems wins.
//
// Settings come from GEMDUEL_* environment variables (optionally loaded from
// a .env file) and can be overridden with flags. Logs go to stderr so they
// never interleave with the board on stdout.
package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"github.com/wricardo/gemduel/game/config"
	"github.com/wricardo/gemduel/game/engine"
	"github.com/wricardo/gemduel/transport/console"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Gem Duel"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// After the first signal a second one gets the default behaviour
	context.AfterFunc(ctx, stop)

	if err := newCommand(cfg, os.Stdin, os.Stdout, os.Stderr).Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

// newCommand builds the root command. Flag defaults come from cfg.
func newCommand(cfg *config.Config, in *os.File, out, errOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "gemduel",
		Usage:     "two-player gem collecting duel on a 6x6 board",
		Version:   Version,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "board placement seed (0 picks one from the clock)",
				Value: cfg.Seed,
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
				Value: cfg.Debug,
			},
			&cli.StringFlag{
				Name:  "input",
				Usage: "input mode: auto, key or line",
				Value: cfg.Input,
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log format: text or json",
				Value: cfg.LogFormat,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			run := *cfg
			run.Seed = cmd.Uint64("seed")
			run.Debug = cmd.Bool("debug")
			run.Input = cmd.String("input")
			run.LogFormat = cmd.String("log-format")
			if err := run.Validate(); err != nil {
				return err
			}
			return play(ctx, &run, in, out, errOut)
		},
	}
}

// play wires one game to the console and runs it to completion
func play(ctx context.Context, cfg *config.Config, in *os.File, out, errOut io.Writer) error {
	logger := newLogger(cfg, errOut)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	keys, err := console.Open(cfg.Input, in, out)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	if closer, ok := keys.(io.Closer); ok {
		defer closer.Close()
	}

	board := engine.NewBoard(rand.New(rand.NewPCG(seed, seed)))
	game := engine.NewGame(board,
		engine.WithOutput(out),
		engine.WithLogger(logger.WithField("seed", seed)),
	)

	logger.WithFields(log.Fields{
		"game_id": game.ID(),
		"seed":    seed,
		"input":   cfg.Input,
	}).Infof("Starting %s v%s", AppName, Version)

	if _, err := game.Play(ctx, keys); err != nil {
		return fmt.Errorf("play: %w", err)
	}
	return nil
}

// newLogger builds the stderr logger from the debug and format settings
func newLogger(cfg *config.Config, w io.Writer) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)

	if cfg.Debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	if cfg.LogFormat == config.FormatJSON {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	return logger
}
