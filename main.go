package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/fourword/internal/config"
	"github.com/robalobadob/fourword/internal/console"
	"github.com/robalobadob/fourword/internal/daily"
	"github.com/robalobadob/fourword/internal/game"
	"github.com/robalobadob/fourword/internal/httpserver"
	"github.com/robalobadob/fourword/internal/store"
	"github.com/robalobadob/fourword/internal/words"
)

const usage = `usage: fourword [command]

commands:
  play    play random words in the terminal (default)
  daily   play today's word in the terminal
  serve   run the HTTP API
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	cmd := "play"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	if cmd != "serve" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	var src rand.Source
	if cfg.Seed != 0 {
		src = rand.NewPCG(cfg.Seed, cfg.Seed)
	}
	bank, err := words.Load(cfg.WordsFile, src)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	if bank.WordLen() != game.WordLen {
		log.Fatal().Int("wordLength", bank.WordLen()).Int("want", game.WordLen).Msg("word list has the wrong word length")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cmd {
	case "play":
		err = play(ctx, bank)
	case "daily":
		err = play(ctx, daily.Sampler{Bank: bank, Salt: cfg.DailySalt})
	case "serve":
		err = serve(ctx, cfg, bank)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Str("command", cmd).Msg("exited")
	}
}

func play(ctx context.Context, s game.Sampler) error {
	out, tty := console.Stdout()
	return console.New(os.Stdin, out, s, console.WithColor(tty)).Run(ctx)
}

func serve(ctx context.Context, cfg config.Config, bank *words.Bank) error {
	st := store.NewMemoryStore()
	if cfg.DBPath != "" {
		sq, err := store.OpenSQLite(ctx, cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer sq.Close()
		st = sq
		log.Info().Str("path", cfg.DBPath).Msg("using sqlite store")
	}

	srv := httpserver.New(st, bank, httpserver.Options{
		JWTSecret:    cfg.JWTSecret,
		TokenTTL:     cfg.TokenTTL,
		CookieName:   cfg.CookieName,
		CookieSecure: cfg.CookieSecure,
		ClientOrigin: cfg.ClientOrigin,
		DailySalt:    cfg.DailySalt,
	})
	log.Info().Str("port", cfg.Port).Int("words", bank.Len()).Msg("starting fourword server")
	return srv.Start(ctx, ":"+cfg.Port)
}
