package main

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"lukechampine.com/frand"

	"github.com/michalfabik/spellb/config"
	"github.com/michalfabik/spellb/game"
	"github.com/michalfabik/spellb/lexicon"
	"github.com/michalfabik/spellb/pool"
	"github.com/michalfabik/spellb/shell"
)

var (
	GitVersion string
)

//go:embed spellb.txt
var banner string

func main() {
	fmt.Println(banner)
	fmt.Println(GitVersion)

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	var logger zerolog.Logger
	if cfg.GetBool("debug") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	log.Debug().Msgf("loaded config: %v", cfg.SanitizedSettings())

	dict, err := lexicon.Load(cfg.GetString("dictionary-path"))
	if err != nil {
		log.Fatal().Err(err).Msg("could not load dictionary")
	}

	rng := frand.New()

	var letterPool pool.LetterPool
	if poolArg := cfg.GetString("pool"); poolArg != "" {
		letterPool, err = pool.Validate(poolArg)
	} else {
		letterPool, err = pool.Generate(dict, rng)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	session := game.NewSession(letterPool, dict, rng)
	log.Debug().Int("solutions", len(session.Words())).
		Int("best-possible-score", session.BestPossibleScore()).
		Msg("session ready")

	idleConnsClosed := make(chan struct{})
	sig := make(chan os.Signal, 1)
	go func() {
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		close(idleConnsClosed)
	}()

	sc := shell.NewShellController(session, sig)
	go sc.Loop()

	<-idleConnsClosed
	log.Debug().Msg("shutting down")
}
