package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/florafly/24-Point-Master/config"
	"github.com/florafly/24-Point-Master/deck"
	"github.com/florafly/24-Point-Master/expression"
)

const handSize = 4

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	var logger zerolog.Logger
	if cfg.GetBool("debug") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	log.Logger = logger
	log.Debug().Msgf("loaded config: %v", cfg.AllSettings())

	var rng deck.RandSource
	if seed := cfg.GetInt64("seed"); seed != 0 {
		rng = deck.SeededSource(seed)
	}

	difficulty := deck.DifficultyFromName(cfg.GetString("difficulty"))
	dealer := deck.NewDealer(difficulty, rng)
	dealer.SetMaxAttempts(cfg.GetInt("max-attempts"))

	hand, err := dealer.Deal(handSize)
	if err != nil {
		log.Fatal().Err(err).Msg("dealing hand")
	}

	glyphs := make([]string, len(hand))
	for i, c := range hand {
		glyphs[i] = c.String()
	}
	fmt.Printf("Your hand (%s): %s\n", difficulty, strings.Join(glyphs, " "))

	res := expression.Solve(deck.HandValues(hand))
	if !res.Solvable {
		fmt.Println("This hand cannot make 24. Deal again!")
		return
	}
	fmt.Printf("First step: %s\n", res.FirstStepHint)
	fmt.Printf("Solution:   %s = 24\n", res.Solution)
}
