// Command validate judges one move, or the state of one position, and prints
// the verdict as JSON.
//
//	validate -fen "<fen>" -move Nf3
//	validate -fen "<fen>" -status
//	validate -fen "<fen>" -claim threefold
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"chess-arbiter/board"
	"chess-arbiter/engine"
	"chess-arbiter/events"
	"chess-arbiter/locale"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN string (defaults to initial position)")
	move := flag.String("move", "", "Move in SAN, LAN, UCI or natural language")
	status := flag.Bool("status", false, "Evaluate termination instead of a move")
	claim := flag.String("claim", "", "Evaluate a draw claim: threefold or fifty")
	lang := flag.String("locale", getenv("ARBITER_LOCALE", "en"), "Language natural-language moves are read in")
	withEvents := flag.Bool("events", false, "Include the decision events in the output")
	level := flag.String("log-level", getenv("ARBITER_LOG_LEVEL", "warn"), "zerolog level for stderr logs")
	flag.Parse()

	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad -log-level: %v\n", err)
		os.Exit(2)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(lvl).With().Timestamp().Logger()

	l, err := locale.Parse(*lang)
	if err != nil {
		log.Fatal().Err(err).Msg("bad -locale")
	}
	s, err := board.ParseFEN(*fen)
	if err != nil {
		log.Fatal().Err(err).Msg("ParseFEN")
	}
	if err := board.Validate(s); err != nil {
		log.Fatal().Err(err).Msg("invalid position")
	}

	rec := events.NewRecorder()
	e := engine.New(engine.WithLogger(log), engine.WithSink(rec))

	var verdict any
	switch {
	case *claim == "threefold":
		verdict = e.CanClaimThreefold(s)
	case *claim == "fifty":
		verdict = e.CanClaimFiftyMove(s)
	case *claim != "":
		log.Fatal().Str("claim", *claim).Msg("unknown -claim")
	case *status:
		verdict = e.EvaluateTermination(s)
	case *move != "":
		res, err := e.ValidateText(*move, s, l)
		if err != nil {
			log.Fatal().Err(err).Str("move", *move).Msg("cannot read move")
		}
		verdict = res
	default:
		log.Fatal().Msg("one of -move, -status or -claim is required")
	}

	out := map[string]any{"fen": s.FEN(), "verdict": verdict}
	if *withEvents {
		out["events"] = rec.Events()
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("encoding verdict")
	}
	fmt.Println(string(b))
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
