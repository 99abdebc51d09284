package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	goosemg "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"
	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chess-arbiter/board"
	"chess-arbiter/rules"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	verify := flag.Bool("verify", false, "Check every root move's count against dragontoothmg")
	engine := flag.String("engine", "arbiter", "Move generator to count with: arbiter or goose")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	level := flag.String("log-level", getenv("ARBITER_LOG_LEVEL", "info"), "zerolog level for stderr logs")
	flag.Parse()

	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad -log-level: %v\n", err)
		os.Exit(2)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(lvl).With().Timestamp().Logger()

	if *depth <= 0 {
		log.Fatal().Msg("-depth must be > 0")
	}
	s, err := board.ParseFEN(*fen)
	if err != nil {
		log.Fatal().Err(err).Msg("ParseFEN")
	}
	if err := board.Validate(s); err != nil {
		log.Fatal().Err(err).Msg("invalid position")
	}

	count := perft
	switch *engine {
	case "arbiter":
	case "goose":
		count = goosePerft
	default:
		log.Fatal().Str("engine", *engine).Msg("unknown -engine")
	}

	if *divide || *verify {
		div := divideBy(s, *depth, count)
		keys := maps.Keys(div)
		slices.Sort(keys)
		var sum uint64
		failed := 0
		for _, k := range keys {
			n := div[k]
			sum += n
			line := fmt.Sprintf("%s: %d", k, n)
			if *verify {
				if want := dragonDivide(s.FEN(), k, *depth); want != n {
					failed++
					line += fmt.Sprintf("  MISMATCH dragontoothmg=%d", want)
				}
			}
			fmt.Println(line)
		}
		fmt.Printf("Total: %d\n", sum)
		if *verify {
			root := dragontoothmg.ParseFen(s.FEN())
			if want := dragonPerft(&root, *depth); want != sum || failed > 0 {
				log.Error().Int("moves", failed).Uint64("want", want).Uint64("got", sum).Msg("perft disagrees with dragontoothmg")
				os.Exit(1)
			}
			log.Info().Uint64("nodes", sum).Msg("perft agrees with dragontoothmg")
		}
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			log.Fatal().Err(err).Msg("creating cpuprofile")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("start cpu profile")
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += count(s, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func perft(s *board.GameState, depth int) uint64 {
	moves := rules.LegalMoves(s.SideToMove, s)
	if depth == 1 {
		return uint64(len(moves))
	}
	var n uint64
	for _, m := range moves {
		n += perft(board.Apply(s, m), depth-1)
	}
	return n
}

func goosePerft(s *board.GameState, depth int) uint64 {
	b, err := goosemg.ParseFEN(s.FEN())
	if err != nil {
		panic(err)
	}
	return goosemg.Perft(b, depth)
}

// divideBy counts each root move's subtree with count.
func divideBy(s *board.GameState, depth int, count func(*board.GameState, int) uint64) map[string]uint64 {
	out := make(map[string]uint64)
	for _, m := range rules.LegalMoves(s.SideToMove, s) {
		if depth == 1 {
			out[m.String()] = 1
			continue
		}
		out[m.String()] = count(board.Apply(s, m), depth-1)
	}
	return out
}

func dragonPerft(b *dragontoothmg.Board, depth int) uint64 {
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var n uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		n += dragonPerft(b, depth-1)
		unapply()
	}
	return n
}

// dragonDivide is dragontoothmg's count below the root move named uci, or
// zero when dragontoothmg does not generate that move.
func dragonDivide(fen, uci string, depth int) uint64 {
	b := dragontoothmg.ParseFen(fen)
	for _, m := range b.GenerateLegalMoves() {
		if m.String() != uci {
			continue
		}
		if depth == 1 {
			return 1
		}
		unapply := b.Apply(m)
		defer unapply()
		return dragonPerft(&b, depth-1)
	}
	return 0
}
