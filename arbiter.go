package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"

	"chess-arbiter/board"
	"chess-arbiter/engine"
	"chess-arbiter/locale"
	"chess-arbiter/rules"
	"chess-arbiter/session"
)

func main() {
	level := flag.String("log-level", getenv("ARBITER_LOG_LEVEL", "warn"), "zerolog level for stderr logs")
	lang := flag.String("locale", getenv("ARBITER_LOCALE", "en"), "explanation language: en or no")
	flag.Parse()

	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad -log-level: %v\n", err)
		os.Exit(2)
	}
	l, err := locale.Parse(*lang)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad -locale: %v\n", err)
		os.Exit(2)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(lvl).With().Timestamp().Logger()

	a := newArbiter(os.Stdout, engine.New(engine.WithLogger(log)), l, log)
	a.loop(os.Stdin)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// arbiter is the line protocol: one command per line on stdin, replies on
// stdout. It keeps a single current game.
type arbiter struct {
	out    io.Writer
	engine *engine.Engine
	locale locale.Locale
	log    zerolog.Logger
	game   *session.Game
}

func newArbiter(out io.Writer, e *engine.Engine, l locale.Locale, log zerolog.Logger) *arbiter {
	a := &arbiter{out: out, engine: e, locale: l, log: log}
	a.game, _ = session.NewGame(board.NewGame(), e, l)
	return a
}

func (a *arbiter) println(args ...any) { fmt.Fprintln(a.out, args...) }

func (a *arbiter) info(format string, args ...any) {
	fmt.Fprintf(a.out, "info string "+format+"\n", args...)
}

func (a *arbiter) loop(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}
		args := tokens[1:]
		switch strings.ToLower(tokens[0]) {
		case "quit":
			return
		case "isready":
			a.println("readyok")
		case "newgame":
			a.game, _ = session.NewGame(board.NewGame(), a.engine, a.locale)
		case "position":
			a.position(args)
		case "locale":
			a.setLocale(args)
		case "validate":
			a.validate(strings.Join(args, " "))
		case "play":
			a.play(strings.Join(args, " "))
		case "moves":
			a.moves()
		case "status":
			a.status(a.game.Status())
		case "claim":
			a.claim(args)
		case "flag":
			a.flag(args)
		case "fen":
			a.println("fen", a.game.State().FEN())
		default:
			a.info("Unknown command: %s", line)
		}
	}
	if err := scanner.Err(); err != nil {
		a.log.Error().Err(err).Msg("reading commands")
	}
}

// position startpos|fen <fen> [moves <m>...]
func (a *arbiter) position(args []string) {
	if len(args) == 0 {
		a.info("Malformed position command")
		return
	}
	var s *board.GameState
	rest := args[1:]
	switch strings.ToLower(args[0]) {
	case "startpos":
		s = board.NewGame()
	case "fen":
		i := slices.Index(rest, "moves")
		if i < 0 {
			i = len(rest)
		}
		if i == 0 {
			a.info("Invalid fen position")
			return
		}
		parsed, err := board.ParseFEN(strings.Join(rest[:i], " "))
		if err != nil {
			a.info("Invalid fen position: %v", err)
			return
		}
		s, rest = parsed, rest[i:]
	default:
		a.info("Invalid position subcommand")
		return
	}
	g, err := session.NewGame(s, a.engine, a.locale)
	if err != nil {
		a.info("Invalid fen position: %v", err)
		return
	}
	a.game = g
	if len(rest) == 0 || strings.ToLower(rest[0]) != "moves" {
		return
	}
	for _, mv := range rest[1:] {
		if _, err := g.Play(mv); err != nil {
			a.info("Move %s not played: %v", mv, err)
			return
		}
	}
}

func (a *arbiter) setLocale(args []string) {
	if len(args) != 1 {
		a.info("Malformed locale command")
		return
	}
	l, err := locale.Parse(args[0])
	if err != nil {
		a.info("%v", err)
		return
	}
	// The current game keeps reading moves in its own language; only
	// replies and later games switch.
	a.locale = l
}

func (a *arbiter) validate(text string) {
	if text == "" {
		a.info("Malformed validate command")
		return
	}
	res, err := a.game.Validate(text)
	if err != nil {
		a.info("Cannot read move %q: %v", text, err)
		return
	}
	a.verdict(res)
}

func (a *arbiter) play(text string) {
	if text == "" {
		a.info("Malformed play command")
		return
	}
	turn, err := a.game.Play(text)
	switch {
	case err == nil:
		a.verdict(turn.Move)
		a.status(turn.Status)
	case turn.Move.Operators != nil:
		a.verdict(turn.Move)
	default:
		a.info("Move %q not played: %v", text, err)
	}
}

func (a *arbiter) verdict(res engine.Result) {
	verdict, name := "illegal", res.Notation.UCI
	if res.Valid {
		verdict, name = "legal", res.Notation.SAN
	}
	line := fmt.Sprintf("%s %s formula %s", verdict, name, res.Formula)
	if res.RType != nil {
		line += " rtype " + res.RType.Key() + " universal " + res.Universal.Universal.Key()
	} else {
		line += " failure " + res.Failure.String()
	}
	a.println(line)
	a.explain(res.Explanation, res.Citation)
}

func (a *arbiter) explain(why locale.Text, c engine.Citation) {
	a.info("%s", why.In(a.locale))
	if !c.IsZero() {
		a.info("%s: %s", c.Section(a.locale), c.Text(a.locale))
	}
}

func (a *arbiter) moves() {
	s := a.game.State()
	legal := rules.LegalMoves(s.SideToMove, s)
	out := make([]string, len(legal))
	for i, m := range legal {
		out[i] = m.String()
	}
	slices.Sort(out)
	a.println("moves", strings.Join(out, " "))
}

func (a *arbiter) status(st engine.TerminationResult) {
	a.println(fmt.Sprintf("status %s winner %s formula %s rtype %s", st.Result, st.Winner, st.Formula, st.RType.Key()))
	if st.Terminated {
		a.explain(st.Explanation, st.Citation)
	}
}

func (a *arbiter) claim(args []string) {
	if len(args) != 1 {
		a.info("Malformed claim command")
		return
	}
	var c engine.ClaimResult
	var err error
	switch strings.ToLower(args[0]) {
	case "threefold":
		c, err = a.game.ClaimThreefold()
	case "fifty":
		c, err = a.game.ClaimFiftyMove()
	default:
		a.info("Unknown claim %s", args[0])
		return
	}
	if err != nil {
		a.info("%v", err)
		return
	}
	verdict := "rejected"
	if c.CanClaim {
		verdict = "accepted"
	}
	a.println(fmt.Sprintf("claim %s %s formula %s", c.Rule.Key(), verdict, c.Formula))
	a.explain(c.Explanation, c.Citation)
}

func (a *arbiter) flag(args []string) {
	if len(args) != 1 {
		a.info("Malformed flag command")
		return
	}
	c, err := board.ParseColor(args[0])
	if err != nil {
		a.info("%v", err)
		return
	}
	st, err := a.game.FlagFall(c)
	if err != nil {
		a.info("%v", err)
		return
	}
	a.status(st)
}
