// Command benchrun runs the bench/ suite and a set of perft timings for both
// move generators. Usage: go run ./cmd/benchrun [-benchtime 1s] [-verify]
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
)

type perftRun struct {
	label string
	fen   string
	depth int
}

var perftRuns = []perftRun{
	{"Initial", "", 3},
	{"Initial", "", 4},
	{"Kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3},
	{"Pos3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 4},
}

// run executes a command and prints its combined output. Returns exit code.
func run(name string, args ...string) int {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	fmt.Print(out.String())
	var ee *exec.ExitError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &ee):
		return ee.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "error running %s: %v\n", name, err)
	return 1
}

func perftArgs(r perftRun, extra ...string) []string {
	args := []string{"run", "./cmd/perft", "-depth", fmt.Sprint(r.depth), "-label", r.label}
	if r.fen != "" {
		args = append(args, "-fen", r.fen)
	}
	return append(args, extra...)
}

func main() {
	benchtime := flag.String("benchtime", "1s", "Passed to go test -benchtime")
	verify := flag.Bool("verify", false, "Also verify every perft run against dragontoothmg")
	flag.Parse()

	// Format: BenchmarkName  Iterations  ns/op  B/op  allocs/op
	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	code := run("go", "test", "./bench", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime="+*benchtime)
	if code != 0 {
		os.Exit(code)
	}

	for _, engine := range []string{"arbiter", "goose"} {
		fmt.Printf("\nPerft Performance (%s):\n", engine)
		fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tNPS")
		for _, r := range perftRuns {
			run("go", perftArgs(r, "-engine", engine)...)
		}
	}

	if !*verify {
		return
	}
	fmt.Println("\nPerft Verification:")
	failed := 0
	for _, r := range perftRuns {
		if run("go", perftArgs(r, "-verify", "-log-level", "error")...) != 0 {
			failed++
		}
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d perft runs disagree with dragontoothmg\n", failed)
		os.Exit(1)
	}
}
