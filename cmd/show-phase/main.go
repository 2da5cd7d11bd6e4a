// show-phase shows how a phase accumulator value splits into a table index
// and an interpolation fraction, mostly for debugging table sizes and
// increments.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pfcm/phasor/phase"
)

var sizesFlag = flag.String("sizes", "64,256,1024,2048", "comma separated list of `table sizes` to split against")

const help = `show-phase PHASE

Shows the index/fraction split of a phase accumulator value for a set of
power-of-two table sizes. PHASE is an unsigned integer, hex with an 0x prefix
or decimal, or a float in [0, 1) which is scaled onto the full phase range.`

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), help)
		fmt.Fprintln(flag.CommandLine.Output(), "\nOptional arguments:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		fail("Need exactly one argument.")
	}
	p, err := parsePhase(flag.Arg(0))
	if err != nil {
		fail(err.Error())
	}
	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		fail(err.Error())
	}

	w := tabwriter.NewWriter(os.Stdout, 11, 1, 1, ' ', 0)
	fmt.Fprintf(w, "phase\t%#x\t(%.6f of a cycle)\n\n", uint(p), float64(p)/(1<<phase.Width))
	fmt.Fprintln(w, "size\tindex bits\tfraction bits\tindex\tfraction")
	for _, n := range sizes {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%.9f\n",
			n, phase.IndexBits(n), phase.FractionBits(n),
			phase.Index(n, p), phase.Fraction[float64](n, p))
	}
	w.Flush()
}

func parsePhase(s string) (phase.Phase, error) {
	if u, err := strconv.ParseUint(s, 0, phase.Width); err == nil {
		return phase.Phase(u), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("can't parse %q as a phase", s)
	}
	if f < 0 || f >= 1 {
		return 0, fmt.Errorf("float phase %v outside [0, 1)", f)
	}
	return phase.Phase(f * (1 << phase.Width)), nil
}

func parseSizes(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("bad table size %q", part)
		}
		if n <= 0 || n&(n-1) != 0 {
			return nil, fmt.Errorf("table size %d is not a power of two", n)
		}
		out = append(out, n)
	}
	return out, nil
}

func fail(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	fmt.Fprintln(os.Stderr, "Run with -help for usage.")
	os.Exit(1)
}
