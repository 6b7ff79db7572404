// Command dxt-bench is a thin, non-normative driver for the dxt transform
// library. It is peripheral to the core (see the library's package doc):
// it exists to let someone point the transforms at a raw block-data file
// from a shell and see what TransformAuto picks and how long that
// search-and-transform takes, not to parse any particular container
// format. No inverse transform is run. TransformAuto searches BC1 only, so
// -format bc2 or bc3 ends with its no-builder-for-format error.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	dxt "github.com/Sewer56/dxt-lossless-transform-sub001"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "dxt-bench:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("dxt-bench", flag.ContinueOnError)
	format := fs.String("format", "bc1", "block format: bc1, bc2, or bc3")
	comprehensive := fs.Bool("comprehensive", false, "search all decorrelation/split candidates instead of the fast subset")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: dxt-bench [-format bc1|bc2|bc3] [-comprehensive] <raw-block-file>")
	}

	f, err := formatFromName(*format)
	if err != nil {
		return err
	}

	src, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	mode := dxt.SearchFast
	if *comprehensive {
		mode = dxt.SearchComprehensive
	}

	dst := make([]byte, len(src))
	start := time.Now()
	settings, err := dxt.TransformAuto(f, src, dst, mode, dxt.NewFastHeuristicEstimator())
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("transform: %w", err)
	}

	fmt.Printf("format=%s blocks=%d decorrelation=%s split=%v elapsed=%s\n",
		*format, len(src)/dxt.BlockSize(f), settings.Decorrelation, settings.SplitEndpoints, elapsed)
	return nil
}

func formatFromName(name string) (dxt.Format, error) {
	switch name {
	case "bc1":
		return dxt.BC1, nil
	case "bc2":
		return dxt.BC2, nil
	case "bc3":
		return dxt.BC3, nil
	default:
		return 0, fmt.Errorf("unknown format %q (want bc1, bc2, or bc3)", name)
	}
}
