// Command accumulate sums or multiplies the integers given as arguments.
//
//	accumulate --sum 1 2 3
//	accumulate --mult 2 3 4
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rsteube/carapace"
	"github.com/spf13/cobra"

	"github.com/reeflective/argparse"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	if err := newCommand(os.Stdout, logger).Execute(); err != nil {
		os.Exit(1)
	}
}

// newCommand declares the options of the program, and prints
// the result of the requested operation to out.
func newCommand(out io.Writer, logger *slog.Logger) *cobra.Command {
	parser := argparse.NewParser("accumulate", argparse.WithLogger(logger))

	var numbers []int

	parser.AddInt("N", "numbers to accumulate").
		MultiValue(1).
		Positional().
		StoreValues(&numbers).
		Complete(carapace.ActionValues("1", "2", "10", "100"))
	parser.AddFlag("sum", "add args")
	parser.AddFlag("mult", "multiply args")
	parser.AddHelp("help", 'h', "Program accumulate arguments")

	return parser.Command(func(p *argparse.Parser) error {
		result, ok := compute(p, numbers)
		if !ok {
			logger.Warn("nothing to do: use --sum or --mult")

			return nil
		}

		fmt.Fprintln(out, result)

		return nil
	})
}

// compute applies the operation selected on the command line.
// Sum wins over mult when both are given.
func compute(p *argparse.Parser, numbers []int) (int, bool) {
	switch {
	case p.GetFlag("sum"):
		return accumulate(numbers, 0, func(a, b int) int { return a + b }), true
	case p.GetFlag("mult"):
		return accumulate(numbers, 1, func(a, b int) int { return a * b }), true
	default:
		return 0, false
	}
}

func accumulate(numbers []int, start int, op func(a, b int) int) int {
	result := start
	for _, n := range numbers {
		result = op(result, n)
	}

	return result
}
