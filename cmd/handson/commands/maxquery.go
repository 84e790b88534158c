package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/francealip/competitive-programming/queryfile"
	"github.com/francealip/competitive-programming/segtree"
)

// MaxQueryCommand holds the flags for the maxquery command.
type MaxQueryCommand struct {
	expect  string
	output  string
	verbose bool
}

// NewMaxQueryCommand creates and configures the maxquery command.
func NewMaxQueryCommand() *cobra.Command {
	cmd := &MaxQueryCommand{}

	cobraCmd := &cobra.Command{
		Use:   "maxquery <input-file>",
		Short: "Replay a clamp/max query stream over an array",
		Long: "Build a max segment tree from the array in the input file, apply its " +
			"query stream in order, and print one result per max query.",
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return cmd.Run(args[0])
		},
	}

	cobraCmd.Flags().StringVarP(&cmd.expect, "expect", "e", "", "Output file with expected results to verify against")
	cobraCmd.Flags().StringVarP(&cmd.output, "output", "o", "", "Write results to file (default: stdout)")
	cobraCmd.Flags().BoolVarP(&cmd.verbose, "verbose", "v", false, "Log every operation")

	return cobraCmd
}

// Run executes the maxquery command against the given input file.
func (c *MaxQueryCommand) Run(inputPath string) error {
	log := newLogger(c.verbose)

	cs, err := queryfile.LoadMaxCase(inputPath, c.expect)
	if err != nil {
		return fmt.Errorf("loading %s: %w", inputPath, err)
	}
	log.Debug("loaded max query case", "values", len(cs.Values), "ops", len(cs.Ops))

	tree, err := segtree.New(cs.Values)
	if err != nil {
		return err
	}

	results, err := runMaxOps(tree, cs.Ops, log)
	if err != nil {
		return err
	}

	w, closeOutput, err := openOutput(c.output)
	if err != nil {
		return err
	}
	defer closeOutput()

	for _, r := range results {
		fmt.Fprintln(w, r)
	}

	if c.expect == "" {
		return nil
	}
	return verifyResults(cs.Expected, results, log)
}

func runMaxOps(tree *segtree.MaxTree, ops []queryfile.Op, log *slog.Logger) ([]uint32, error) {
	var results []uint32

	for i, op := range ops {
		switch op.Kind {
		case queryfile.KindClamp:
			log.Debug("range clamp", "op", i, "start", op.Start, "end", op.End, "value", op.Value)

			if err := tree.RangeClamp(op.Start, op.End, op.Value); err != nil {
				return nil, fmt.Errorf("op %d: %w", i, err)
			}
		case queryfile.KindMax:
			v, err := tree.RangeMax(op.Start, op.End)
			if err != nil {
				return nil, fmt.Errorf("op %d: %w", i, err)
			}
			log.Debug("range max", "op", i, "start", op.Start, "end", op.End, "result", v)

			results = append(results, v)
		}
	}

	return results, nil
}

func verifyResults(expected, got []uint32, log *slog.Logger) error {
	if len(expected) != len(got) {
		return fmt.Errorf("expected %d results, got %d", len(expected), len(got))
	}

	mismatches := 0
	for i := range expected {
		if got[i] != expected[i] {
			log.Error("result mismatch", "query", i, "want", expected[i], "got", got[i])
			mismatches++
		}
	}

	if mismatches > 0 {
		return fmt.Errorf("%d of %d results differ from expected output", mismatches, len(expected))
	}
	log.Debug("all results match expected output", "count", len(expected))

	return nil
}

// newLogger builds the command logger; verbose enables per-operation debug
// lines on stderr.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openOutput returns the writer for results and a close function, stdout
// when path is empty.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
