package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/francealip/competitive-programming/queryfile"
	"github.com/francealip/competitive-programming/segtree"
	"github.com/francealip/competitive-programming/sweep"
)

// ExistsCommand holds the flags for the exists command.
type ExistsCommand struct {
	expect  string
	output  string
	verbose bool
}

// NewExistsCommand creates and configures the exists command.
func NewExistsCommand() *cobra.Command {
	cmd := &ExistsCommand{}

	cobraCmd := &cobra.Command{
		Use:   "exists <input-file>",
		Short: "Replay existence queries over interval overlap counts",
		Long: "Sweep the input file's intervals into a per-position overlap count " +
			"array, build a max segment tree over it, and print 0 or 1 per " +
			"existence query.",
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return cmd.Run(args[0])
		},
	}

	cobraCmd.Flags().StringVarP(&cmd.expect, "expect", "e", "", "Output file with expected results to verify against")
	cobraCmd.Flags().StringVarP(&cmd.output, "output", "o", "", "Write results to file (default: stdout)")
	cobraCmd.Flags().BoolVarP(&cmd.verbose, "verbose", "v", false, "Log every query")

	return cobraCmd
}

// Run executes the exists command against the given input file.
func (c *ExistsCommand) Run(inputPath string) error {
	log := newLogger(c.verbose)

	cs, err := queryfile.LoadExistsCase(inputPath, c.expect)
	if err != nil {
		return fmt.Errorf("loading %s: %w", inputPath, err)
	}
	log.Debug("loaded existence case", "intervals", len(cs.Intervals), "queries", len(cs.Queries))

	counts, err := sweep.OverlapCounts(cs.Intervals, len(cs.Intervals))
	if err != nil {
		return err
	}

	tree, err := segtree.New(counts)
	if err != nil {
		return err
	}

	results, err := runExistsQueries(tree, cs.Queries, log)
	if err != nil {
		return err
	}

	w, closeOutput, err := openOutput(c.output)
	if err != nil {
		return err
	}
	defer closeOutput()

	for _, r := range results {
		if r {
			fmt.Fprintln(w, 1)
		} else {
			fmt.Fprintln(w, 0)
		}
	}

	if c.expect == "" {
		return nil
	}
	return verifyBoolResults(cs.Expected, results, log)
}

func runExistsQueries(tree *segtree.MaxTree, queries []queryfile.ExistsQuery, log *slog.Logger) ([]bool, error) {
	results := make([]bool, 0, len(queries))

	for i, q := range queries {
		found, err := tree.Contains(q.Start, q.End, q.K)
		if err != nil {
			return nil, fmt.Errorf("query %d: %w", i, err)
		}
		log.Debug("existence query", "query", i, "start", q.Start, "end", q.End, "k", q.K, "found", found)

		results = append(results, found)
	}

	return results, nil
}

func verifyBoolResults(expected, got []bool, log *slog.Logger) error {
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
