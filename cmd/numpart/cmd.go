package numpart

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-branchbound/branchbound/pkg/search"
	"github.com/go-branchbound/branchbound/pkg/search/logger"
)

// NewNumpartCommand returns the numpart subcommand: it reads a problem file
// and runs branch-and-bound multiway number partitioning against it.
func NewNumpartCommand() *cobra.Command {
	var (
		timeoutIters  int64
		timeoutMillis int64
		useCountLog   bool
		useHistLog    bool
		traceStrength bool
		traceEvts     int64
		traceDepth    int
		traceMaxDepth int
	)

	cmd := &cobra.Command{
		Use:   "numpart PROBLEM_FILE",
		Short: "Solve a multiway number-partitioning instance",
		Long: `numpart reads a problem file describing a set of items and a target
number of parts, and searches for a partition minimizing the maximum part
sum, using branch-and-bound over the search engine.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			inst, err := ParseInstance(filename)
			if err != nil {
				return fmt.Errorf("numpart: %w", err)
			}

			root := mkRoot(inst)
			rootGen := NewRootGenerator(inst, root)

			// Best case: split rsum perfectly evenly across k parts; negated
			// because the objective maximizes -maxsum.
			bestCase := int64(math.Ceil(float64(root.RSum) / float64(inst.K)))
			greatest := -bestCase

			predicate := search.NewTracePredicate(search.PredicateOptions{
				Strengthen:    traceStrength,
				Evts:          traceEvts,
				StackDepth:    traceDepth,
				MaxStackDepth: traceMaxDepth,
			})

			var lg search.Logger[Node]
			switch {
			case useHistLog:
				lg = logger.NewHistogramLogger[Node](predicate, cmd.OutOrStdout())
			case useCountLog:
				lg = logger.NewCountLogger[Node](predicate, cmd.OutOrStdout())
			default:
				lg = logger.NewNoopLogger[Node]()
			}
			lg.SetIterTimeout(timeoutIters)
			lg.SetWallTimeout(time.Duration(timeoutMillis) * time.Millisecond)

			engine := search.NewOptEngine[Node, int64](
				root,
				rootGen,
				Objective(inst),
				nil,
				Prune(inst),
				lg,
			)

			fmt.Fprintf(cmd.OutOrStdout(), "numpart %s\n", filename)
			fmt.Fprintf(cmd.OutOrStdout(), "Shortcircuit objective: %d\n", greatest)

			t0 := time.Now()
			x, err := engine.SearchUntil(cmd.Context(), &greatest)
			elapsed := time.Since(t0)

			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Timeout: %dms\n", elapsed.Milliseconds())
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Partition: %v\n", x.Part)
			fmt.Fprintf(cmd.OutOrStdout(), "Sums: %v\n", x.Sum)
			fmt.Fprintf(cmd.OutOrStdout(), "Pi: %v\n", x.Pi)
			fmt.Fprintf(cmd.OutOrStdout(), "MaxSum: %d", x.MSum)
			switch {
			case inst.HasSolution() && inst.Solution() == x.MSum:
				fmt.Fprintln(cmd.OutOrStdout(), " OK")
			case inst.HasSolution() && inst.Solution() != x.MSum:
				fmt.Fprintln(cmd.OutOrStdout(), " WRONG")
			default:
				fmt.Fprintln(cmd.OutOrStdout())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Time: %dms\n", elapsed.Milliseconds())
			return nil
		},
	}

	cmd.Flags().Int64Var(&timeoutIters, "timeout", -1, "iteration bound before the search stops; -1 disables it")
	cmd.Flags().Int64Var(&timeoutMillis, "timeout-millis", -1, "wall-clock bound in milliseconds before the search stops; -1 disables it")
	cmd.Flags().BoolVar(&useCountLog, "count-logger", false, "trace search events with running counters")
	cmd.Flags().BoolVar(&useHistLog, "hist-logger", false, "trace search events with per-stack-depth histograms")
	cmd.Flags().BoolVar(&traceStrength, "strengthen", false, "trace predicate: fire on every STRENGTHEN event")
	cmd.Flags().Int64Var(&traceEvts, "evts", 0, "trace predicate: fire every N total events; 0 disables it")
	cmd.Flags().IntVar(&traceDepth, "stackdepth", -1, "trace predicate: fire on this exact stack depth; -1 disables it")
	cmd.Flags().IntVar(&traceMaxDepth, "maxstackdepth", -1, "trace predicate: fire at or below this stack depth; -1 disables it")

	return cmd
}
