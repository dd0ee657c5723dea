package root

import (
	"github.com/spf13/cobra"

	"github.com/go-branchbound/branchbound/cmd/numpart"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "branchbound",
		Short: "branchbound is a generic depth-first branch-and-bound search engine",
		Long: `A generic depth-first, branch-and-bound tree-search engine, usable for
enumeration, optimization, and decision search over any problem expressed as
a lazy child generator.`,
	}

	// add sub-commands
	rootCmd.AddCommand(numpart.NewNumpartCommand())

	return rootCmd
}
