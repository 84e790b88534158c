// Package main provides the handson CLI, which replays exercise query
// files against the segment tree packages.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/francealip/competitive-programming/cmd/handson/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "handson",
		Short: "Run exercise query files against the lazy max segment tree",
		Long: `handson replays the exercise fixture formats:

  maxquery  range clamp updates and range max queries over an array
  exists    existence queries over interval overlap counts`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewMaxQueryCommand())
	rootCmd.AddCommand(commands.NewExistsCommand())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
