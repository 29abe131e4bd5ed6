package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/linkage/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loggerFactory builds the logger for a run; tests swap in zaptest loggers.
type loggerFactory func(level string) (*zap.Logger, error)

func newRootCmd(version string, newLogger loggerFactory) *cobra.Command {
	root := &cobra.Command{
		Use:   "linkage",
		Short: "link junction boxes into circuits by closest distance",
		Long: `
linkage reads one X,Y,Z junction box per line, connects the closest pairs
with a union-find forest and reports:

  Part 1: the product of the sizes of the largest circuits after linking
          the K closest pairs;
  Part 2: the product of the X coordinates of the pair whose link first
          joins every box into one circuit.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newSolveCmd(newLogger))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})

	return root
}

// Execute runs the root command and exits with status 1 on error.
func Execute(version string) {
	if err := newRootCmd(version, logging.New).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
