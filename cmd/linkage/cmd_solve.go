package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/katalvlaran/linkage/cluster"
	"github.com/katalvlaran/linkage/geometry"
	"github.com/katalvlaran/linkage/internal/config"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type solveFlags struct {
	configPath string
	k          int
	top        int
	policy     string
	workers    int
	dimension  int
	strict     bool
	verbose    bool
}

func newSolveCmd(newLogger loggerFactory) *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve [FILE]",
		Short: "Solve both parts for the boxes in FILE (or stdin)",
		Long: `Reads one comma-separated point per line from FILE, the configured
input, or stdin, and prints one "Part N Solution:" line per policy.

$ linkage solve inputs/day08.txt
Part 1 Solution: 40
Part 2 Solution: 25272
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f, args)
			if err != nil {
				return err
			}

			logger, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return runSolve(cmd, cfg, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.configPath, "config", "", "YAML configuration file")
	flags.IntVar(&f.k, "k", cluster.DefaultK, "number of closest pairs to link for part 1")
	flags.IntVar(&f.top, "top", cluster.DefaultTopGroups, "number of largest circuits to multiply for part 1")
	flags.StringVar(&f.policy, "policy", config.PolicyBoth, "both, largest-groups or connect-all")
	flags.IntVar(&f.workers, "workers", 1, "goroutines used to compute pair distances")
	flags.IntVar(&f.dimension, "dim", geometry.Dim3, "coordinates per line (0 infers from the first line)")
	flags.BoolVar(&f.strict, "strict", false, "fail when fewer circuits exist than --top")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")

	return cmd
}

// resolveConfig layers defaults, the config file, then explicitly set flags.
func resolveConfig(cmd *cobra.Command, f solveFlags, args []string) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("k") {
		cfg.K = f.k
	}
	if flags.Changed("top") {
		cfg.TopGroups = f.top
	}
	if flags.Changed("policy") {
		cfg.Policy = f.policy
	}
	if flags.Changed("workers") {
		cfg.Workers = f.workers
	}
	if flags.Changed("dim") {
		cfg.Dimension = f.dimension
	}
	if flags.Changed("strict") {
		cfg.Strict = f.strict
	}
	if f.verbose {
		cfg.LogLevel = "debug"
	}
	if len(args) == 1 {
		cfg.Input = args[0]
	}

	return cfg, cfg.Validate()
}

func runSolve(cmd *cobra.Command, cfg config.Config, logger *zap.Logger) error {
	points, err := readInput(cmd, cfg)
	if err != nil {
		logger.Error("Failed to read points", zap.String("input", cfg.Input), zap.Error(err))
		return err
	}
	logger.Debug("Points loaded",
		zap.String("input", cfg.Input),
		zap.Int("points", len(points)),
		zap.Int("workers", cfg.Workers))

	out := cmd.OutOrStdout()
	for _, m := range cfg.Methods() {
		start := time.Now()
		res, err := cluster.Compute(points, cfg.ClusterOptions(m))
		if err != nil {
			logger.Error("Clustering failed", zap.String("method", string(m)), zap.Error(err))
			return fmt.Errorf("%s: %w", m, err)
		}
		logger.Info("Clustering finished",
			zap.String("method", string(m)),
			zap.Float64("value", res.Value),
			zap.Duration("elapsed", time.Since(start)))

		fmt.Fprintf(out, "%s Solution: %s\n", partLabel(m), formatValue(res))
	}

	return nil
}

// readInput opens cfg.Input, falling back to the command's stdin.
func readInput(cmd *cobra.Command, cfg config.Config) ([]geometry.Point, error) {
	var r io.Reader
	if cfg.Input != "" {
		file, err := os.Open(cfg.Input)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
	} else {
		r = cmd.InOrStdin()
		if file, ok := r.(*os.File); ok && isatty.IsTerminal(file.Fd()) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Enter junction boxes as X,Y,Z, one per line; end with Ctrl-D…")
		}
	}

	return geometry.ReadPoints(r, cfg.Dimension)
}

func partLabel(m cluster.Method) string {
	if m == cluster.MethodConnectAll {
		return "Part 2"
	}

	return "Part 1"
}

func formatValue(res cluster.Result) string {
	if res.Groups != nil {
		return strconv.Itoa(res.Groups.Product)
	}

	return strconv.FormatFloat(res.Value, 'f', -1, 64)
}
