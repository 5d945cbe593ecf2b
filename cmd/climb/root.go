package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/climb/config"
)

// app carries what PersistentPreRunE resolves for the subcommands.
type app struct {
	configPath string

	// flag values; applied over the file only when set explicitly
	verbose        bool
	seed           int64
	maxIterations  int
	timeLimit      time.Duration
	validateScores bool
	logLevel       string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "climb",
		Short: "Single-lineage hill climbing on bundled toy problems",
		Long: `climb generates one random candidate, then repeatedly mutates the best
candidate so far and keeps the mutant only when it scores strictly higher.
It stops when the maximum fitness is reached and prints the final score.

With --verbose every improvement is printed as "<member>\t<score>\t<elapsed>".`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "print every improvement")
	pf.Int64Var(&a.seed, "seed", 0, "random seed (0 picks one and logs it)")
	pf.IntVar(&a.maxIterations, "max-iterations", 0, "stop after this many mutations (0 = unbounded)")
	pf.DurationVar(&a.timeLimit, "time-limit", 0, "stop after this long (0 = none)")
	pf.BoolVar(&a.validateScores, "validate-scores", false, "fail on NaN or out-of-range scores")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newPhraseCmd(a), newOneMaxCmd(a))

	return root
}

// setup loads the config file, applies explicit flags over it and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Search.Verbose = a.verbose
	}
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	if flags.Changed("max-iterations") {
		cfg.Search.MaxIterations = a.maxIterations
	}
	if flags.Changed("time-limit") {
		cfg.Search.TimeLimit = a.timeLimit.String()
	}
	if flags.Changed("validate-scores") {
		cfg.Search.ValidateScores = a.validateScores
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	logger, err := loggerConfig(level, cfg.Search.Verbose).Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	return nil
}

// loggerConfig is the production config at level. Verbose runs log at debug
// without sampling, so every "improvement" entry is kept.
func loggerConfig(level zapcore.Level, verbose bool) zap.Config {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	if verbose {
		zc.Level.SetLevel(zapcore.DebugLevel)
		zc.Sampling = nil
	}

	return zc
}
