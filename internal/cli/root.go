// Package cli wires the kyopro library packages into a cobra command tree
// that reads contest-style input from stdin and prints answers to stdout.
package cli

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/kyopro/internal/config"
)

// Input holds the global flags.
type Input struct {
	configPath string
	verbose    bool
	jsonLog    bool
	oneIndexed bool

	cfg    config.Config
	logger *log.Logger
}

// Execute runs the command tree on args, or on os.Args[1:] when args is
// empty. Cobra has already printed the error when one is returned; the
// caller only decides the exit status.
func Execute(ctx context.Context, version string, args ...string) error {
	in := &Input{}
	rootCmd := NewRootCommand(in, version)
	if len(args) > 0 {
		rootCmd.SetArgs(args)
	}

	return rootCmd.ExecuteContext(ctx)
}

// NewRootCommand builds the kyopro command tree around in.
func NewRootCommand(in *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "kyopro",
		Short:             "Run tree and graph algorithms on contest-style input",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: in.setup,
	}
	rootCmd.PersistentFlags().StringVarP(&in.configPath, "config", "c", "", "path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&in.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&in.jsonLog, "json", false, "output logs in json format")
	rootCmd.PersistentFlags().BoolVar(&in.oneIndexed, "one-indexed", false, "vertex ids in input start at 1")

	rootCmd.AddCommand(
		newRerootCommand(in),
		newDijkstraCommand(in),
		newMSTCommand(in),
		newHLDCommand(in),
		newDSUCommand(in),
		newWeightedDSUCommand(in),
		newPrimeCommand(in),
		newTopoSortCommand(in),
		newSCCCommand(in),
		newMaxFlowCommand(in),
		newGridCommand(in),
		newRSQCommand(in),
		newRMQCommand(in),
		newRangeAddCommand(in),
	)

	return rootCmd
}

// setup loads the config file, applies flag overrides and builds the logger.
func (in *Input) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(in.configPath)
	if err != nil {
		return err
	}
	overlayFlags(cmd.Flags(), in, &cfg)

	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	in.cfg = cfg
	in.logger = logger
	logger.WithFields(log.Fields{
		"command":     cmd.Name(),
		"one_indexed": cfg.OneIndexed,
	}).Debug("configured")

	return nil
}

// overlayFlags copies explicitly set flags over the file settings, so an
// unset flag never clobbers a value from the file.
func overlayFlags(fs *pflag.FlagSet, in *Input, cfg *config.Config) {
	if fs.Changed("verbose") && in.verbose {
		cfg.LogLevel = log.DebugLevel.String()
	}
	if fs.Changed("json") {
		cfg.JSONLog = in.jsonLog
	}
	if fs.Changed("one-indexed") {
		cfg.OneIndexed = in.oneIndexed
	}
}

// log returns the configured logger, or a discarding one before setup.
func (in *Input) log() *log.Logger {
	if in.logger == nil {
		l := log.New()
		l.SetLevel(log.PanicLevel)
		return l
	}

	return in.logger
}
