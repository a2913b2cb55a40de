package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/wesleyorama2/cvstats/internal/config"
	"github.com/wesleyorama2/cvstats/internal/output"
)

var version = "0.1.0"

// RootCmd represents the cvstats command
var RootCmd = NewRootCmd()

// NewRootCmd builds the cvstats command with its flags
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cvstats -m METRIC[,METRIC...] -s STATISTIC[,STATISTIC...] [-t] [-d DATASET] [-v] FILE...",
		Short:   "Summarize cross-validation job results",
		Version: version,
		Long: `cvstats computes the mean, sample standard deviation and standard error of a
statistic across cross-validation job output files.

Each input line is a tab-delimited list of name=value fields. A line is used
when its metric field equals one of the requested metrics and, with
--dataset, its expId field ends with the given suffix. One report line is
printed per metric and statistic:

  cvstats -m EXACT -s skippingF1 job1.out job2.out
  EXACT, skippingF1: 0.7000 +- 0.1414  (SE: 0.1000) [2]`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		RunE:          runStats,
	}

	cmd.Flags().StringP("metric", "m", "", "Comma-separated metrics to average, e.g. EXACT")
	cmd.Flags().StringP("statistic", "s", "", "Comma-separated statistics to average, e.g. skippingF1")
	cmd.Flags().BoolP("sort", "t", false, "Sort output from smallest mean to largest")
	cmd.Flags().StringP("dataset", "d", "", "Dataset ID (suffix of the experiment ID)")
	cmd.Flags().BoolP("verbose", "v", false, "List contributing files instead of a count")
	cmd.Flags().Float64SliceP("percentiles", "p", nil, "Percentiles to report, e.g. 50,90")
	cmd.Flags().StringP("format", "f", string(output.FormatText), "Output format (text, json, yaml)")
	cmd.Flags().String("input-format", "tsv", "Input line format (tsv, jsonl)")
	cmd.Flags().StringP("config", "c", "", "YAML file with default options")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	cmd.Flags().Bool("debug", false, "Log scan details to stderr")

	return cmd
}

// Execute runs the root command and reports any error on stderr.
// This is called by main.main().
func Execute() error {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", output.ErrorIcon(!isTerminal(os.Stderr)), err)
		return err
	}
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	// Only option problems are usage errors
	cmd.SilenceUsage = true

	opts, err := resolveOptions(cmd, args)
	if err != nil {
		var verrs *config.ValidationErrors
		if errors.As(err, &verrs) {
			cmd.SilenceUsage = false
		}
		return err
	}

	debug, _ := cmd.Flags().GetBool("debug")
	logger := newLogger(cmd.ErrOrStderr(), debug)

	return run(cmd.OutOrStdout(), opts, logger)
}

// resolveOptions builds Options from the flags, overlaying the config file
// for any option not given explicitly.
func resolveOptions(cmd *cobra.Command, args []string) (config.Options, error) {
	flags := cmd.Flags()

	metric, _ := flags.GetString("metric")
	statistic, _ := flags.GetString("statistic")
	sort, _ := flags.GetBool("sort")
	dataset, _ := flags.GetString("dataset")
	verbose, _ := flags.GetBool("verbose")
	percentiles, _ := flags.GetFloat64Slice("percentiles")
	format, _ := flags.GetString("format")
	inputFormat, _ := flags.GetString("input-format")
	configFile, _ := flags.GetString("config")
	noColor, _ := flags.GetBool("no-color")

	opts := config.Options{
		Metrics:     config.SplitList(metric),
		Statistics:  config.SplitList(statistic),
		Dataset:     dataset,
		Sort:        sort,
		Verbose:     verbose,
		Percentiles: percentiles,
		Format:      format,
		InputFormat: inputFormat,
		NoColor:     noColor,
		Files:       args,
	}

	if configFile != "" {
		f, err := config.LoadFile(configFile)
		if err != nil {
			return config.Options{}, err
		}
		set := make(map[string]bool)
		flags.Visit(func(f *pflag.Flag) {
			set[f.Name] = true
		})
		opts = opts.Apply(f, set)
	}

	if err := opts.Validate(); err != nil {
		return config.Options{}, err
	}
	return opts, nil
}
