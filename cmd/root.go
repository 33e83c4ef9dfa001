package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/ctxgrep/ctxgrep/config"
	"github.com/ctxgrep/ctxgrep/logging"
	"github.com/ctxgrep/ctxgrep/report"
	"github.com/ctxgrep/ctxgrep/scan"
	"github.com/ctxgrep/ctxgrep/sources/file"
	"github.com/ctxgrep/ctxgrep/version"
)

const banner = `
  ┌─┐┌┬┐─┐ ┬┌─┐┬─┐┌─┐┌─┐
  │   │ ┌┴┬┘│ ┬├┬┘├┤ ├─┘
  └─┘ ┴ ┴ └─└─┘┴└─└─┘┴    %s

`

const configDescription = `config file path
order of precedence:
1. --config/-c
2. env var CTXGREP_CONFIG
3. env var CTXGREP_CONFIG_TOML with the file content
If none of the three options are used, the built-in term list is used`

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ctxgrep [flags] [source]",
		Short:         "ctxgrep writes the text around literal terms in a file to a report",
		Version:       version.Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			initLog(cmd)
		},
		RunE: runScan,
	}

	flags := rootCmd.Flags()
	flags.StringP("config", "c", "", configDescription)
	flags.StringP("source", "s", "", "file to scan (may also be given as the first argument)")
	flags.StringP("report-path", "r", report.DefaultPath, "report file (use \"-\" for stdout); its directory must exist")
	flags.StringP("report-format", "f", "text", "output format (text, json, csv, template)")
	flags.String("report-template", "", "template file used to generate the report (implies --report-format=template)")
	flags.StringArray("term", nil, "term to search for, repeatable; replaces the configured terms")
	flags.Int("before", config.DefaultBefore, "characters of context kept before each match")
	flags.Int("after", config.DefaultAfter, "characters of context kept from the start of each match")
	flags.String("encoding", "utf-8", "text encoding of the source and the report")
	flags.Int("max-target-megabytes", 0, "fail on sources larger than this (default \"0\", no limit)")
	flags.StringP("log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal)")
	flags.BoolP("verbose", "v", false, "print each match")
	flags.Bool("no-color", false, "turn off color for verbose output")
	flags.Bool("no-banner", false, "suppress banner")

	return rootCmd
}

func initLog(cmd *cobra.Command) {
	ll := mustGetStringFlag(cmd, "log-level")
	if !logging.SetLevel(strings.ToLower(ll)) {
		logging.Warn().Msgf("unknown log level: %s", ll)
	}
	if noColor(cmd) {
		logging.DisableColor()
	}
}

// noColor is true when asked for, or when stderr is not a terminal.
func noColor(cmd *cobra.Command) bool {
	if mustGetBoolFlag(cmd, "no-color") {
		return true
	}
	fd := os.Stderr.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// loadConfig resolves the config file, then applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)

	cfgPath := mustGetStringFlag(cmd, "config")
	switch {
	case cfgPath != "":
		logging.Debug().Msgf("using config %s from `--config`", cfgPath)
		cfg, err = config.LoadFile(cfgPath)
	case os.Getenv("CTXGREP_CONFIG") != "":
		envPath := os.Getenv("CTXGREP_CONFIG")
		logging.Debug().Msgf("using config from CTXGREP_CONFIG env var: %s", envPath)
		cfg, err = config.LoadFile(envPath)
	case os.Getenv("CTXGREP_CONFIG_TOML") != "":
		logging.Debug().Msg("using config from CTXGREP_CONFIG_TOML env var content")
		cfg, err = config.Parse([]byte(os.Getenv("CTXGREP_CONFIG_TOML")))
	default:
		logging.Debug().Msg("no config given, using default config")
		cfg = config.Default()
	}
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("term") {
		cfg.Terms = termsFlag(cmd)
	}
	if flags.Changed("before") {
		cfg.Before = mustGetIntFlag(cmd, "before")
	}
	if flags.Changed("after") {
		cfg.After = mustGetIntFlag(cmd, "after")
	}
	if flags.Changed("encoding") {
		cfg.Encoding = mustGetStringFlag(cmd, "encoding")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if err := cfg.CheckVersion(version.Version); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runScan(cmd *cobra.Command, args []string) error {
	source := mustGetStringFlag(cmd, "source")
	if len(args) == 1 && args[0] != "" {
		source = args[0]
	}
	if source == "" {
		return errors.New("no source given: pass a file path as argument or with --source")
	}

	if !mustGetBoolFlag(cmd, "no-banner") {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), banner, version.Version)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	format := mustGetStringFlag(cmd, "report-format")
	tmplPath := mustGetStringFlag(cmd, "report-template")
	if tmplPath != "" && !cmd.Flags().Changed("report-format") {
		format = "template"
	}
	reporter, err := report.New(format, tmplPath)
	if err != nil {
		return err
	}

	src := &file.File{
		Path:        source,
		Encoding:    cfg.Encoding,
		MaxFileSize: mustGetIntFlag(cmd, "max-target-megabytes") * 1_000_000,
	}
	reportPath := mustGetStringFlag(cmd, "report-path")
	p := scan.NewPipeline(cfg, src, reporter, reportPath)

	logging.Debug().Str("source", source).Strs("terms", cfg.Terms).Msg("starting scan")
	summary, err := p.Run(cmd.Context())
	if err != nil {
		return err
	}

	printResults(cmd.ErrOrStderr(), summary, mustGetBoolFlag(cmd, "verbose"), noColor(cmd))
	return nil
}

func printResults(w io.Writer, summary scan.Summary, verbose, noColor bool) {
	if verbose {
		for _, s := range summary.Snippets {
			scan.PrintSnippet(w, s, noColor)
		}
	}
	scan.PrintSummary(w, summary, noColor)
}

// Execute runs the root command and exits non-zero on any error.
func Execute() {
	err := newRootCmd().Execute()
	switch exitCode(err) {
	case 0:
		return
	case 126:
		os.Exit(126)
	default:
		logging.Fatal().Msg(err.Error())
	}
}

// exitCode maps a command error to the process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case strings.Contains(err.Error(), "unknown flag"),
		strings.Contains(err.Error(), "unknown shorthand flag"):
		// exit code 126: Command invoked cannot execute
		return 126
	default:
		return 1
	}
}

// termsFlag returns the --term values as given. GetStringArray goes through
// a CSV round trip that loses a lone empty value.
func termsFlag(cmd *cobra.Command) []string {
	if sv, ok := cmd.Flags().Lookup("term").Value.(interface{ GetSlice() []string }); ok {
		return slices.Clone(sv.GetSlice())
	}
	terms, _ := cmd.Flags().GetStringArray("term")
	return terms
}

func mustGetBoolFlag(cmd *cobra.Command, name string) bool {
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		logging.Fatal().Err(err).Msgf("could not get flag: %s", name)
	}
	return value
}

func mustGetIntFlag(cmd *cobra.Command, name string) int {
	value, err := cmd.Flags().GetInt(name)
	if err != nil {
		logging.Fatal().Err(err).Msgf("could not get flag: %s", name)
	}
	return value
}

func mustGetStringFlag(cmd *cobra.Command, name string) string {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		logging.Fatal().Err(err).Msgf("could not get flag: %s", name)
	}
	return value
}
