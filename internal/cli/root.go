// Package cli implements the command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/hightemp/countrykit"
	"github.com/hightemp/countrykit/internal/config"
	"github.com/hightemp/countrykit/internal/logging"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// ExitCode constants
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitInvalidInput = 2
	ExitNotFound     = 4
)

// exitError carries a process exit code out of a command.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string {
	return e.msg
}

func exitWithCode(code int, format string, args ...interface{}) error {
	return &exitError{code: code, msg: fmt.Sprintf(format, args...)}
}

// app holds state shared by all subcommands of one invocation.
type app struct {
	configPath string
	format     string
	jsonOutput bool
	logLevel   string

	cfg     *config.Config
	catalog *countrykit.Catalog

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// newRootCmd builds the command tree. Streams are injected so tests can
// drive the CLI without touching the process descriptors.
func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:   "countrykit [code]",
		Short: "Country reference data - look up ISO 3166-1 codes, names, calling codes and flags",
		Long: `countrykit looks up ISO 3166-1 country metadata from a built-in table:
alpha-2 and alpha-3 codes, display name, international calling code and flag.

For single code lookup:
  countrykit US

For batch processing (read from stdin, one code per line):
  cat codes.txt | countrykit`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: a.runLookup,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultConfigPath(), "configuration file path")
	rootCmd.PersistentFlags().StringVar(&a.format, "format", config.FormatText, "output format: text, json, or yaml")
	rootCmd.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "output in JSON format (same as --format json)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", config.DefaultLogLevel, "diagnostic log level")

	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	// Add subcommands
	rootCmd.AddCommand(a.newSearchCmd())
	rootCmd.AddCommand(a.newListCmd())
	rootCmd.AddCommand(a.newCallingCodeCmd())
	rootCmd.AddCommand(a.newFlagCmd())
	rootCmd.AddCommand(a.newValidateCmd())
	rootCmd.AddCommand(a.newVersionCmd())

	return rootCmd
}

// setup loads configuration, applies explicit flags on top of it and
// builds the catalog.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return exitWithCode(ExitInvalidInput, "Error: %v", err)
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if a.jsonOutput {
		cfg.Format = config.FormatJSON
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return exitWithCode(ExitInvalidInput, "Error: %v", err)
	}

	a.cfg = cfg
	logger := logging.New(a.stderr, cfg.Level(), cfg.LogJSON)
	a.catalog = countrykit.New(countrykit.WithLogger(logger))
	return nil
}

// Execute runs the command line against the process streams and exits
// with the command's exit code.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdin, stdout, stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	printError(stderr, err.Error())

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitFailure
}

func printError(w io.Writer, msg string) {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		color.New(color.FgRed).Fprintln(w, msg)
		return
	}
	fmt.Fprintln(w, msg)
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
