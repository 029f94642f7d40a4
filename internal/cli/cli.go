// Package cli implements the pubdate command-line interface.
//
// pubdate has a single command. With no flags it runs `yarn list` in the
// current directory, looks up every installed version in the public npm
// registry and prints the packages oldest first:
//
//	$ pubdate
//	left-pad: 2016/03/23 16:31:37
//	lodash: 2021/02/20 15:42:16
//
// # Output
//
// The report goes to stdout and is written only after every package has
// been looked up. Logs, version diagnostics and the progress spinner go to
// stderr. The spinner only runs when stderr is a terminal.
//
// # Logging
//
// --verbose (-v) switches the logger to debug level. The logger is attached
// to the command context and retrieved with loggerFromContext.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pubdate/pkg/buildinfo"
	"github.com/matzehuels/pubdate/pkg/deps/yarn"
	"github.com/matzehuels/pubdate/pkg/integrations/npm"
	"github.com/matzehuels/pubdate/pkg/observability"
	"github.com/matzehuels/pubdate/pkg/pipeline"
	"github.com/matzehuels/pubdate/pkg/report"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for the command and display.
const appName = "pubdate"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds the output streams and logger shared by the command.
type CLI struct {
	Logger *log.Logger

	stdout      io.Writer
	stderr      *lineWriter
	interactive bool
}

// New creates a CLI that writes the report to stdout and everything else to
// stderr. The spinner is enabled when stderr is a terminal.
func New(stdout, stderr io.Writer, level log.Level) *CLI {
	lw := &lineWriter{w: stderr}
	return &CLI{
		Logger:      newLogger(lw, level),
		stdout:      stdout,
		stderr:      lw,
		interactive: isTerminal(stderr),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// RootCommand creates the pubdate command.
func (c *CLI) RootCommand() *cobra.Command {
	var opts pipeline.Options

	root := &cobra.Command{
		Use:   appName,
		Short: "pubdate lists installed yarn dependencies by publish date",
		Long: `pubdate runs "yarn list" in a project, asks the npm registry when each installed
version was published, and prints the dependencies from oldest to newest.`,
		Version:      buildinfo.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.Flags()
	flags.StringVarP(&opts.Dir, "dir", "C", "", "project directory to run yarn in (default: current directory)")
	flags.StringVar(&opts.Yarn, "yarn", yarn.DefaultBinary, "yarn executable")
	flags.StringVar(&opts.FromFile, "from-file", "", "read saved `yarn list` output instead of running yarn")
	flags.StringVar(&opts.Registry, "registry", npm.DefaultURL, "npm registry base URL")
	flags.StringVarP(&opts.Format, "format", "f", report.FormatText, "report format: text or json")

	return root
}

// =============================================================================
// Run
// =============================================================================

func (c *CLI) run(ctx context.Context, opts pipeline.Options) error {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	writer, err := report.NewWriter(opts.Format)
	if err != nil {
		return err
	}

	logger := loggerFromContext(ctx)
	lister := opts.Lister()
	runner := pipeline.NewRunner(lister, opts.Resolver(), logger)
	logger.Debug("starting", "lister", lister, "registry", opts.Registry)

	prog := newProgress(logger)
	var spinner *Spinner
	if c.interactive {
		spinner = newSpinnerWithContext(ctx, c.stderr, "Listing dependencies...")
		observability.SetPipelineHooks(&spinnerHooks{spinner: spinner})
		defer observability.SetPipelineHooks(observability.NoopPipelineHooks{})
		spinner.Start()
	}

	result, err := runner.Run(ctx)
	if err != nil {
		if spinner != nil {
			spinner.Stop()
		}
		return err
	}

	if spinner != nil {
		spinner.StopWithSuccess("Resolved %d packages", len(result.Packages))
	}
	prog.done("report ready")

	return writer.Write(c.stdout, result.Packages)
}
