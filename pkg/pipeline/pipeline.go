// Package pipeline provides the report pipeline for pubdate.
//
// The pipeline lists the installed dependencies of a yarn project, looks up
// the publish date of every exact installed version, and orders the result
// oldest first. It runs in a single pass:
//
//  1. List: run the lister and collect its output lines
//  2. Parse: turn lines into [deps.Package] records
//  3. Resolve: ask the registry for each publish date, one request at a time
//  4. Sort: order resolved records by date and set the rest aside
//
// A version the registry does not know is a diagnostic, logged as a warning,
// and the run continues. Any other failure aborts the run. Nothing is
// written to the report until the whole pipeline has completed.
//
// # Usage
//
//	opts := pipeline.Options{Dir: "."}
//	if err := opts.ValidateAndSetDefaults(); err != nil {
//	    return err
//	}
//	runner := pipeline.NewRunner(opts.Lister(), opts.Resolver(), logger)
//	result, err := runner.Run(ctx)
//	if err != nil {
//	    return err
//	}
//	w, _ := report.NewWriter(opts.Format)
//	w.Write(os.Stdout, result.Packages)
package pipeline

import (
	"time"

	"github.com/matzehuels/pubdate/pkg/deps"
	"github.com/matzehuels/pubdate/pkg/deps/yarn"
	"github.com/matzehuels/pubdate/pkg/errors"
	"github.com/matzehuels/pubdate/pkg/integrations/npm"
	"github.com/matzehuels/pubdate/pkg/report"
)

// =============================================================================
// Options
// =============================================================================

// Options configures where packages come from and how they are reported.
// The zero value reproduces the default behavior: yarn in the current
// directory, the public npm registry, and the text report.
type Options struct {
	Dir      string // Project directory yarn runs in
	Yarn     string // yarn executable (default: "yarn")
	FromFile string // Saved `yarn list` output; replaces running yarn
	Registry string // Registry base URL (default: npm.DefaultURL)
	Format   string // Report format: "text" or "json"
}

// ValidateAndSetDefaults fills in defaults and rejects unusable options.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Yarn == "" {
		o.Yarn = yarn.DefaultBinary
	}
	if o.Registry == "" {
		o.Registry = npm.DefaultURL
	}
	if o.Format == "" {
		o.Format = report.FormatText
	}
	if _, err := report.NewWriter(o.Format); err != nil {
		return err
	}
	if o.FromFile != "" && o.Dir != "" {
		return errors.New(errors.ErrCodeInvalidInput, "--from-file and --dir cannot be combined")
	}
	return nil
}

// Lister returns the dependency lister the options select.
func (o Options) Lister() yarn.Lister {
	if o.FromFile != "" {
		return yarn.File(o.FromFile)
	}
	return yarn.NewCommand(o.Yarn, o.Dir)
}

// Resolver returns the registry client for the configured registry.
func (o Options) Resolver() Resolver {
	return npm.NewClient(o.Registry)
}

// =============================================================================
// Result
// =============================================================================

// Result is the outcome of a completed run.
type Result struct {
	Packages   []deps.Package // Resolved packages, oldest first
	Unresolved []deps.Package // Packages whose version the registry did not know
	Skipped    []string       // Listing lines that did not parse
	Stats      Stats
}

// Stats holds counters and timings for a run.
type Stats struct {
	Lines       int
	Requests    int
	ListTime    time.Duration
	ResolveTime time.Duration
}
