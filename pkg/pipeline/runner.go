package pipeline

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/matzehuels/pubdate/pkg/deps"
	"github.com/matzehuels/pubdate/pkg/deps/yarn"
	"github.com/matzehuels/pubdate/pkg/integrations/npm"
	"github.com/matzehuels/pubdate/pkg/observability"
	"github.com/matzehuels/pubdate/pkg/report"
)

// Resolver looks up the publish date of an exact package version.
//
// A version the registry does not list must be reported as
// *npm.VersionNotFoundError; every other error aborts the run.
type Resolver interface {
	PublishTime(ctx context.Context, name, version string) (time.Time, error)
}

// Runner executes the report pipeline. It holds no per-run state, so a
// Runner can be reused.
type Runner struct {
	Lister   yarn.Lister
	Resolver Resolver
	Logger   *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(lister yarn.Lister, resolver Resolver, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Lister:   lister,
		Resolver: resolver,
		Logger:   logger,
	}
}

// Run lists, parses, resolves and sorts the installed packages.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	hooks := observability.Pipeline()
	result := &Result{}

	// Stage 1: List
	listStart := time.Now()
	hooks.OnListStart(ctx)
	lines, err := r.Lister.List(ctx)
	result.Stats.ListTime = time.Since(listStart)
	hooks.OnListComplete(ctx, len(lines), result.Stats.ListTime, err)
	if err != nil {
		return nil, fmt.Errorf("list dependencies: %w", err)
	}
	result.Stats.Lines = len(lines)

	// Stage 2: Parse
	pkgs, skipped := deps.ParseLines(lines)
	result.Skipped = skipped
	for _, line := range skipped {
		r.Logger.Debug("skipped line", "line", line)
	}
	r.Logger.Debug("listed dependencies",
		"lines", len(lines),
		"packages", len(pkgs),
		"duration", result.Stats.ListTime)

	// Stage 3: Resolve
	resolveStart := time.Now()
	for i := range pkgs {
		if err := r.resolve(ctx, &pkgs[i]); err != nil {
			return nil, err
		}
		result.Stats.Requests++
	}
	result.Stats.ResolveTime = time.Since(resolveStart)

	// Stage 4: Sort
	result.Packages, result.Unresolved = report.Sort(pkgs)
	hooks.OnReportReady(ctx, len(result.Packages), len(result.Unresolved))

	r.Logger.Debug("resolved publish dates",
		"resolved", len(result.Packages),
		"unresolved", len(result.Unresolved),
		"duration", result.Stats.ResolveTime)

	return result, nil
}

// resolve attaches the publish date to p. A version the registry does not
// know is logged and leaves p unresolved.
func (r *Runner) resolve(ctx context.Context, p *deps.Package) error {
	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnResolveStart(ctx, p.Name, p.Version)

	published, err := r.Resolver.PublishTime(ctx, p.Name, p.Version)

	var notFound *npm.VersionNotFoundError
	if stderrors.As(err, &notFound) {
		hooks.OnResolveComplete(ctx, p.Name, p.Version, false, time.Since(start), nil)
		r.Logger.Warn(notFound.Error())
		return nil
	}
	hooks.OnResolveComplete(ctx, p.Name, p.Version, err == nil, time.Since(start), err)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("resolve %s: %w", p, err)
	}

	if err := p.SetPublished(published); err != nil {
		return err
	}
	r.Logger.Debug("resolved", "package", p.String(), "published", humanize.Time(published))
	return nil
}
