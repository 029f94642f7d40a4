// Package pkg provides the libraries behind pubdate.
//
// # Overview
//
// pubdate lists the installed dependencies of a yarn project and prints them
// ordered by the date each installed version was published to npm. The pkg
// directory is organized by concern:
//
//  1. [deps] - The package record and the `yarn list` line parser
//  2. [deps/yarn] - Listers that produce `yarn list` output
//  3. [integrations] - HTTP plumbing and the [integrations/npm] registry client
//  4. [pipeline] - Orchestration (list → parse → resolve → sort)
//  5. [report] - Ordering policy and the text/JSON writers
//
// Supporting packages are [errors] (coded errors and name validation),
// [observability] (pipeline and HTTP hooks) and [buildinfo] (ldflags
// version data).
//
// # Architecture
//
//	yarn list --silent --depth=0
//	         ↓
//	    [deps/yarn] lines
//	         ↓
//	    [deps] Package records
//	         ↓
//	    [integrations/npm] publish dates, one request per package
//	         ↓
//	    [report] oldest first → stdout
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/pubdate/pkg/deps/yarn"
//	    "github.com/matzehuels/pubdate/pkg/integrations/npm"
//	    "github.com/matzehuels/pubdate/pkg/pipeline"
//	    "github.com/matzehuels/pubdate/pkg/report"
//	)
//
//	runner := pipeline.NewRunner(yarn.NewCommand("", "."), npm.NewClient(""), nil)
//	result, err := runner.Run(ctx)
//	if err != nil {
//	    return err
//	}
//	report.TextWriter{}.Write(os.Stdout, result.Packages)
//
// [deps]: https://pkg.go.dev/github.com/matzehuels/pubdate/pkg/deps
// [deps/yarn]: https://pkg.go.dev/github.com/matzehuels/pubdate/pkg/deps/yarn
// [integrations]: https://pkg.go.dev/github.com/matzehuels/pubdate/pkg/integrations
// [integrations/npm]: https://pkg.go.dev/github.com/matzehuels/pubdate/pkg/integrations/npm
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/pubdate/pkg/pipeline
// [report]: https://pkg.go.dev/github.com/matzehuels/pubdate/pkg/report
// [errors]: https://pkg.go.dev/github.com/matzehuels/pubdate/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/pubdate/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/pubdate/pkg/buildinfo
package pkg
