package report

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/matzehuels/pubdate/pkg/deps"
	"github.com/matzehuels/pubdate/pkg/errors"
)

// TimestampLayout is the layout of publish dates in the text report.
const TimestampLayout = "2006/01/02 15:04:05"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Writer writes an ordered report.
type Writer interface {
	Write(w io.Writer, pkgs []deps.Package) error
}

// Sort returns the resolved packages ordered by publish date, oldest first,
// and the unresolved ones in their original order. The input is not
// modified.
func Sort(pkgs []deps.Package) (ordered, unresolved []deps.Package) {
	ordered = make([]deps.Package, 0, len(pkgs))
	for _, p := range pkgs {
		if p.Resolved() {
			ordered = append(ordered, p)
		} else {
			unresolved = append(unresolved, p)
		}
	}
	slices.SortStableFunc(ordered, func(a, b deps.Package) int {
		return a.PublishedAt.Compare(b.PublishedAt)
	})
	return ordered, unresolved
}

// FormatTimestamp renders t as YYYY/MM/DD HH:MM:SS in the offset it carries.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// NewWriter returns the writer for format.
func NewWriter(format string) (Writer, error) {
	switch format {
	case "", FormatText:
		return TextWriter{}, nil
	case FormatJSON:
		return JSONWriter{Indent: "  "}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want %s or %s)", format, FormatText, FormatJSON)
	}
}

// TextWriter prints "<name>: <timestamp>" lines.
type TextWriter struct{}

func (TextWriter) Write(w io.Writer, pkgs []deps.Package) error {
	for _, p := range pkgs {
		if _, err := fmt.Fprintf(w, "%s: %s\n", p.Name, FormatTimestamp(p.PublishedAt)); err != nil {
			return err
		}
	}
	return nil
}

// JSONWriter prints the report as a JSON array.
type JSONWriter struct {
	Indent string
}

type jsonEntry struct {
	Name        string    `json:"name"`
	Version     string    `json:"version"`
	PURL        string    `json:"purl"`
	PublishedAt time.Time `json:"published_at"`
}

func (j JSONWriter) Write(w io.Writer, pkgs []deps.Package) error {
	entries := make([]jsonEntry, len(pkgs))
	for i, p := range pkgs {
		entries[i] = jsonEntry{
			Name:        p.Name,
			Version:     p.Version,
			PURL:        p.PURL(),
			PublishedAt: p.PublishedAt,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", j.Indent)
	return enc.Encode(entries)
}
