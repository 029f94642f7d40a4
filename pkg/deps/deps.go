package deps

import (
	"fmt"
	"strings"
	"time"

	packageurl "github.com/package-url/packageurl-go"
)

// Package is one installed dependency as reported by the package manager,
// optionally enriched with the instant its version was published.
type Package struct {
	Name        string    // Package name, including the @scope/ prefix if scoped
	Version     string    // Exact version string from the listing
	PublishedAt time.Time // Zero until resolved against the registry
}

// Resolved reports whether a publish date has been attached.
func (p *Package) Resolved() bool {
	return !p.PublishedAt.IsZero()
}

// SetPublished attaches the publish date. It fails if a date is already set
// or t is the zero time, so a record is enriched at most once.
func (p *Package) SetPublished(t time.Time) error {
	if t.IsZero() {
		return fmt.Errorf("%s@%s: publish date is zero", p.Name, p.Version)
	}
	if p.Resolved() {
		return fmt.Errorf("%s@%s: publish date already set", p.Name, p.Version)
	}
	p.PublishedAt = t
	return nil
}

// String returns name@version.
func (p Package) String() string {
	return p.Name + "@" + p.Version
}

// PURL returns the package URL for this package, e.g.
// "pkg:npm/%40babel/core@7.24.0" for a scoped name.
func (p Package) PURL() string {
	namespace, name := "", p.Name
	if strings.HasPrefix(p.Name, "@") {
		if scope, rest, ok := strings.Cut(p.Name, "/"); ok {
			namespace, name = scope, rest
		}
	}
	return packageurl.NewPackageURL(packageurl.TypeNPM, namespace, name, p.Version, nil, "").ToString()
}
