package deps

import (
	"strings"
	"unicode"

	"github.com/matzehuels/pubdate/pkg/errors"
)

// isNameStart reports whether r can begin a package identifier in a listing
// line. Everything before the first such rune is tree decoration.
func isNameStart(r rune) bool {
	return r == '@' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// ParseLine extracts a package from one line of `yarn list` output.
//
// Leading decoration ("├─ ", "│  └─ ", indentation) is skipped up to the
// first '@' or alphanumeric rune. The rest of the line is name@version and
// is split at the last '@', so scoped names such as "@scope/pkg@1.0.0" keep
// their leading '@'.
//
// ok is false for lines that carry no package: blank or pure decoration,
// no version separator, an empty name or version, or an invalid name.
func ParseLine(line string) (pkg Package, ok bool) {
	start := strings.IndexFunc(line, isNameStart)
	if start < 0 {
		return Package{}, false
	}
	entry := strings.TrimRightFunc(line[start:], unicode.IsSpace)

	sep := strings.LastIndexByte(entry, '@')
	if sep <= 0 {
		return Package{}, false
	}
	name, version := entry[:sep], entry[sep+1:]
	if version == "" || errors.ValidatePackageName(name) != nil {
		return Package{}, false
	}
	return Package{Name: name, Version: version}, true
}

// ParseLines parses every line in order, one Package per package-bearing
// line. No deduplication is done. Lines that contain a name-start rune but
// still yield no package are returned in skipped; blank and decoration-only
// lines are dropped silently.
func ParseLines(lines []string) (pkgs []Package, skipped []string) {
	pkgs = make([]Package, 0, len(lines))
	for _, line := range lines {
		if pkg, ok := ParseLine(line); ok {
			pkgs = append(pkgs, pkg)
		} else if strings.IndexFunc(line, isNameStart) >= 0 {
			skipped = append(skipped, line)
		}
	}
	return pkgs, skipped
}
