package errors

import (
	"strings"
	"unicode"
)

// maxPackageNameLength is the npm registry limit for package names.
const maxPackageNameLength = 214

// ValidatePackageName validates an npm package name as it appears in a
// dependency listing.
//
// The rules are a conservative subset of the npm naming rules:
//   - No empty names
//   - Maximum length of 214 characters
//   - No control characters or whitespace
//   - No path traversal sequences or backslashes
//   - Scoped names must have the form @scope/name
//
// Uppercase letters are accepted because legacy packages still carry them.
func ValidatePackageName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPackage, "package name cannot be empty")
	}

	if len(name) > maxPackageNameLength {
		return New(ErrCodeInvalidPackage, "package name too long (max %d characters)", maxPackageNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidPackage, "package name %q contains whitespace or control characters", name)
		}
	}

	for _, pattern := range []string{"..", "//", "\\"} {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidPackage, "package name %q contains invalid sequence %q", name, pattern)
		}
	}

	if strings.HasPrefix(name, "@") {
		scope, pkg, ok := strings.Cut(name[1:], "/")
		if !ok || scope == "" || pkg == "" || strings.Contains(pkg, "/") {
			return New(ErrCodeInvalidPackage, "scoped package name %q must have the form @scope/name", name)
		}
		return nil
	}

	if strings.Contains(name, "/") {
		return New(ErrCodeInvalidPackage, "package name %q contains a slash but has no scope", name)
	}

	return nil
}
