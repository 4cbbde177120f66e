// Package fixture provides the string helpers exercised by external parser
// test harnesses: a normalizer, an uppercasing runner, and a working
// directory accessor.
package fixture

import (
	"os"
	"path/filepath"
	"strings"
)

// Normalize trims leading and trailing whitespace and replaces every
// hyphen with an underscore. Pure and idempotent.
func Normalize(value string) string {
	text := strings.TrimSpace(value)

	return strings.ReplaceAll(text, "-", "_")
}

// Runner wraps Normalize with an uppercasing pass. It holds no state.
type Runner struct{}

// Run returns the normalized value uppercased.
func (Runner) Run(value string) string {
	cleaned := Normalize(value)

	return strings.ToUpper(cleaned)
}

// WorkDir returns the process working directory, read at call time and
// never cached. It returns the empty string only when the directory
// cannot be resolved.
func WorkDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	return filepath.Clean(dir)
}
