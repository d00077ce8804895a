package domain

import (
	"github.com/pmezard/go-difflib/difflib"
)

// UnifiedDiff returns a unified diff between the original and rewritten page.
func UnifiedDiff(name string, before, after []byte) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  2,
	})
}
