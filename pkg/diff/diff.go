// Package diff renders the --diff-only report.
package diff

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Unified returns a unified diff between the original and rewritten file
// contents. Files ending without a newline get an explanatory marker so
// the diff itself stays printable.
func Unified(original, updated, path string) string {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(updated),
		FromFile: path,
		ToFile:   path,
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return ""
	}
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n\\ No newline at end of file\n"
	}
	return text
}
