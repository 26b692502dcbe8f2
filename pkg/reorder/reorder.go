// Package reorder implements the import-rewriting core: a byte-faithful
// region partitioner, a fixed pipeline of pure region transformations, and
// the reassembly of the final file.
package reorder

import (
	"strings"

	"github.com/siyuan-infoblox/py-imports-reorder/pkg/pyimport"
)

// Options is the immutable per-run directive set consumed by the pipeline.
type Options struct {
	// ToAdd are raw import statements appended to every file.
	ToAdd []string
	// ToRemove are import statements whose identities get dropped.
	ToRemove []string
	// ToReplace is an ordered rule table; the first match per statement
	// applies.
	ToReplace []ReplaceRule
	// Classify drives first-party classification in the sorting stage.
	Classify pyimport.Settings

	SeparateRelative   bool
	SeparateFromImport bool
}

// FixContents rewrites the import block of one Python source file. Output
// is byte-identical to the input when nothing applies, and running the
// result through FixContents again is a no-op.
func FixContents(contents string, opts Options) (string, error) {
	// Work on a single canonical terminator internally so no stage has to
	// branch on line-ending style; restore the original at the very end.
	nl := mostCommonLineEnding(contents)
	normalized := strings.ReplaceAll(strings.ReplaceAll(contents, "\r\n", "\n"), "\r", "\n")

	regions, err := Partition(normalized)
	if err != nil {
		return "", err
	}

	regions = combineTrailingCode(regions)
	regions = addImports(regions, opts.ToAdd)
	regions = separateCommaImports(regions)
	regions = removeImports(regions, opts.ToRemove)
	regions = replaceImports(regions, opts.ToReplace)
	regions = removeDuplicatedImports(regions)
	regions = applyImportSorting(regions, opts)

	out := joinRegions(regions)
	if nl != "\n" {
		out = strings.ReplaceAll(out, "\n", nl)
	}
	return out, nil
}

// mostCommonLineEnding picks the majority terminator, defaulting to LF for
// files without one and on ties.
func mostCommonLineEnding(s string) string {
	crlf := strings.Count(s, "\r\n")
	cr := strings.Count(s, "\r") - crlf
	lf := strings.Count(s, "\n") - crlf

	best, bestCount := "\n", lf
	for _, candidate := range []struct {
		ending string
		count  int
	}{{"\r\n", crlf}, {"\r", cr}} {
		if candidate.count > bestCount {
			best, bestCount = candidate.ending, candidate.count
		}
	}
	return best
}
