package reorder

import (
	"sort"
	"strings"

	"github.com/siyuan-infoblox/py-imports-reorder/pkg/pyimport"
)

// blockOrder is the output order of import blocks.
var blockOrder = []pyimport.Classification{
	pyimport.Future,
	pyimport.Stdlib,
	pyimport.ThirdParty,
	pyimport.Application,
}

type sortEntry struct {
	desc   pyimport.Descriptor
	region Region
}

// applyImportSorting re-emits the import block in canonical grouped order:
// pre-import regions unchanged, then one sorted block per classification
// separated by single blank lines, then the combined trailing code.
// Whitespace regions between imports are dropped. With SeparateRelative,
// explicit-relative imports move to their own final block; with
// SeparateFromImport, a blank line also separates plain imports from
// from-imports inside each block.
func applyImportSorting(regions []Region, opts Options) []Region {
	var preImport, rest []Region
	var entries []sortEntry
	for _, r := range regions {
		switch r.Kind {
		case PreImportCode:
			preImport = append(preImport, r)
		case Code:
			rest = append(rest, r)
		case NonCode:
			// separator whitespace between imports is regenerated
		case Import:
			if !strings.HasSuffix(r.Text, "\n") {
				r.Text += "\n"
			}
			stmt, err := pyimport.Parse(r.Text)
			if err != nil || stmt.HasMultiple() {
				rest = append(rest, r)
				continue
			}
			entries = append(entries, sortEntry{desc: stmt.Descriptor(), region: r})
		}
	}

	blocks := make(map[pyimport.Classification][]sortEntry)
	for _, e := range entries {
		class := pyimport.Classify(e.desc.Module, opts.Classify)
		blocks[class] = append(blocks[class], e)
	}

	var newImports, relativeImports []Region
	for _, class := range blockOrder {
		block := blocks[class]
		sort.SliceStable(block, func(i, j int) bool {
			return block[i].desc.Less(block[j].desc)
		})

		emitted := false
		var lastKind pyimport.Kind
		for _, e := range block {
			if opts.SeparateRelative && e.desc.IsRelative() {
				relativeImports = append(relativeImports, e.region)
				continue
			}
			if opts.SeparateFromImport && emitted && lastKind != e.desc.Kind {
				newImports = append(newImports, Region{Kind: NonCode, Text: "\n"})
			}
			lastKind = e.desc.Kind
			emitted = true
			newImports = append(newImports, e.region)
		}
		// A block that only held relative imports must not leave a stray
		// blank line behind.
		if emitted {
			newImports = append(newImports, Region{Kind: NonCode, Text: "\n"})
		}
	}

	if len(relativeImports) > 0 {
		relativeImports = append([]Region{{Kind: NonCode, Text: "\n"}}, relativeImports...)
	}
	if len(newImports) > 0 {
		newImports = newImports[:len(newImports)-1]
	}

	// Whitespace that used to pad the import block may now lead the rest of
	// the code; keep the leading padding but normalize the tail to one
	// newline.
	restSrc := strings.TrimRight(joinRegions(rest), " \t\n\v\f\r")
	rest = nil
	if restSrc != "" {
		rest = []Region{{Kind: Code, Text: restSrc + "\n"}}
	}

	out := make([]Region, 0, len(preImport)+len(newImports)+len(relativeImports)+len(rest))
	out = append(out, preImport...)
	out = append(out, newImports...)
	out = append(out, relativeImports...)
	out = append(out, rest...)
	return out
}
