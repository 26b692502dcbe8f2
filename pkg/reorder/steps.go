package reorder

import (
	"fmt"
	"strings"

	"github.com/siyuan-infoblox/py-imports-reorder/pkg/errors"
	"github.com/siyuan-infoblox/py-imports-reorder/pkg/pyimport"
)

// ReplaceRule rewrites module paths of from-imports. Orig and New are
// dot-split module paths; a non-empty Attr restricts the rule to the one
// imported symbol.
type ReplaceRule struct {
	Orig []string
	New  []string
	Attr string
}

// ParseReplaceRule parses `orig.mod=new.mod` or `orig.mod=new.mod:attr`.
func ParseReplaceRule(s string) (ReplaceRule, error) {
	mods, attr, _ := strings.Cut(s, ":")
	orig, newMod, ok := strings.Cut(mods, "=")
	if !ok || orig == "" || newMod == "" {
		return ReplaceRule{}, fmt.Errorf(errors.ErrMsgExpectedReplaceImport, s)
	}
	return ReplaceRule{
		Orig: strings.Split(orig, "."),
		New:  strings.Split(newMod, "."),
		Attr: attr,
	}, nil
}

// Each pipeline step is a total function []Region -> []Region. An Import
// region whose text fails to parse (possible only on a classifier bug) is
// passed through untouched rather than failing the step.

// combineTrailingCode collapses every trailing Code/NonCode region after
// the last import or pre-import region into one Code region, so repeated
// runs cannot accumulate blank-line drift.
func combineTrailingCode(regions []Region) []Region {
	out := append([]Region(nil), regions...)
	combinable := func(k RegionKind) bool { return k != Import && k != PreImportCode }

	if len(out) == 0 || !combinable(out[len(out)-1].Kind) {
		return out
	}
	i := len(out)
	for i > 0 && combinable(out[i-1].Kind) {
		i--
	}
	var sb strings.Builder
	for _, r := range out[i:] {
		sb.WriteString(r.Text)
	}
	return append(out[:i], Region{Kind: Code, Text: sb.String()})
}

// addImports appends each caller-supplied statement as a new Import region.
// Empty or whitespace-only files are left alone.
func addImports(regions []Region, toAdd []string) []Region {
	if len(toAdd) == 0 {
		return regions
	}
	out := append([]Region(nil), regions...)
	if strings.TrimSpace(joinRegions(out)) == "" {
		return out
	}
	// Without a trailing newline the appended import would join the last
	// line.
	if last := len(out) - 1; !strings.HasSuffix(out[last].Text, "\n") {
		out[last].Text += "\n"
	}
	for _, stmt := range toAdd {
		out = append(out, Region{Kind: Import, Text: strings.TrimSpace(stmt) + "\n"})
	}
	return out
}

// separateCommaImports turns `import a, b` into `import a` and `import b`.
// The inline comment of a statement that gets split is dropped: it cannot
// be attributed to one of the names.
func separateCommaImports(regions []Region) []Region {
	var out []Region
	for _, r := range regions {
		if r.Kind != Import {
			out = append(out, r)
			continue
		}
		stmt, err := pyimport.Parse(r.Text)
		if err != nil || !stmt.HasMultiple() {
			out = append(out, r)
			continue
		}
		for _, part := range stmt.Split() {
			out = append(out, Region{Kind: Import, Text: part.Text()})
		}
	}
	return out
}

// removeImports drops Import regions matching the removal directives. Each
// directive is itself split first, so `import a, b` removes both names.
func removeImports(regions []Region, toRemove []string) []Region {
	if len(toRemove) == 0 {
		return regions
	}
	remove := make(map[pyimport.Descriptor]struct{})
	for _, s := range toRemove {
		stmt, err := pyimport.Parse(s)
		if err != nil {
			continue
		}
		for _, d := range stmt.Descriptors() {
			remove[d] = struct{}{}
		}
	}

	var out []Region
	for _, r := range regions {
		if r.Kind == Import {
			if stmt, err := pyimport.Parse(r.Text); err == nil && !stmt.HasMultiple() {
				if _, drop := remove[stmt.Descriptor()]; drop {
					continue
				}
			}
		}
		out = append(out, r)
	}
	return out
}

// replaceImports rewrites module paths of from-imports per the ordered rule
// table; the first matching rule wins. Plain `import a.b` statements are
// never rewritten: renaming a dotted import's tail changes which name gets
// bound, so those regions are skipped rather than broken.
func replaceImports(regions []Region, rules []ReplaceRule) []Region {
	if len(rules) == 0 {
		return regions
	}
	var out []Region
	for _, r := range regions {
		if r.Kind != Import {
			out = append(out, r)
			continue
		}
		stmt, err := pyimport.Parse(r.Text)
		if err != nil || stmt.Kind != pyimport.FromImport || stmt.HasMultiple() {
			out = append(out, r)
			continue
		}

		modParts := strings.Split(stmt.Module, ".")
		symbol := stmt.Names[0].Name
		asname := stmt.Names[0].Asname

		replaced := r
		for _, rule := range rules {
			if (rule.Attr == symbol && pathsEqual(modParts, rule.Orig)) ||
				(rule.Attr == "" && pathStartsWith(modParts, rule.Orig)) {
				newParts := append(append([]string(nil), rule.New...), modParts[len(rule.Orig):]...)
				newStmt := &pyimport.Stmt{
					Kind:   pyimport.FromImport,
					Module: strings.Join(newParts, "."),
					Names:  stmt.Names,
				}
				replaced = Region{Kind: Import, Text: newStmt.Text()}
				break
			}
			// from x.y import z => import z
			if rule.Attr == "" && len(rule.New) == 1 &&
				pathsEqual(append(append([]string(nil), modParts...), symbol), rule.Orig) {
				newStmt := &pyimport.Stmt{
					Kind:  pyimport.PlainImport,
					Names: []pyimport.Binding{{Name: rule.New[0], Asname: asname}},
				}
				replaced = Region{Kind: Import, Text: newStmt.Text()}
				break
			}
		}
		out = append(out, replaced)
	}
	return out
}

func pathsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	return pathStartsWith(a, b)
}

func pathStartsWith(parts, prefix []string) bool {
	if len(prefix) > len(parts) {
		return false
	}
	for i := range prefix {
		if parts[i] != prefix[i] {
			return false
		}
	}
	return true
}

// removeDuplicatedImports drops exact duplicates (first occurrence wins)
// and plain imports made redundant by a dotted submodule import elsewhere
// in the file, in either order. Aliased statements are exempt from the
// redundancy rule: `import os.path` does not imply the `os_path` binding of
// `import os.path as os_path`.
func removeDuplicatedImports(regions []Region) []Region {
	seen := make(map[pyimport.Descriptor]struct{})
	impliedModules := make(map[string]struct{})
	var unique []Region

	for _, r := range regions {
		if r.Kind != Import {
			unique = append(unique, r)
			continue
		}
		stmt, err := pyimport.Parse(r.Text)
		if err != nil || stmt.HasMultiple() {
			unique = append(unique, r)
			continue
		}
		desc := stmt.Descriptor()
		if _, dup := seen[desc]; dup {
			continue
		}
		seen[desc] = struct{}{}
		if desc.Kind == pyimport.PlainImport && desc.Asname == "" {
			for _, parent := range parentModules(desc.Module) {
				impliedModules[parent] = struct{}{}
			}
		}
		unique = append(unique, r)
	}

	var out []Region
	for _, r := range unique {
		if r.Kind == Import {
			if stmt, err := pyimport.Parse(r.Text); err == nil && !stmt.HasMultiple() {
				desc := stmt.Descriptor()
				if desc.Kind == pyimport.PlainImport && desc.Asname == "" {
					if _, implied := impliedModules[desc.Module]; implied {
						continue
					}
				}
			}
		}
		out = append(out, r)
	}
	return out
}

// parentModules returns every module bound as a side effect of importing a
// dotted module: "a.b.c" -> ["a", "a.b"].
func parentModules(module string) []string {
	parts := strings.Split(module, ".")
	out := make([]string, 0, len(parts)-1)
	for i := 1; i < len(parts); i++ {
		out = append(out, strings.Join(parts[:i], "."))
	}
	return out
}
