// Package rules carries the version-keyed directive tables: obsolete
// __future__ imports per minimum-Python level and the six rewrite tables.
// All of it is immutable data loaded into the run configuration; nothing
// here is consulted at pipeline time.
package rules

import "strings"

// FutureFeature names the __future__ features made obsolete by a minimum
// Python version.
type FutureFeature struct {
	Version  string // flag suffix, e.g. "py3" for --py3-plus
	Removals []string
}

// FutureImports is ordered oldest to newest; requesting a version implies
// every older entry.
var FutureImports = []FutureFeature{
	{Version: "py22", Removals: []string{"nested_scopes"}},
	{Version: "py23", Removals: []string{"generators"}},
	{Version: "py26", Removals: []string{"with_statement"}},
	{Version: "py3", Removals: []string{"division", "absolute_import", "print_function", "unicode_literals"}},
	{Version: "py37", Removals: []string{"generator_stop"}},
}

// FutureRemovals returns the removal directives implied by the newest
// requested version. enabled maps version name to whether its flag was set.
func FutureRemovals(enabled map[string]bool) []string {
	implied := false
	var features []string
	for i := len(FutureImports) - 1; i >= 0; i-- {
		entry := FutureImports[i]
		implied = implied || enabled[entry.Version]
		if implied {
			features = append(features, entry.Removals...)
		}
	}
	if len(features) == 0 {
		return nil
	}
	return []string{"from __future__ import " + strings.Join(features, ", ")}
}

// IsPy3 reports whether any py3-or-newer version flag is enabled.
func IsPy3(enabled map[string]bool) bool {
	for _, entry := range FutureImports {
		if strings.HasPrefix(entry.Version, "py3") && enabled[entry.Version] {
			return true
		}
	}
	return false
}
