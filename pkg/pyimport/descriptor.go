package pyimport

import "strings"

// Descriptor is the semantic identity of one import binding, independent of
// source formatting. It is comparable and usable as a map key, so byte-wise
// different restatements of the same import collapse under deduplication.
type Descriptor struct {
	Kind   Kind
	Module string // plain: the imported module path; from: the source module
	Symbol string // from-imports only; "*" for wildcard imports
	Asname string
}

// IsRelative reports whether the import is explicit-relative
// (`from . import x`, `from ..pkg import y`).
func (d Descriptor) IsRelative() bool {
	return strings.HasPrefix(d.Module, ".")
}

// IsWildcard reports whether the import is `from module import *`.
func (d Descriptor) IsWildcard() bool {
	return d.Kind == FromImport && d.Symbol == "*"
}

// Stmt converts the descriptor back into a single-binding statement.
func (d Descriptor) Stmt() *Stmt {
	if d.Kind == PlainImport {
		return &Stmt{Kind: PlainImport, Names: []Binding{{Name: d.Module, Asname: d.Asname}}}
	}
	return &Stmt{Kind: FromImport, Module: d.Module, Names: []Binding{{Name: d.Symbol, Asname: d.Asname}}}
}

// Text renders the descriptor as a canonical statement with a trailing
// newline.
func (d Descriptor) Text() string {
	return d.Stmt().Text()
}

// Less orders descriptors for sorted output: plain imports before
// from-imports, then case-insensitively by module, symbol, and alias, with
// a case-sensitive tiebreak so ordering stays total and deterministic.
func (d Descriptor) Less(other Descriptor) bool {
	a, b := d.sortKey(), other.sortKey()
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func (d Descriptor) sortKey() [7]string {
	rank := "0"
	if d.Kind == FromImport {
		rank = "1"
	}
	return [7]string{
		rank,
		strings.ToLower(d.Module), strings.ToLower(d.Symbol), strings.ToLower(d.Asname),
		d.Module, d.Symbol, d.Asname,
	}
}
