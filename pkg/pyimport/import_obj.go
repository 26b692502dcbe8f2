// Package pyimport models the semantic identity of Python import
// statements: parsing, canonical re-serialization, equality, and the total
// order used for sorted output.
package pyimport

import (
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"

	"github.com/siyuan-infoblox/py-imports-reorder/pkg/errors"
)

// Kind distinguishes `import a` statements from `from a import b` ones.
type Kind int

const (
	PlainImport Kind = iota
	FromImport
)

// Binding is one imported name with its optional alias.
type Binding struct {
	Name   string
	Asname string
}

// Stmt is one parsed import statement. A single source statement may bind
// several names (`import a, b` or `from m import a, b`); Split turns it
// into single-binding statements.
type Stmt struct {
	Kind   Kind
	Module string // from-imports only; keeps leading dots for relative imports
	Names  []Binding
}

// Parse parses one Python import statement, tolerating inline comments,
// parenthesized name lists, and line continuations. Anything that is not a
// single well-formed import statement is an error.
func Parse(src string) (*Stmt, error) {
	source := []byte(src)
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(sitter.NewLanguage(tree_sitter_python.Language()))

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf(errors.ErrMsgExpectedImport, src)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf(errors.ErrMsgExpectedImport, src)
	}

	var node *sitter.Node
	count := root.NamedChildCount()
	for i := uint(0); i < count; i++ {
		child := root.NamedChild(i)
		switch child.Kind() {
		case "comment":
			continue
		case "import_statement", "import_from_statement", "future_import_statement":
			if node != nil {
				return nil, fmt.Errorf(errors.ErrMsgExpectedImport, src)
			}
			node = child
		default:
			return nil, fmt.Errorf(errors.ErrMsgExpectedImport, src)
		}
	}
	if node == nil {
		return nil, fmt.Errorf(errors.ErrMsgExpectedImport, src)
	}

	var stmt *Stmt
	if node.Kind() == "import_statement" {
		stmt = parsePlain(node, source)
	} else {
		stmt = parseFrom(node, source)
	}
	if len(stmt.Names) == 0 {
		return nil, fmt.Errorf(errors.ErrMsgExpectedImport, src)
	}
	return stmt, nil
}

func parsePlain(node *sitter.Node, source []byte) *Stmt {
	stmt := &Stmt{Kind: PlainImport}
	count := node.NamedChildCount()
	for i := uint(0); i < count; i++ {
		child := node.NamedChild(i)
		switch child.Kind() {
		case "dotted_name", "identifier":
			stmt.Names = append(stmt.Names, Binding{Name: child.Utf8Text(source)})
		case "aliased_import":
			stmt.Names = append(stmt.Names, aliasedBinding(child, source))
		}
	}
	return stmt
}

func parseFrom(node *sitter.Node, source []byte) *Stmt {
	stmt := &Stmt{Kind: FromImport}
	if node.Kind() == "future_import_statement" {
		stmt.Module = "__future__"
	}

	count := node.NamedChildCount()
	for i := uint(0); i < count; i++ {
		child := node.NamedChild(i)
		switch child.Kind() {
		case "relative_import":
			stmt.Module = child.Utf8Text(source)
		case "dotted_name", "identifier":
			if stmt.Module == "" {
				stmt.Module = child.Utf8Text(source)
			} else {
				stmt.Names = append(stmt.Names, Binding{Name: child.Utf8Text(source)})
			}
		case "aliased_import":
			stmt.Names = append(stmt.Names, aliasedBinding(child, source))
		case "wildcard_import":
			stmt.Names = append(stmt.Names, Binding{Name: "*"})
		}
	}
	return stmt
}

func aliasedBinding(node *sitter.Node, source []byte) Binding {
	b := Binding{}
	if name := node.ChildByFieldName("name"); name != nil {
		b.Name = name.Utf8Text(source)
	}
	if alias := node.ChildByFieldName("alias"); alias != nil {
		b.Asname = alias.Utf8Text(source)
	}
	return b
}

// HasMultiple reports whether the statement binds more than one name.
func (s *Stmt) HasMultiple() bool {
	return len(s.Names) > 1
}

// Split returns one single-binding statement per imported name.
func (s *Stmt) Split() []*Stmt {
	out := make([]*Stmt, 0, len(s.Names))
	for _, name := range s.Names {
		out = append(out, &Stmt{Kind: s.Kind, Module: s.Module, Names: []Binding{name}})
	}
	return out
}

// Descriptors returns the semantic identity of every name the statement
// binds.
func (s *Stmt) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(s.Names))
	for _, name := range s.Names {
		d := Descriptor{Kind: s.Kind, Asname: name.Asname}
		if s.Kind == PlainImport {
			d.Module = name.Name
		} else {
			d.Module = s.Module
			d.Symbol = name.Name
		}
		out = append(out, d)
	}
	return out
}

// Descriptor returns the identity of a single-binding statement.
func (s *Stmt) Descriptor() Descriptor {
	return s.Descriptors()[0]
}

// Text renders the statement in canonical form with a trailing newline.
// Inline comments and original whitespace are not preserved.
func (s *Stmt) Text() string {
	parts := make([]string, 0, len(s.Names))
	for _, name := range s.Names {
		if name.Asname != "" {
			parts = append(parts, name.Name+" as "+name.Asname)
		} else {
			parts = append(parts, name.Name)
		}
	}
	if s.Kind == PlainImport {
		return "import " + strings.Join(parts, ", ") + "\n"
	}
	return "from " + s.Module + " import " + strings.Join(parts, ", ") + "\n"
}
