package reorder

import (
	goerrors "errors"
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"

	"github.com/siyuan-infoblox/py-imports-reorder/pkg/errors"
)

// noreorderMarker freezes everything from the comment containing it to EOF.
const noreorderMarker = "noreorder"

// ErrRegionMismatch reports that the partitioned regions do not reassemble
// into the original source. It signals a classifier bug, not a user error.
var ErrRegionMismatch = goerrors.New("partitioned regions do not reproduce the source")

// Partition splits Python source into classified regions. The concatenation
// of the returned regions' text is guaranteed to equal src exactly.
//
// The scan is intentionally timid: once it reaches a top-level statement
// that is not an import, a comment, a blank line, or the leading docstring,
// the remainder of the file becomes a single Code region. Imports nested in
// conditionals or appearing after real code are left alone on purpose.
func Partition(src string) ([]Region, error) {
	if src == "" {
		return nil, nil
	}

	source := []byte(src)
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(sitter.NewLanguage(tree_sitter_python.Language()))

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("%s", errors.ErrMsgFailedToParseFile)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("%s", errors.ErrMsgFailedToParseFile)
	}

	p := &partitioner{
		src:         src,
		noreorderAt: firstNoreorderOffset(root, source),
	}
	regions := p.run(root, source)

	if joinRegions(regions) != src {
		return nil, ErrRegionMismatch
	}
	return regions, nil
}

type partitioner struct {
	src         string
	startPos    int
	noreorderAt int // byte offset of the first noreorder comment, -1 if none

	seenImport    bool
	seenDocstring bool

	regions []Region
}

func (p *partitioner) run(root *sitter.Node, source []byte) []Region {
	count := root.ChildCount()
	for i := uint(0); i < count; i++ {
		child := root.Child(i)
		start := int(child.StartByte())
		if start < p.startPos {
			// Consumed by a previous region (trailing comment, second
			// statement on the same line).
			continue
		}
		p.flushBlankLines(p.lineStart(start))

		var halted bool
		switch child.Kind() {
		case "comment":
			kind := Code
			if !p.seenImport {
				kind = PreImportCode
			}
			halted = p.emit(kind, p.endOfLine(int(child.EndByte())))
		case "import_statement", "import_from_statement", "future_import_statement":
			if child.StartPosition().Column != 0 {
				halted = p.codeToEOF()
				break
			}
			p.seenImport = true
			halted = p.emit(Import, p.endOfLine(int(child.EndByte())))
		default:
			if p.isDocstring(child) {
				p.seenDocstring = true
				halted = p.emit(PreImportCode, p.endOfLine(int(child.EndByte())))
				break
			}
			halted = p.codeToEOF()
		}
		if halted {
			break
		}
	}
	p.flushBlankLines(len(p.src))
	return p.regions
}

// isDocstring reports whether node is the module docstring: the first
// string-literal expression statement before any import. A second string
// literal is ordinary code.
func (p *partitioner) isDocstring(node *sitter.Node) bool {
	if node.Kind() != "expression_statement" || p.seenImport || p.seenDocstring ||
		node.NamedChildCount() != 1 {
		return false
	}
	kind := node.NamedChild(0).Kind()
	return kind == "string" || kind == "concatenated_string"
}

// emit appends a region from the current position through end. If the span
// contains a noreorder comment the remainder of the file is frozen instead.
// Returns true when the scan should stop.
func (p *partitioner) emit(kind RegionKind, end int) bool {
	if p.noreorderAt >= 0 && p.noreorderAt < end {
		return p.codeToEOF()
	}
	if end > p.startPos {
		p.regions = append(p.regions, Region{Kind: kind, Text: p.src[p.startPos:end]})
		p.startPos = end
	}
	return false
}

func (p *partitioner) codeToEOF() bool {
	if p.startPos < len(p.src) {
		p.regions = append(p.regions, Region{Kind: Code, Text: p.src[p.startPos:]})
		p.startPos = len(p.src)
	}
	return true
}

// flushBlankLines emits one NonCode region per whitespace line between the
// current position and limit. A trailing partial line (the indentation of
// the next region, or whitespace at EOF without a newline) is emitted only
// when limit is EOF.
func (p *partitioner) flushBlankLines(limit int) {
	for p.startPos < limit {
		nl := strings.IndexByte(p.src[p.startPos:limit], '\n')
		if nl < 0 {
			p.regions = append(p.regions, Region{Kind: NonCode, Text: p.src[p.startPos:limit]})
			p.startPos = limit
			return
		}
		end := p.startPos + nl + 1
		p.regions = append(p.regions, Region{Kind: NonCode, Text: p.src[p.startPos:end]})
		p.startPos = end
	}
}

func (p *partitioner) lineStart(pos int) int {
	return strings.LastIndexByte(p.src[:pos], '\n') + 1
}

func (p *partitioner) endOfLine(pos int) int {
	idx := strings.IndexByte(p.src[pos:], '\n')
	if idx < 0 {
		return len(p.src)
	}
	return pos + idx + 1
}

// firstNoreorderOffset finds the earliest comment containing the noreorder
// marker anywhere in the tree, including comments nested inside statements.
func firstNoreorderOffset(node *sitter.Node, source []byte) int {
	if node.Kind() == "comment" {
		if strings.Contains(node.Utf8Text(source), noreorderMarker) {
			return int(node.StartByte())
		}
		return -1
	}
	count := node.ChildCount()
	for i := uint(0); i < count; i++ {
		if off := firstNoreorderOffset(node.Child(i), source); off >= 0 {
			return off
		}
	}
	return -1
}
