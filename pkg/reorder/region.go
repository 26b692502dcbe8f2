package reorder

import "strings"

// RegionKind classifies a span of source text for import refactoring.
type RegionKind int

const (
	// PreImportCode is material that must stay before the import block:
	// shebang lines, coding pragmas, leading comments, the module docstring.
	PreImportCode RegionKind = iota
	// Import is one complete top-level import statement, including its
	// continuation lines and trailing inline comment.
	Import
	// NonCode is a single blank (whitespace-only) line.
	NonCode
	// Code is everything else; once real code starts it runs to EOF.
	Code
)

func (k RegionKind) String() string {
	switch k {
	case PreImportCode:
		return "pre_import_code"
	case Import:
		return "import"
	case NonCode:
		return "non_code"
	default:
		return "code"
	}
}

// Region is a classified, exactly-reproducible span of source text. The
// ordered concatenation of all regions of a file equals the file.
type Region struct {
	Kind RegionKind
	Text string
}

// joinRegions reassembles region texts in order.
func joinRegions(regions []Region) string {
	var sb strings.Builder
	for _, r := range regions {
		sb.WriteString(r.Text)
	}
	return sb.String()
}
