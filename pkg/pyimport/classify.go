package pyimport

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/siyuan-infoblox/py-imports-reorder/pkg/pystd"
)

// Classification identifies which import block a module sorts into. The
// declaration order is the block output order.
type Classification int

const (
	Future Classification = iota
	Stdlib
	ThirdParty
	Application
)

func (c Classification) String() string {
	switch c {
	case Future:
		return "future"
	case Stdlib:
		return "stdlib"
	case ThirdParty:
		return "third-party"
	default:
		return "application"
	}
}

// Settings configures first-party classification.
type Settings struct {
	// ApplicationDirectories are top-level directories probed for a module
	// with a filesystem representation. Defaults to the current directory.
	ApplicationDirectories []string
	// UnclassifiableApplicationModules names first-party modules without a
	// filesystem representation, e.g. native extensions.
	UnclassifiableApplicationModules map[string]struct{}
}

// Classify determines the block for a module path. Explicit-relative
// modules are always application code.
func Classify(module string, settings Settings) Classification {
	if module == "__future__" {
		return Future
	}
	if strings.HasPrefix(module, ".") {
		return Application
	}

	base := module
	if i := strings.IndexByte(module, '.'); i >= 0 {
		base = module[:i]
	}

	if _, ok := settings.UnclassifiableApplicationModules[base]; ok {
		return Application
	}
	if pystd.IsStandardModule(base) {
		return Stdlib
	}

	dirs := settings.ApplicationDirectories
	if len(dirs) == 0 {
		dirs = []string{"."}
	}
	for _, dir := range dirs {
		if moduleExistsIn(dir, base) {
			return Application
		}
	}
	return ThirdParty
}

// moduleExistsIn reports whether base is importable from dir as a package
// directory or a single-file module.
func moduleExistsIn(dir, base string) bool {
	if info, err := os.Stat(filepath.Join(dir, base)); err == nil && info.IsDir() {
		return true
	}
	if _, err := os.Stat(filepath.Join(dir, base+".py")); err == nil {
		return true
	}
	return false
}
