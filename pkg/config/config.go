// Package config builds the immutable per-run directive set. Directive
// syntax is validated here, before the pipeline ever runs.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/siyuan-infoblox/py-imports-reorder/pkg/errors"
	"github.com/siyuan-infoblox/py-imports-reorder/pkg/pyimport"
	"github.com/siyuan-infoblox/py-imports-reorder/pkg/reorder"
)

// DefaultFileName is looked up in the working directory when no explicit
// config path is given.
const DefaultFileName = ".pir.toml"

// File is the optional TOML project configuration.
type File struct {
	AddImport                        []string `toml:"add-import"`
	RemoveImport                     []string `toml:"remove-import"`
	ReplaceImport                    []string `toml:"replace-import"`
	ApplicationDirectories           []string `toml:"application-directories"`
	UnclassifiableApplicationModules []string `toml:"unclassifiable-application-modules"`
	SeparateRelative                 bool     `toml:"separate-relative"`
	SeparateFromImport               bool     `toml:"separate-from-import"`
	Exclude                          []string `toml:"exclude"`
}

// Load reads and decodes a TOML config file.
func Load(path string) (*File, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToLoadConfig, err)
	}
	return &f, nil
}

// LoadDefault loads DefaultFileName when present; a missing file is not an
// error.
func LoadDefault() (*File, error) {
	if _, err := os.Stat(DefaultFileName); err != nil {
		return &File{}, nil
	}
	return Load(DefaultFileName)
}

// ValidateImports checks that every directive is a parseable import
// statement.
func ValidateImports(statements []string) error {
	for _, s := range statements {
		if _, err := pyimport.Parse(s); err != nil {
			return err
		}
	}
	return nil
}

// ParseReplaceRules parses an ordered list of `orig.mod=new.mod[:attr]`
// directives.
func ParseReplaceRules(specs []string) ([]reorder.ReplaceRule, error) {
	rules := make([]reorder.ReplaceRule, 0, len(specs))
	for _, s := range specs {
		rule, err := reorder.ParseReplaceRule(s)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// ModuleSet converts a module name list into the set shape used by
// classification settings.
func ModuleSet(names []string) map[string]struct{} {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}
