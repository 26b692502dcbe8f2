package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/siyuan-infoblox/py-imports-reorder/pkg/config"
	"github.com/siyuan-infoblox/py-imports-reorder/pkg/errors"
	"github.com/siyuan-infoblox/py-imports-reorder/pkg/fixer"
	"github.com/siyuan-infoblox/py-imports-reorder/pkg/pyimport"
	"github.com/siyuan-infoblox/py-imports-reorder/pkg/reorder"
	"github.com/siyuan-infoblox/py-imports-reorder/pkg/rules"
	"github.com/siyuan-infoblox/py-imports-reorder/pkg/version"
)

const (
	UseDescription   = "pir [flags] [PATH ...]"
	ShortDescription = "Python imports reorder - A tool to rewrite Python import blocks"
	LongDescription  = `pir is a command-line tool that rewrites the import block of Python
source files.

It splits combined imports, adds, removes, and replaces imports per
directives, deduplicates, and regroups them into sorted blocks:
1. __future__ imports
2. Python standard library
3. Third-party packages
4. Application packages (configurable via --application-directories)

PATH can be a single Python file, a directory (processed recursively), or
"-" to filter stdin to stdout. Files are rewritten in place; exit status is
1 when any file changed.`
)

var (
	diffOnly              bool
	quiet                 bool
	exitZeroEvenIfChanged bool
	addImports            []string
	removeImports         []string
	replaceImports        []string
	applicationDirs       string
	unclassifiableModules []string
	separateRelative      bool
	separateFromImport    bool
	excludePatterns       []string
	configPath            string
	showVersion           bool
	versionStr            string

	pyPlus = make(map[string]*bool)

	exitStatus int
)

var rootCmd = &cobra.Command{
	Use:          UseDescription,
	Short:        ShortDescription,
	Long:         LongDescription,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&diffOnly, "diff-only", false, "Show unified diff instead of applying reordering")
	flags.BoolVar(&quiet, "quiet", false, "Do not print user messages on success")
	flags.BoolVar(&exitZeroEvenIfChanged, "exit-zero-even-if-changed", false, "Exit with 0 even when files changed")
	flags.StringArrayVar(&addImports, "add-import", nil, "Import to add to each file. Can be specified multiple times")
	flags.StringArrayVar(&removeImports, "remove-import", nil, "Import to remove from each file. Can be specified multiple times")
	flags.StringArrayVar(&replaceImports, "replace-import", nil, "Module pair to replace, orig.mod=new.mod or orig.mod=new.mod:attr. Can be specified multiple times")
	flags.StringVar(&applicationDirs, "application-directories", ".", "Colon separated directories considered top-level application directories")
	flags.StringSliceVar(&unclassifiableModules, "unclassifiable-application-modules", nil, "Application modules without a filesystem representation (e.g. native extensions)")
	flags.BoolVar(&separateRelative, "separate-relative", false, "Separate explicit relative (from . import ...) imports into their own block")
	flags.BoolVar(&separateFromImport, "separate-from-import", false, "Separate from-imports from plain imports with a blank line")
	flags.StringSliceVar(&excludePatterns, "exclude", nil, "Glob patterns excluded during directory walks")
	flags.StringVar(&configPath, "config", "", "Path to a TOML config file (default "+config.DefaultFileName+" when present)")
	flags.BoolVarP(&showVersion, "version", "v", false, "Show version information")

	prev := ""
	for _, entry := range rules.FutureImports {
		enabled := new(bool)
		pyPlus[entry.Version] = enabled
		help := fmt.Sprintf("Remove obsolete future imports (%s)", strings.Join(entry.Removals, ", "))
		if prev != "" {
			help += ". implies all older --pyXX-plus flags"
		}
		flags.BoolVar(enabled, entry.Version+"-plus", false, help)
		prev = entry.Version
	}
}

func run(cmd *cobra.Command, args []string) error {
	if showVersion {
		info := version.Get()
		if info.Version == "dev" && versionStr != "" {
			info.Version = versionStr
		}
		fmt.Println(info.String())
		return nil
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	f, err := fixer.New(*cfg)
	if err != nil {
		return err
	}

	failed := false
	for _, path := range args {
		if path == "-" {
			err = f.ProcessStdin(os.Stdin, os.Stdout)
		} else {
			err = f.ProcessPath(path)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, errors.InfoMsgErrorProcessing+"\n", path, err)
			failed = true
		}
	}

	if failed || (f.Changed() && !exitZeroEvenIfChanged) {
		exitStatus = 1
	}
	return nil
}

// buildConfig merges the optional TOML file with the flag surface and the
// generated rule tables into one validated run configuration.
func buildConfig(cmd *cobra.Command) (*fixer.Config, error) {
	var file *config.File
	var err error
	if configPath != "" {
		file, err = config.Load(configPath)
	} else {
		file, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	toAdd := append(append([]string(nil), file.AddImport...), addImports...)
	toRemove := append(append([]string(nil), file.RemoveImport...), removeImports...)
	replaceSpecs := append(append([]string(nil), file.ReplaceImport...), replaceImports...)

	enabled := make(map[string]bool, len(pyPlus))
	for version, flag := range pyPlus {
		enabled[version] = *flag
	}
	toRemove = append(toRemove, rules.FutureRemovals(enabled)...)
	if rules.IsPy3(enabled) {
		toRemove = append(toRemove, rules.SixRemovals...)
		replaceSpecs = append(replaceSpecs, rules.SixRenames...)
	}

	if err := config.ValidateImports(toAdd); err != nil {
		return nil, err
	}
	if err := config.ValidateImports(toRemove); err != nil {
		return nil, err
	}
	toReplace, err := config.ParseReplaceRules(replaceSpecs)
	if err != nil {
		return nil, err
	}

	appDirs := strings.Split(applicationDirs, ":")
	if !cmd.Flags().Changed("application-directories") && len(file.ApplicationDirectories) > 0 {
		appDirs = file.ApplicationDirectories
	}

	return &fixer.Config{
		Options: reorder.Options{
			ToAdd:     toAdd,
			ToRemove:  toRemove,
			ToReplace: toReplace,
			Classify: pyimport.Settings{
				ApplicationDirectories:           appDirs,
				UnclassifiableApplicationModules: config.ModuleSet(append(file.UnclassifiableApplicationModules, unclassifiableModules...)),
			},
			SeparateRelative:   separateRelative || file.SeparateRelative,
			SeparateFromImport: separateFromImport || file.SeparateFromImport,
		},
		DiffOnly: diffOnly,
		Quiet:    quiet,
		Exclude:  append(file.Exclude, excludePatterns...),
	}, nil
}

func Execute(version string) int {
	versionStr = version
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return exitStatus
}
