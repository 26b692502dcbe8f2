// Package fixer applies the reorder pipeline to files, directories, and
// stdin, and handles reporting and in-place rewriting.
package fixer

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/gobwas/glob"

	"github.com/siyuan-infoblox/py-imports-reorder/pkg/diff"
	"github.com/siyuan-infoblox/py-imports-reorder/pkg/errors"
	"github.com/siyuan-infoblox/py-imports-reorder/pkg/reorder"
	"github.com/siyuan-infoblox/py-imports-reorder/pkg/utils"
)

type Config struct {
	Options  reorder.Options // rewrite directives, passed into every file
	DiffOnly bool            // report a unified diff instead of rewriting
	Quiet    bool            // suppress per-file success messages
	Exclude  []string        // glob patterns skipped during directory walks
}

// fixer applies the pipeline and tracks whether anything changed
type fixer struct {
	config   Config
	excludes []glob.Glob
	changed  bool
}

// New creates a new fixer, compiling the exclude patterns up front
func New(config Config) (*fixer, error) {
	excludes, err := utils.CompileExcludes(config.Exclude)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgInvalidExcludePattern, err)
	}
	return &fixer{config: config, excludes: excludes}, nil
}

// Changed reports whether any processed input required rewriting.
func (f *fixer) Changed() bool {
	return f.changed
}

// ProcessStdin rewrites one file read from r and always prints the result.
func (f *fixer) ProcessStdin(r io.Reader, w io.Writer) error {
	contents, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadStdin, err)
	}
	if !utf8.Valid(contents) {
		return fmt.Errorf(errors.ErrMsgFileNotUTF8, "-")
	}

	newContents, err := reorder.FixContents(string(contents), f.config.Options)
	if err != nil {
		return err
	}
	if newContents != string(contents) {
		f.changed = true
	}
	_, err = io.WriteString(w, newContents)
	return err
}

// ProcessFile rewrites a single file in place (or reports its diff).
func (f *fixer) ProcessFile(path string) error {
	contents, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
	}
	if !utf8.Valid(contents) {
		return fmt.Errorf(errors.ErrMsgFileNotUTF8, path)
	}

	newContents, err := reorder.FixContents(string(contents), f.config.Options)
	if err != nil {
		return err
	}
	if newContents == string(contents) {
		return nil
	}
	f.changed = true

	if f.config.DiffOnly {
		fmt.Print(diff.Unified(string(contents), newContents, path))
		return nil
	}
	if !f.config.Quiet {
		fmt.Printf(errors.InfoMsgReordering+"\n", path)
	}
	if err := os.WriteFile(path, []byte(newContents), 0644); err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
	}
	return nil
}

// ProcessFiles processes multiple Python source files
func (f *fixer) ProcessFiles(paths []string) error {
	errorCount := 0
	for _, path := range paths {
		if err := f.ProcessFile(path); err != nil {
			fmt.Fprintf(os.Stderr, errors.InfoMsgErrorProcessing+"\n", path, err)
			errorCount++
		}
	}
	if errorCount > 0 {
		return fmt.Errorf(errors.ErrMsgFilesFailedToProcess, errorCount)
	}
	return nil
}

// ProcessPath processes a file or directory path
func (f *fixer) ProcessPath(path string) error {
	isDir, err := utils.IsDirectory(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
	}

	if !isDir {
		return f.ProcessFile(path)
	}

	pyFiles, err := utils.FindPythonFiles(path, f.excludes)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToFindPyFiles, err)
	}
	if len(pyFiles) == 0 {
		fmt.Printf(errors.InfoMsgNoPyFilesFound+"\n", path)
		return nil
	}
	return f.ProcessFiles(pyFiles)
}
