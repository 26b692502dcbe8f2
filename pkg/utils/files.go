package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// IsPythonFile checks if a file is a Python source file
func IsPythonFile(filename string) bool {
	return strings.HasSuffix(filename, ".py")
}

// CompileExcludes compiles user-supplied exclude patterns, matched against
// slash-separated paths relative to the walk root.
func CompileExcludes(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// FindPythonFiles recursively finds all Python source files in a directory
func FindPythonFiles(root string, excludes []glob.Glob) ([]string, error) {
	var pyFiles []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		// Skip hidden directories and anything excluded (but not the root)
		if info.IsDir() && path != root {
			name := filepath.Base(path)
			if strings.HasPrefix(name, ".") || excluded(excludes, rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if IsPythonFile(filepath.Base(path)) && !excluded(excludes, rel) {
			pyFiles = append(pyFiles, path)
		}

		return nil
	})

	return pyFiles, err
}

func excluded(excludes []glob.Glob, rel string) bool {
	for _, g := range excludes {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
