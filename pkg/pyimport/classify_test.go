package pyimport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	appRoot := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(appRoot, "myapp"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(appRoot, "single.py"), []byte("x = 1\n"), 0644))

	settings := Settings{
		ApplicationDirectories: []string{appRoot},
		UnclassifiableApplicationModules: map[string]struct{}{
			"_native": {},
		},
	}

	tests := []struct {
		name     string
		module   string
		expected Classification
	}{
		{
			name:     "future",
			module:   "__future__",
			expected: Future,
		},
		{
			name:     "stdlib",
			module:   "os",
			expected: Stdlib,
		},
		{
			name:     "dotted stdlib",
			module:   "os.path",
			expected: Stdlib,
		},
		{
			name:     "third party",
			module:   "requests",
			expected: ThirdParty,
		},
		{
			name:     "application package directory",
			module:   "myapp",
			expected: Application,
		},
		{
			name:     "application submodule",
			module:   "myapp.utils.helpers",
			expected: Application,
		},
		{
			name:     "application single-file module",
			module:   "single",
			expected: Application,
		},
		{
			name:     "explicit relative",
			module:   ".main",
			expected: Application,
		},
		{
			name:     "bare dot",
			module:   ".",
			expected: Application,
		},
		{
			name:     "unclassifiable application module",
			module:   "_native",
			expected: Application,
		},
		{
			name:     "unclassifiable wins over filesystem probe",
			module:   "_native.ext",
			expected: Application,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.New(t).Equal(tt.expected, Classify(tt.module, settings))
		})
	}
}

func TestClassifyDefaultsToCurrentDirectory(t *testing.T) {
	req := require.New(t)

	// with no directories configured the probe runs against "."; nothing
	// here looks like a Python package, so unknown modules are third-party
	req.Equal(ThirdParty, Classify("definitely_not_here", Settings{}))
	req.Equal(Stdlib, Classify("json", Settings{}))
}

func TestClassificationString(t *testing.T) {
	req := require.New(t)

	req.Equal("future", Future.String())
	req.Equal("stdlib", Stdlib.String())
	req.Equal("third-party", ThirdParty.String())
	req.Equal("application", Application.String())
}
