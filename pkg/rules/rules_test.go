package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFutureRemovals(t *testing.T) {
	tests := []struct {
		name     string
		enabled  map[string]bool
		expected []string
	}{
		{
			name:     "nothing enabled",
			enabled:  map[string]bool{},
			expected: nil,
		},
		{
			name:    "oldest version only removes its own features",
			enabled: map[string]bool{"py22": true},
			expected: []string{
				"from __future__ import nested_scopes",
			},
		},
		{
			name:    "py26 implies the older versions",
			enabled: map[string]bool{"py26": true},
			expected: []string{
				"from __future__ import with_statement, generators, nested_scopes",
			},
		},
		{
			name:    "py37 implies everything",
			enabled: map[string]bool{"py37": true},
			expected: []string{
				"from __future__ import generator_stop, division, absolute_import, " +
					"print_function, unicode_literals, with_statement, generators, nested_scopes",
			},
		},
		{
			name:    "redundant older flags change nothing",
			enabled: map[string]bool{"py3": true, "py22": true},
			expected: []string{
				"from __future__ import division, absolute_import, print_function, " +
					"unicode_literals, with_statement, generators, nested_scopes",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.New(t).Equal(tt.expected, FutureRemovals(tt.enabled))
		})
	}
}

func TestIsPy3(t *testing.T) {
	req := require.New(t)

	req.False(IsPy3(map[string]bool{}))
	req.False(IsPy3(map[string]bool{"py26": true}))
	req.True(IsPy3(map[string]bool{"py3": true}))
	req.True(IsPy3(map[string]bool{"py37": true}))
}

func TestFutureImportsOrdering(t *testing.T) {
	req := require.New(t)

	// the implication logic depends on oldest-to-newest ordering
	req.Equal("py22", FutureImports[0].Version)
	req.Equal("py37", FutureImports[len(FutureImports)-1].Version)
}

func TestSixTables(t *testing.T) {
	req := require.New(t)

	for _, directive := range SixRemovals {
		req.True(strings.HasPrefix(directive, "from six.moves import "), "directive: %q", directive)
	}

	for _, rename := range SixRenames {
		req.True(strings.HasPrefix(rename, "six."), "rename: %q", rename)
		mods, _, _ := strings.Cut(rename, ":")
		orig, newMod, ok := strings.Cut(mods, "=")
		req.True(ok, "rename: %q", rename)
		req.NotEmpty(orig, "rename: %q", rename)
		req.NotEmpty(newMod, "rename: %q", rename)
	}
}
