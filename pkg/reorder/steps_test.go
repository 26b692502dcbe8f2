package reorder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func importRegions(texts ...string) []Region {
	out := make([]Region, 0, len(texts))
	for _, text := range texts {
		out = append(out, Region{Kind: Import, Text: text})
	}
	return out
}

func TestParseReplaceRule(t *testing.T) {
	tests := []struct {
		name      string
		spec      string
		expected  ReplaceRule
		expectErr bool
	}{
		{
			name: "module pair",
			spec: "six.moves.urllib.parse=urllib.parse",
			expected: ReplaceRule{
				Orig: []string{"six", "moves", "urllib", "parse"},
				New:  []string{"urllib", "parse"},
			},
		},
		{
			name: "module pair with attribute",
			spec: "six.moves=io:StringIO",
			expected: ReplaceRule{
				Orig: []string{"six", "moves"},
				New:  []string{"io"},
				Attr: "StringIO",
			},
		},
		{
			name:      "missing equals",
			spec:      "six.moves",
			expectErr: true,
		},
		{
			name:      "empty replacement",
			spec:      "six.moves=",
			expectErr: true,
		},
		{
			name:      "empty original",
			spec:      "=urllib.parse",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			rule, err := ParseReplaceRule(tt.spec)
			if tt.expectErr {
				req.Error(err)
				return
			}
			req.NoError(err)
			req.Equal(tt.expected, rule)
		})
	}
}

func TestCombineTrailingCode(t *testing.T) {
	tests := []struct {
		name     string
		regions  []Region
		expected []Region
	}{
		{
			name: "trailing code and whitespace collapse",
			regions: []Region{
				{Kind: Import, Text: "import os\n"},
				{Kind: NonCode, Text: "\n"},
				{Kind: Code, Text: "x = 1\n"},
			},
			expected: []Region{
				{Kind: Import, Text: "import os\n"},
				{Kind: Code, Text: "\nx = 1\n"},
			},
		},
		{
			name: "file ending with an import is unchanged",
			regions: []Region{
				{Kind: NonCode, Text: "\n"},
				{Kind: Import, Text: "import os\n"},
			},
			expected: []Region{
				{Kind: NonCode, Text: "\n"},
				{Kind: Import, Text: "import os\n"},
			},
		},
		{
			name:     "empty input",
			regions:  nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.New(t).Equal(tt.expected, combineTrailingCode(tt.regions))
		})
	}
}

func TestAddImports(t *testing.T) {
	req := require.New(t)

	// whitespace-only files do not get imports
	out := addImports([]Region{{Kind: NonCode, Text: "\n"}}, []string{"import os"})
	req.Equal([]Region{{Kind: NonCode, Text: "\n"}}, out)

	// a missing final newline is repaired before appending
	out = addImports(
		[]Region{{Kind: Import, Text: "import os"}},
		[]string{"from __future__ import absolute_import"},
	)
	req.Equal([]Region{
		{Kind: Import, Text: "import os\n"},
		{Kind: Import, Text: "from __future__ import absolute_import\n"},
	}, out)

	out = addImports(importRegions("import os\n"), nil)
	req.Equal(importRegions("import os\n"), out)
}

func TestSeparateCommaImports(t *testing.T) {
	tests := []struct {
		name     string
		regions  []Region
		expected []Region
	}{
		{
			name:     "plain comma import",
			regions:  importRegions("import sys, os\n"),
			expected: importRegions("import sys\n", "import os\n"),
		},
		{
			name:     "from comma import",
			regions:  importRegions("from typing import Any, Optional\n"),
			expected: importRegions("from typing import Any\n", "from typing import Optional\n"),
		},
		{
			name:     "aliases survive the split",
			regions:  importRegions("import os as o, sys\n"),
			expected: importRegions("import os as o\n", "import sys\n"),
		},
		{
			name:     "comment on a split statement is dropped",
			regions:  importRegions("import sys, os  # derp\n"),
			expected: importRegions("import sys\n", "import os\n"),
		},
		{
			name:     "single import keeps its comment",
			regions:  importRegions("import sys  # noqa\n"),
			expected: importRegions("import sys  # noqa\n"),
		},
		{
			name: "non-import regions pass through",
			regions: []Region{
				{Kind: Code, Text: "x = 1\n"},
			},
			expected: []Region{
				{Kind: Code, Text: "x = 1\n"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.New(t).Equal(tt.expected, separateCommaImports(tt.regions))
		})
	}
}

func TestRemoveImports(t *testing.T) {
	tests := []struct {
		name     string
		regions  []Region
		toRemove []string
		expected []Region
	}{
		{
			name:     "removes a matching plain import",
			regions:  importRegions("import os\n", "import sys\n"),
			toRemove: []string{"import os"},
			expected: importRegions("import sys\n"),
		},
		{
			name:     "directive whitespace is irrelevant",
			regions:  importRegions("from os import path\n"),
			toRemove: []string{"from os  import path"},
			expected: nil,
		},
		{
			name:     "multi-name directive removes each name",
			regions:  importRegions("import os\n", "import sys\n"),
			toRemove: []string{"import os, sys"},
			expected: nil,
		},
		{
			name:     "alias is part of the identity",
			regions:  importRegions("import os as node_os\n"),
			toRemove: []string{"import os"},
			expected: importRegions("import os as node_os\n"),
		},
		{
			name:     "no directives",
			regions:  importRegions("import os\n"),
			toRemove: nil,
			expected: importRegions("import os\n"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.New(t).Equal(tt.expected, removeImports(tt.regions, tt.toRemove))
		})
	}
}

func TestReplaceImports(t *testing.T) {
	mustRules := func(specs ...string) []ReplaceRule {
		out := make([]ReplaceRule, 0, len(specs))
		for _, s := range specs {
			rule, err := ParseReplaceRule(s)
			require.NoError(t, err)
			out = append(out, rule)
		}
		return out
	}

	tests := []struct {
		name     string
		regions  []Region
		rules    []ReplaceRule
		expected []Region
	}{
		{
			name:     "plain imports are never rewritten",
			regions:  importRegions("import six.moves\n"),
			rules:    mustRules("six.moves=urllib"),
			expected: importRegions("import six.moves\n"),
		},
		{
			name:     "exact module match",
			regions:  importRegions("from six.moves.urllib.parse import urlencode\n"),
			rules:    mustRules("six.moves.urllib.parse=urllib.parse"),
			expected: importRegions("from urllib.parse import urlencode\n"),
		},
		{
			name:     "prefix match rewrites the head of the path",
			regions:  importRegions("from six.moves.queue import Queue\n"),
			rules:    mustRules("six.moves=queue_compat"),
			expected: importRegions("from queue_compat.queue import Queue\n"),
		},
		{
			name:     "attribute-restricted rule skips other symbols",
			regions:  importRegions("from six.moves import zip_longest\n"),
			rules:    mustRules("six.moves=io:StringIO"),
			expected: importRegions("from six.moves import zip_longest\n"),
		},
		{
			name:     "attribute-restricted rule matches its symbol",
			regions:  importRegions("from six.moves import StringIO\n"),
			rules:    mustRules("six.moves=io:StringIO"),
			expected: importRegions("from io import StringIO\n"),
		},
		{
			name:     "module import collapses to a plain import",
			regions:  importRegions("from six.moves import queue\n"),
			rules:    mustRules("six.moves.queue=queue"),
			expected: importRegions("import queue\n"),
		},
		{
			name:     "collapse keeps the alias",
			regions:  importRegions("from six.moves import queue as Queue\n"),
			rules:    mustRules("six.moves.queue=queue"),
			expected: importRegions("import queue as Queue\n"),
		},
		{
			name:     "first matching rule wins",
			regions:  importRegions("from a.b import c\n"),
			rules:    mustRules("a.b=x", "a.b=y"),
			expected: importRegions("from x import c\n"),
		},
		{
			name:     "unrelated module untouched",
			regions:  importRegions("from collections import defaultdict\n"),
			rules:    mustRules("six.moves=urllib"),
			expected: importRegions("from collections import defaultdict\n"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.New(t).Equal(tt.expected, replaceImports(tt.regions, tt.rules))
		})
	}
}

func TestRemoveDuplicatedImports(t *testing.T) {
	tests := []struct {
		name     string
		regions  []Region
		expected []Region
	}{
		{
			name:     "exact duplicate keeps the first occurrence",
			regions:  importRegions("import os\n", "import os\n"),
			expected: importRegions("import os\n"),
		},
		{
			name:     "formatting does not defeat equality",
			regions:  importRegions("from os import path\n", "from  os  import  path\n"),
			expected: importRegions("from os import path\n"),
		},
		{
			name:     "submodule import implies the parent",
			regions:  importRegions("import os.path\n", "import os\n"),
			expected: importRegions("import os.path\n"),
		},
		{
			name:     "parent first still collapses",
			regions:  importRegions("import os\n", "import os.path\n"),
			expected: importRegions("import os.path\n"),
		},
		{
			name:     "aliased submodule does not imply the parent",
			regions:  importRegions("import os.path as os_path\n", "import os\n"),
			expected: importRegions("import os.path as os_path\n", "import os\n"),
		},
		{
			name:     "aliased parent is not implied away",
			regions:  importRegions("import os.path\n", "import os as node_os\n"),
			expected: importRegions("import os.path\n", "import os as node_os\n"),
		},
		{
			name:     "from import does not imply modules",
			regions:  importRegions("from os import path\n", "import os\n"),
			expected: importRegions("from os import path\n", "import os\n"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.New(t).Equal(tt.expected, removeDuplicatedImports(tt.regions))
		})
	}
}

func TestParentModules(t *testing.T) {
	req := require.New(t)
	req.Equal([]string{"a", "a.b"}, parentModules("a.b.c"))
	req.Empty(parentModules("a"))
}
