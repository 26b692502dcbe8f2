package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnified(t *testing.T) {
	req := require.New(t)

	original := "import sys\nimport os\n"
	updated := "import os\nimport sys\n"

	out := Unified(original, updated, "app/main.py")
	req.Contains(out, "--- app/main.py")
	req.Contains(out, "+++ app/main.py")
	req.Contains(out, "-import sys\n")
	req.Contains(out, "+import sys\n")
	req.True(strings.HasSuffix(out, "\n"))
}

func TestUnifiedIdentical(t *testing.T) {
	req := require.New(t)

	req.Equal("", Unified("import os\n", "import os\n", "main.py"))
}

func TestUnifiedNoTrailingNewline(t *testing.T) {
	req := require.New(t)

	out := Unified("import sys\nimport os", "import os\nimport sys\n", "main.py")
	req.NotEmpty(out)
	req.True(strings.HasSuffix(out, "\n"))
}
