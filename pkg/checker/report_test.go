package checker

import (
	"strings"
	"testing"

	"github.com/reposafety/reposafety/pkg/scanner"
	"github.com/stretchr/testify/assert"
)

func TestWriteReport(t *testing.T) {
	findings := []scanner.Finding{
		{Path: "/repo/a.py", Location: "3", Message: "possible AWS access key"},
		{Path: "/repo/nb.ipynb", Location: "cell1", Message: "notebook outputs must be cleared before commit"},
	}

	var b strings.Builder
	WriteReport(&b, findings)

	want := "[repo-safety] commit blocked:\n\n" +
		"- /repo/a.py:3: possible AWS access key\n" +
		"- /repo/nb.ipynb:cell1: notebook outputs must be cleared before commit\n"
	assert.Equal(t, want, b.String())
}
