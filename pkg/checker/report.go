package checker

import (
	"fmt"
	"io"

	"github.com/reposafety/reposafety/pkg/scanner"
)

// WriteReport prints the blocked-commit report. This is the only output the
// hook runner sees on stdout; its format is part of the tool's contract.
func WriteReport(w io.Writer, findings []scanner.Finding) {
	fmt.Fprintf(w, "[repo-safety] commit blocked:\n\n")
	for _, finding := range findings {
		fmt.Fprintf(w, "- %s\n", finding)
	}
}
