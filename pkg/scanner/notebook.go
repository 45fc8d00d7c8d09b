package scanner

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// ScanNotebook inspects a Jupyter notebook for uncleared code-cell outputs
// and for secrets inside cell sources. A file that cannot be read or parsed
// yields exactly one finding and no further checks for that file.
func ScanNotebook(path string, rules []Rule) []Finding {
	data, err := os.ReadFile(path)
	if err != nil {
		return []Finding{parseFailure(path, err.Error())}
	}

	if !gjson.ValidBytes(data) {
		// Re-parse with encoding/json to surface a useful error message.
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return []Finding{parseFailure(path, err.Error())}
		}
		return []Finding{parseFailure(path, "invalid JSON")}
	}

	var findings []Finding
	idx := 0
	gjson.GetBytes(data, "cells").ForEach(func(_, cell gjson.Result) bool {
		idx++

		outputs := cell.Get("outputs")
		if cell.Get("cell_type").String() == "code" && outputs.IsArray() && len(outputs.Array()) > 0 {
			findings = append(findings, Finding{
				Path:     path,
				Location: "cell" + strconv.Itoa(idx),
				Message:  "notebook outputs must be cleared before commit",
			})
		}

		source := cellSource(cell.Get("source"))
		for _, hit := range DetectHits(source, rules) {
			findings = append(findings, Finding{
				Path:     path,
				Location: "cell" + strconv.Itoa(idx) + ":line" + strconv.Itoa(hit.Line),
				Message:  "possible " + hit.Rule.Name,
			})
		}

		return true
	})

	return findings
}

// cellSource concatenates a cell source into one blob. Notebooks store
// sources either as an array of fragments or as a single string.
func cellSource(source gjson.Result) string {
	if source.IsArray() {
		var b strings.Builder
		for _, fragment := range source.Array() {
			b.WriteString(fragment.String())
		}
		return b.String()
	}
	return source.String()
}

func parseFailure(path string, detail string) Finding {
	return Finding{
		Path:     path,
		Location: "1",
		Message:  "cannot parse notebook JSON: " + detail,
	}
}
