package checker

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/reposafety/reposafety/pkg/scanner"
)

var blockedFilenames = []string{"AGENTS.md", "agents.md"}

var blockedExtensions = map[string]struct{}{
	".pem": {},
	".key": {},
	".p12": {},
	".crt": {},
}

// CheckPath classifies a path independent of its content. Pure: the file
// need not exist. Classification findings are reported at line 1 by
// convention. A path can trigger more than one rule.
func CheckPath(path string, extraBlocked []string) []scanner.Finding {
	var findings []scanner.Finding
	name := filepath.Base(path)
	lowered := strings.ToLower(name)

	if slices.Contains(blockedFilenames, name) || slices.Contains(extraBlocked, name) {
		findings = append(findings, classification(path, "blocked file name '"+name+"'"))
	}

	// The prefix check is case-insensitive but the .env.example exception
	// matches the original name exactly; kept as-is for compatibility.
	if strings.HasPrefix(lowered, ".env") && name != ".env.example" {
		findings = append(findings, classification(path, "'.env*' files are not allowed in git (except .env.example)"))
	}

	if _, ok := blockedExtensions[strings.ToLower(filepath.Ext(name))]; ok {
		findings = append(findings, classification(path, "certificate/key files are not allowed in git"))
	}

	return findings
}

func classification(path string, message string) scanner.Finding {
	return scanner.Finding{Path: path, Location: "1", Message: message}
}
