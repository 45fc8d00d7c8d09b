package scanner

import (
	"strconv"
	"strings"
)

// Finding is a single reportable issue. Location is the line number for
// plain files ("3"), "cell<N>" for notebook output issues and
// "cell<N>:line<M>" for secrets inside notebook cell sources.
type Finding struct {
	Path     string
	Location string
	Message  string
}

func (f Finding) String() string {
	return f.Path + ":" + f.Location + ": " + f.Message
}

// Hit is a raw pattern match inside one text blob.
type Hit struct {
	Rule Rule
	Line int
}

// DetectHits runs every rule against text and returns all non-overlapping
// matches, in registry order and left-to-right within a rule.
func DetectHits(text string, rules []Rule) []Hit {
	var hits []Hit
	for _, rule := range rules {
		for _, loc := range rule.Regex.FindAllStringIndex(text, -1) {
			hits = append(hits, Hit{Rule: rule, Line: lineForOffset(text, loc[0])})
		}
	}
	return hits
}

// ScanText converts text hits into findings addressed by line number.
func ScanText(path string, text string, rules []Rule) []Finding {
	var findings []Finding
	for _, hit := range DetectHits(text, rules) {
		findings = append(findings, Finding{
			Path:     path,
			Location: strconv.Itoa(hit.Line),
			Message:  "possible " + hit.Rule.Name,
		})
	}
	return findings
}

// lineForOffset returns the 1-based line of the given byte offset.
func lineForOffset(text string, offset int) int {
	return strings.Count(text[:offset], "\n") + 1
}
