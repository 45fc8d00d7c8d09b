// Package scanner implements the secret pattern registry and the content
// scanners (plain text and Jupyter notebooks) used by the repo-safety gate.
package scanner

import (
	"fmt"
	"regexp"
	"slices"
)

// Rule pairs a human-readable secret label with its compiled matcher.
type Rule struct {
	Name  string
	Regex *regexp.Regexp
}

// defaultRules is the built-in registry. Order matters: findings are
// reported in registry order, so built-in rules always come first.
var defaultRules = []Rule{
	{Name: "OpenAI API key", Regex: regexp.MustCompile(`sk-(?:proj|live|test)-[A-Za-z0-9_-]{20,}`)},
	{Name: "GitHub token", Regex: regexp.MustCompile(`gh[pousr]_[A-Za-z0-9]{20,}`)},
	{Name: "AWS access key", Regex: regexp.MustCompile(`AKIA[0-9A-Z]{16}`)},
	{Name: "AWS secret key assignment", Regex: regexp.MustCompile(`(?i)aws_secret_access_key\s*[:=]\s*[A-Za-z0-9/+_=]{30,}`)},
	{Name: "Private key block", Regex: regexp.MustCompile(`-----BEGIN (?:RSA|OPENSSH|EC|DSA|PGP) PRIVATE KEY-----`)},
}

// DefaultRules returns a copy of the built-in registry.
func DefaultRules() []Rule {
	return slices.Clone(defaultRules)
}

// CompileRule builds a user-supplied rule, e.g. from the repo config file.
func CompileRule(name string, expr string) (Rule, error) {
	if name == "" {
		return Rule{}, fmt.Errorf("rule with regex %q has no name", expr)
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return Rule{}, fmt.Errorf("rule %q: %w", name, err)
	}

	return Rule{Name: name, Regex: re}, nil
}
