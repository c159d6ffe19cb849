package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/labelbot/pkg/domain/types"
	"github.com/secmon-lab/labelbot/pkg/utils/safe"
)

// ruleDelimiter separates the pattern field from the label field in a rule line
const ruleDelimiter = "::"

// LabelingRule binds a compiled pattern to the label implied when the pattern
// matches anywhere in an issue's text. Immutable after load.
type LabelingRule struct {
	Pattern *regexp.Regexp
	Label   string
}

// RuleSet is an ordered collection of labeling rules. Rule order follows the
// source so that match output is deterministic.
type RuleSet struct {
	rules []LabelingRule
}

func (x *RuleSet) Rules() []LabelingRule {
	return x.rules
}

func (x *RuleSet) Len() int {
	return len(x.rules)
}

// LoadRuleSet parses a line-oriented rule source. Each line must be
// "<pattern>::<label>" with exactly one delimiter. Malformed lines are skipped
// and returned as warnings, never as errors. An invalid pattern or a source
// that yields zero usable rules fails the load.
func LoadRuleSet(r io.Reader) (*RuleSet, []string, error) {
	var rules []LabelingRule
	var warnings []string

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		fields := strings.Split(line, ruleDelimiter)
		if len(fields) != 2 {
			warnings = append(warnings, fmt.Sprintf("line %d: rule must be '<pattern>%s<label>', skipping", lineNo, ruleDelimiter))
			continue
		}

		label := strings.TrimSpace(fields[1])
		if label == "" {
			warnings = append(warnings, fmt.Sprintf("line %d: empty label, skipping", lineNo))
			continue
		}

		pattern, err := regexp.Compile(fields[0])
		if err != nil {
			return nil, warnings, goerr.Wrap(err, "failed to compile rule pattern",
				goerr.V("line", lineNo),
				goerr.V("pattern", fields[0]),
			)
		}

		rules = append(rules, LabelingRule{Pattern: pattern, Label: label})
	}
	if err := scanner.Err(); err != nil {
		return nil, warnings, goerr.Wrap(err, "failed to read rule source")
	}

	if len(rules) == 0 {
		return nil, warnings, goerr.Wrap(types.ErrConfig, "no usable labeling rules in source")
	}

	return &RuleSet{rules: rules}, warnings, nil
}

// LoadRuleSetFile loads a rule set from a file path
func LoadRuleSetFile(path string) (*RuleSet, []string, error) {
	fd, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, nil, goerr.Wrap(types.ErrConfig, "failed to open rule file", goerr.V("path", path))
	}
	defer safe.Close(fd)

	return LoadRuleSet(fd)
}

// Match evaluates every rule against every text field and returns the implied
// labels. Matching is case-sensitive search semantics, not anchored. A label is
// returned once even if several rules or fields imply it; output order follows
// rule order. Pure function of its inputs.
func (x *RuleSet) Match(fields ...string) []string {
	var matched []string
	seen := make(map[string]struct{}, len(x.rules))

	for _, rule := range x.rules {
		if _, ok := seen[rule.Label]; ok {
			continue
		}
		for _, field := range fields {
			if rule.Pattern.MatchString(field) {
				matched = append(matched, rule.Label)
				seen[rule.Label] = struct{}{}
				break
			}
		}
	}

	return matched
}
