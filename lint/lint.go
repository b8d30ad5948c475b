// Package lint is a small rule engine for decoded CloudFormation
// templates. It checks structural properties against documented
// CloudFormation limits; it is not a substitute for cfn-lint's full
// rule set, but it catches the mistakes that make a template
// undeployable before any API call is spent on it.
package lint

import (
	"fmt"

	"github.com/awslabs/goformation/v4/cloudformation"
)

// Match is a single finding against a template. Errors and warnings
// share the same shape; the rule ID prefix (E/W) tells them apart.
type Match struct {
	RuleID   string
	Message  string
	Template string
}

func (m Match) String() string {
	return fmt.Sprintf("%s %s (%s)", m.RuleID, m.Message, m.Template)
}

// Rule checks one property of a template. Regions carry the region
// context the template will deploy into; rules that aren't
// region-sensitive ignore them.
type Rule interface {
	ID() string
	Description() string
	Check(template *cloudformation.Template, regions []string) []string
}

// DefaultRules returns the built-in rule set, filtered by the given
// rule ID inclusions and exclusions. Passing nil for both returns
// every rule.
func DefaultRules(include []string, exclude []string) []Rule {

	rules := []Rule{}
	for _, rule := range registry {
		if len(include) > 0 && !containsID(include, rule.ID()) {
			continue
		}
		if containsID(exclude, rule.ID()) {
			continue
		}
		rules = append(rules, rule)
	}

	return rules

}

// RunChecks runs every rule against the template and returns the
// combined findings, tagged with the template path they apply to.
func RunChecks(templatePath string, template *cloudformation.Template, rules []Rule, regions []string) []Match {

	matches := []Match{}
	for _, rule := range rules {
		for _, message := range rule.Check(template, regions) {
			matches = append(matches, Match{
				RuleID:   rule.ID(),
				Message:  message,
				Template: templatePath,
			})
		}
	}

	return matches

}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
