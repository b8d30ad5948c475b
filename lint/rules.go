package lint

import (
	"fmt"

	"github.com/awslabs/goformation/v4/cloudformation"
)

// Limits from the CloudFormation quotas documentation.
const (
	maxResources         = 500
	maxParameters        = 200
	maxOutputs           = 200
	maxDescriptionLength = 1024
)

var registry = []Rule{
	ruleNoResources{},
	ruleResourceLimit{},
	ruleDescriptionLength{},
	ruleParameterLimit{},
	ruleOutputLimit{},
}

type ruleNoResources struct{}

func (ruleNoResources) ID() string          { return "E1001" }
func (ruleNoResources) Description() string { return "Template must declare at least one resource" }

func (ruleNoResources) Check(template *cloudformation.Template, regions []string) []string {
	if len(template.Resources) == 0 {
		return []string{"Template does not declare any resources"}
	}
	return nil
}

type ruleResourceLimit struct{}

func (ruleResourceLimit) ID() string          { return "E1002" }
func (ruleResourceLimit) Description() string { return "Template must stay under the resource limit" }

func (ruleResourceLimit) Check(template *cloudformation.Template, regions []string) []string {
	if count := len(template.Resources); count > maxResources {
		return []string{fmt.Sprintf("Template declares %d resources, limit is %d", count, maxResources)}
	}
	return nil
}

type ruleDescriptionLength struct{}

func (ruleDescriptionLength) ID() string { return "W1011" }
func (ruleDescriptionLength) Description() string {
	return "Template description must stay under the length limit"
}

func (ruleDescriptionLength) Check(template *cloudformation.Template, regions []string) []string {
	if length := len(template.Description); length > maxDescriptionLength {
		return []string{fmt.Sprintf("Description is %d bytes long, limit is %d", length, maxDescriptionLength)}
	}
	return nil
}

type ruleParameterLimit struct{}

func (ruleParameterLimit) ID() string          { return "W2001" }
func (ruleParameterLimit) Description() string { return "Template must stay under the parameter limit" }

func (ruleParameterLimit) Check(template *cloudformation.Template, regions []string) []string {
	if count := len(template.Parameters); count > maxParameters {
		return []string{fmt.Sprintf("Template declares %d parameters, limit is %d", count, maxParameters)}
	}
	return nil
}

type ruleOutputLimit struct{}

func (ruleOutputLimit) ID() string          { return "W6001" }
func (ruleOutputLimit) Description() string { return "Template must stay under the output limit" }

func (ruleOutputLimit) Check(template *cloudformation.Template, regions []string) []string {
	if count := len(template.Outputs); count > maxOutputs {
		return []string{fmt.Sprintf("Template declares %d outputs, limit is %d", count, maxOutputs)}
	}
	return nil
}
