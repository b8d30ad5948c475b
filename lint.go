package main

import (
	"fmt"

	"github.com/awslabs/goformation/v4"
	"github.com/sviera91/AWS-CodeBuild-CFNChecker/lint"
)

// checkResult records the outcome of checking one template within a
// pass. A failure on one template never stops the rest of the pass.
type checkResult struct {
	Template string
	Err      error
}

// lintTemplates decodes each template and runs the default lint rules
// against it, with the given region as the deployment context. Findings
// are printed; they never influence the exit code.
func lintTemplates(templates []string, region string) []checkResult {

	rules := lint.DefaultRules(nil, nil)
	regions := []string{region}

	results := make([]checkResult, 0, len(templates))

	for _, templatePath := range templates {

		template, err := goformation.Open(templatePath)
		if err != nil {
			fmt.Printf("There is an issue with template %s. The error is: %s \n", templatePath, err)
			results = append(results, checkResult{Template: templatePath, Err: err})
			continue
		}

		matches := lint.RunChecks(templatePath, template, rules, regions)

		fmt.Printf("Errors & Warnings found for %s:\n", templatePath)
		for _, match := range matches {
			fmt.Println(match)
		}

		results = append(results, checkResult{Template: templatePath})

	}

	return results

}
