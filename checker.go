package main

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/aws/aws-sdk-go/service/codepipeline"
	"github.com/fatih/color"
)

// launch runs all three checks over the templates deployed by the named
// pipeline. The returned error is non-nil only when the cfn_nag scan
// finds failures; lint and validation findings are informational and
// never fail the run.
func launch(pipelineName string, region string, debug bool) error {

	sess := session.Must(session.NewSession(&aws.Config{
		Region:     aws.String(region),
		MaxRetries: aws.Int(10),
	}))

	templates, err := fetchPipelineDefinition(codepipeline.New(sess), pipelineName)
	if err != nil {
		if isPipelineNotFound(err) {
			fmt.Printf("Pipeline %s does not exist in region %s\n", pipelineName, region)
			return nil
		}
		fmt.Printf("Could not fetch pipeline %s in region %s: %s\n", pipelineName, region, err)
		return nil
	}

	templates = normalizeTemplatePaths(templates)

	fmt.Printf("\nList of templates to check:\n")
	for _, template := range templates {
		fmt.Println(template)
	}

	banner := color.New(color.Bold)

	banner.Println("\n---Running cfn-lint---")
	lintTemplates(templates, region)

	banner.Println("\n---Running cfn validator---")
	validateTemplates(cloudformation.New(sess), templates)

	banner.Println("\n---Running cfn_nag---")
	scanner := newSecurityScanner(debug)
	return scanner.scan(templates)

}
