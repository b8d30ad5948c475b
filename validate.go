package main

import (
	"fmt"
	"io/ioutil"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/aws/aws-sdk-go/service/cloudformation/cloudformationiface"
)

// validateTemplates submits each template body to the CloudFormation
// ValidateTemplate API. The service checks well-formedness server side;
// a call that returns without error means the template is valid. Errors
// are printed and recorded but never influence the exit code.
func validateTemplates(client cloudformationiface.CloudFormationAPI, templates []string) []checkResult {

	results := make([]checkResult, 0, len(templates))

	for _, templatePath := range templates {

		body, err := ioutil.ReadFile(templatePath)
		if err != nil {
			fmt.Printf("There is an issue with template %s. The error is: %s \n", templatePath, err)
			results = append(results, checkResult{Template: templatePath, Err: err})
			continue
		}

		fmt.Printf("Validating stack %q. If no output, stack is valid. \n", templatePath)

		_, err = client.ValidateTemplate(&cloudformation.ValidateTemplateInput{
			TemplateBody: aws.String(string(body)),
		})
		if err != nil {
			fmt.Printf("There is an issue with template %s. The error is: %s \n", templatePath, err)
			results = append(results, checkResult{Template: templatePath, Err: err})
			continue
		}

		results = append(results, checkResult{Template: templatePath})

	}

	return results

}
