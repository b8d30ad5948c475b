package main

import (
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/codepipeline"
	"github.com/aws/aws-sdk-go/service/codepipeline/codepipelineiface"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// actionConfiguration holds the subset of a CodePipeline action
// configuration this tool cares about. CloudFormation and CodeDeploy
// style actions reference their template as "ArtifactName::relative/path".
type actionConfiguration struct {
	TemplatePath string `mapstructure:"TemplatePath"`
}

// fetchPipelineDefinition returns the file path of every CloudFormation
// template deployed by the named pipeline, in the order the pipeline
// definition declares them (stages first, then actions within a stage).
func fetchPipelineDefinition(client codepipelineiface.CodePipelineAPI, pipelineName string) ([]string, error) {

	definition, err := client.GetPipeline(&codepipeline.GetPipelineInput{
		Name: aws.String(pipelineName),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "fetching pipeline %s", pipelineName)
	}

	templates := []string{}

	for _, stage := range definition.Pipeline.Stages {
		for _, action := range stage.Actions {

			config := actionConfiguration{}
			if err := mapstructure.Decode(aws.StringValueMap(action.Configuration), &config); err != nil {
				continue
			}

			// TemplatePath is "ArtifactName::relative/path"; only the
			// part after the separator names a file on disk.
			parts := strings.SplitN(config.TemplatePath, "::", 2)
			if len(parts) == 2 {
				templates = append(templates, parts[1])
			}

		}
	}

	return templates, nil

}

// isPipelineNotFound reports whether err is CodePipeline telling us the
// pipeline doesn't exist, as opposed to a credentials/throttling problem.
func isPipelineNotFound(err error) bool {
	aerr, ok := errors.Cause(err).(awserr.Error)
	return ok && aerr.Code() == codepipeline.ErrCodePipelineNotFoundException
}

// normalizeTemplatePaths rewrites paths that point at a SAM "packaged"
// artifact to point at the pre-packaging "template" file instead. The
// packaged variant only exists inside the build that produced it, so it
// can't be checked from here; the source template in the same directory
// can. Returns a new slice, order preserved.
func normalizeTemplatePaths(templates []string) []string {

	normalized := make([]string, 0, len(templates))
	for _, template := range templates {
		if strings.Contains(template, "packaged") {
			template = strings.Replace(template, "packaged", "template", -1)
		}
		normalized = append(normalized, template)
	}

	return normalized

}
