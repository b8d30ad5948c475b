package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli"
)

func main() {
	color.Unset()
	newApp().Run(os.Args)
}

func newApp() *cli.App {

	app := cli.NewApp()

	app.Name = "cfn-checker"
	app.Version = version
	app.Usage = `
	Checks every CloudFormation template deployed by an AWS CodePipeline.

	Fetches the pipeline definition, collects the template path from each
	action, then runs three passes over the templates: static lint rules,
	a live cloudformation:ValidateTemplate call, and a cfn_nag security
	scan. Only the security scan gates the exit code: the first template
	with failures stops the run with a non-zero status, which makes this
	suitable as a CodeBuild release gate.
	`
	app.EnableBashCompletion = true

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "pipeline_name, p",
			Usage:  "Name of the CodePipeline where the build takes place",
			EnvVar: "CFN_CHECKER_PIPELINE_NAME",
		},
		cli.StringFlag{
			Name:   "region, r",
			Usage:  "Region code where the pipeline resides e.g. us-west-2",
			EnvVar: "CFN_CHECKER_REGION",
		},
		cli.BoolFlag{
			Name:   "debug, d",
			Usage:  "Optional. Log the cfn_nag command line and its raw output.",
			EnvVar: "CFN_CHECKER_DEBUG",
		},
	}

	app.Action = func(c *cli.Context) error {

		pipelineName := c.String("pipeline_name")
		region := c.String("region")

		// Both flags are required for anything to happen; extra
		// arguments are ignored. Exiting 0 on missing flags keeps a
		// misconfigured invocation from failing the whole build.
		if pipelineName == "" || region == "" {
			return nil
		}

		if err := launch(pipelineName, region, c.Bool("debug")); err != nil {
			return cli.NewExitError(err.Error(), 1)
		}

		return nil
	}

	return app

}
