package main

import (
	"fmt"
	"log"
	"os/exec"
	"strings"
)

// cfn_nag reports a clean template with this line even when the scan
// itself exits non-zero for other reasons.
const noFailuresMarker = "Failures count: 0"

// scanFailure is returned when cfn_nag reports failures for a template.
// It is the only error that turns into a non-zero process exit.
type scanFailure struct {
	Template string
}

func (e *scanFailure) Error() string {
	return fmt.Sprintf("template %q failed the cfn_nag scan", e.Template)
}

// securityScanner shells out to cfn_nag_scan, which is a Ruby tool and
// can't be linked in-process. The exec step is a field so tests can
// substitute a fake subprocess.
type securityScanner struct {
	command string
	debug   bool
	run     func(command string, template string) ([]byte, error)
}

func newSecurityScanner(debug bool) *securityScanner {
	return &securityScanner{
		command: "cfn_nag_scan",
		debug:   debug,
		run:     runScanCommand,
	}
}

func runScanCommand(command string, template string) ([]byte, error) {
	return exec.Command(command, "-i", template, "-o", "txt").CombinedOutput()
}

// scan runs cfn_nag over each template in order and stops at the first
// one that reports failures. A non-zero subprocess exit whose merged
// output lacks the no-failures marker counts as a failure; that makes a
// missing or crashing scanner indistinguishable from a bad template,
// which is the safe direction for a release gate.
func (s *securityScanner) scan(templates []string) error {

	for _, template := range templates {

		if s.debug {
			log.Printf("executing command: %s -i %s -o txt", s.command, template)
		}

		output, err := s.run(s.command, template)

		if s.debug {
			log.Printf("scan output for %s: %s", template, output)
		}

		if err != nil {
			if !strings.Contains(string(output), noFailuresMarker) {
				log.Printf("The template %q has the following issues: \n%s", template, output)
				fmt.Printf("There are failure issues with template %q. Look at the following output: \n%s\n", template, output)
				return &scanFailure{Template: template}
			}
			continue
		}

		fmt.Printf("There are no failures with template %q. Check for any warnings in output if present: %s \n", template, output)

	}

	return nil

}
