package main

import (
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// fakeScan builds a run function that replays canned subprocess results
// per template and records the order templates were scanned in.
type fakeScan struct {
	outputs map[string]string
	errs    map[string]error
	scanned []string
}

func (f *fakeScan) run(command string, template string) ([]byte, error) {
	f.scanned = append(f.scanned, template)
	return []byte(f.outputs[template]), f.errs[template]
}

func newScannerWith(fake *fakeScan) *securityScanner {
	scanner := newSecurityScanner(false)
	scanner.run = fake.run
	return scanner
}

var _ = Describe("cfn-checker", func() {
	Describe("security scanner", func() {

		Context("when every scan exits cleanly", func() {

			It("reports no failures and scans every template", func() {
				fake := &fakeScan{
					outputs: map[string]string{
						"templates/a.yaml": "Failures count: 0\nWarnings count: 0\n",
						"templates/b.yaml": "Failures count: 0\nWarnings count: 2\n",
					},
				}

				err := newScannerWith(fake).scan([]string{"templates/a.yaml", "templates/b.yaml"})
				Expect(err).To(BeNil())
				Expect(fake.scanned).To(Equal([]string{"templates/a.yaml", "templates/b.yaml"}))
			})

		})

		Context("when the scan exits non-zero but reports zero failures", func() {

			It("treats the template as passing", func() {
				fake := &fakeScan{
					outputs: map[string]string{
						"templates/a.yaml": "Warnings count: 3\nFailures count: 0\n",
					},
					errs: map[string]error{
						"templates/a.yaml": errors.New("exit status 1"),
					},
				}

				err := newScannerWith(fake).scan([]string{"templates/a.yaml"})
				Expect(err).To(BeNil())
			})

		})

		Context("when the scan reports failures", func() {

			It("fails on the first bad template and stops scanning", func() {
				fake := &fakeScan{
					outputs: map[string]string{
						"templates/a.yaml": "Failures count: 0\n",
						"templates/b.yaml": "Failures count: 3\n",
						"templates/c.yaml": "Failures count: 0\n",
					},
					errs: map[string]error{
						"templates/b.yaml": errors.New("exit status 1"),
					},
				}

				err := newScannerWith(fake).scan([]string{"templates/a.yaml", "templates/b.yaml", "templates/c.yaml"})

				var failure *scanFailure
				Expect(errors.As(err, &failure)).To(BeTrue())
				Expect(failure.Template).To(Equal("templates/b.yaml"))
				Expect(fake.scanned).To(Equal([]string{"templates/a.yaml", "templates/b.yaml"}))
			})

		})

		Context("when the scanner executable is missing", func() {

			It("is treated the same as a failing template", func() {
				fake := &fakeScan{
					errs: map[string]error{
						"templates/a.yaml": errors.New(`exec: "cfn_nag_scan": executable file not found in $PATH`),
					},
				}

				err := newScannerWith(fake).scan([]string{"templates/a.yaml"})

				var failure *scanFailure
				Expect(errors.As(err, &failure)).To(BeTrue())
				Expect(failure.Template).To(Equal("templates/a.yaml"))
			})

		})

		Context("with no templates to scan", func() {

			It("does nothing", func() {
				fake := &fakeScan{}
				Expect(newScannerWith(fake).scan(nil)).To(BeNil())
				Expect(fake.scanned).To(BeEmpty())
			})

		})

	})
})
