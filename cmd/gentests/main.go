package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vic/golambda/pkg/cases"
	"github.com/vic/golambda/pkg/lambda"
)

const testTemplate = `
package gentests
import _ "embed"
import "testing"
import "github.com/vic/golambda/cmd/gentests/helper"
//go:embed input.lam
var input string
//go:embed output.lam
var output string
func Test_%s_Reduction(t *testing.T) {
	gentests.CheckLambdaReduction(t, "%s", input, output)
}
`

const divergenceTemplate = `
package gentests
import _ "embed"
import "testing"
import "github.com/vic/golambda/cmd/gentests/helper"
//go:embed input.lam
var input string
func Test_%s_Divergence(t *testing.T) {
	gentests.CheckDivergence(t, "%s", input)
}
`

func main() {
	casesFile := flag.String("cases", "", "corpus file (default: the corpus embedded in pkg/cases)")
	baseDir := flag.String("out", "cmd/gentests/generated", "output directory")
	flag.Parse()

	var (
		tests []cases.Case
		err   error
	)
	if *casesFile != "" {
		tests, err = cases.Load(*casesFile)
	} else {
		tests, err = cases.Default()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading cases: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*baseDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", *baseDir, err)
		os.Exit(1)
	}

	generated := 0
	for _, tc := range tests {
		if err := generate(*baseDir, tc); err != nil {
			fmt.Printf("Error generating %s: %v\n", tc.Name, err)
			continue
		}
		generated++
	}

	fmt.Printf("Generated %d tests\n", generated)
}

func generate(baseDir string, tc cases.Case) error {
	dir := filepath.Join(baseDir, tc.Name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Normalize Input
	inTerm, err := lambda.Parse(tc.Input)
	if err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "input.lam"), []byte(lambda.RenderPlain(inTerm)), 0644); err != nil {
		return err
	}

	testGo := fmt.Sprintf(divergenceTemplate, tc.Name, tc.Name)
	if !tc.Diverges {
		// Normalize Output
		outTerm, err := lambda.Parse(tc.Output)
		if err != nil {
			return fmt.Errorf("parsing output: %w", err)
		}
		if err := os.WriteFile(filepath.Join(dir, "output.lam"), []byte(lambda.RenderPlain(outTerm)), 0644); err != nil {
			return err
		}
		testGo = fmt.Sprintf(testTemplate, tc.Name, tc.Name)
	}

	return os.WriteFile(filepath.Join(dir, "reduction_test.go"), []byte(testGo), 0644)
}
