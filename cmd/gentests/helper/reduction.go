package gentests

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vic/golambda/pkg/lambda"
)

// MaxSteps bounds every generated reduction so a regression that makes a
// normalizing term diverge fails instead of hanging.
const MaxSteps = 10000

// DivergenceSteps is how far a diverging term is followed.
const DivergenceSteps = 200

func CheckLambdaReduction(t *testing.T, testName string, inputStr string, outputStr string) {
	expectedOutput := strings.TrimSpace(outputStr)

	// Parse expected output
	expectedTerm, err := lambda.Parse(expectedOutput)
	if err != nil {
		t.Fatalf("Parse error for expected output: %v", err)
	}

	// Parse input
	term, err := lambda.Parse(inputStr)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	ev := lambda.NewEvaluator(MaxSteps)
	// ev.EnableTrace(16) // Debug

	start := time.Now()
	actualTerm, err := ev.Run(context.Background(), term)
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("%s: %v (last term %s)", testName, err, actualTerm)
	}

	// Bound names in the result are generated (v0, v1, ...), so compare
	// up to alpha-equivalence rather than textually.
	if !lambda.AlphaEquivalent(actualTerm, expectedTerm) {
		t.Errorf("Mismatch in %s:\nInput: %s\nExpected: %s\nActual:   %s", testName, inputStr, lambda.RenderPlain(expectedTerm), lambda.Render(actualTerm))
	}

	if next, ok := lambda.Step(lambda.Uniquify(actualTerm)); ok {
		t.Errorf("%s: result %s is not in normal form, steps to %s", testName, actualTerm, next)
	}

	stats := ev.Stats()
	t.Logf("%s: %d reductions in %v", testName, stats.Reductions, elapsed)
}

// CheckDivergence follows a term without a normal form for DivergenceSteps
// reductions and requires the evaluator to still be going.
func CheckDivergence(t *testing.T, testName string, inputStr string) {
	term, err := lambda.Parse(inputStr)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	ev := lambda.NewEvaluator(DivergenceSteps)
	last, err := ev.Run(context.Background(), term)
	if !errors.Is(err, lambda.ErrStepLimit) {
		t.Fatalf("%s: expected the step limit to stop evaluation, got %v with %s", testName, err, last)
	}
	if lambda.IsNormal(last) {
		t.Errorf("%s: stopped on a normal form %s", testName, last)
	}
	t.Logf("%s: still reducing after %d steps, term size %d", testName, ev.Stats().Reductions, lambda.Size(last))
}
