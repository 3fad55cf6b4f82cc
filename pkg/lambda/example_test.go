package lambda_test

import (
	"fmt"

	"github.com/vic/golambda/pkg/lambda"
)

func ExampleEvaluate() {
	term := lambda.MustParse("(#t -> t (#a -> #b -> a)) (#t -> t x y)")
	fmt.Println(lambda.Evaluate(term))
	// Output: x
}

func ExampleUniquify() {
	term := lambda.MustParse("(#x -> #y -> x y) (#x -> x)")
	fmt.Println(lambda.Uniquify(term))
	// Output: (#v0<x> -> #v1<y> -> v0<x> v1<y>) (#v2<x> -> v2<x>)
}

func ExampleStep() {
	term := lambda.MustParse("(#x -> x) ((#y -> y) a)")
	for {
		next, ok := lambda.Step(term)
		if !ok {
			break
		}
		fmt.Println(next)
		term = next
	}
	// Output:
	// (#y -> y) a
	// a
}

func ExampleSubstitute() {
	term := lambda.MustParse("x (#x -> x)")
	fmt.Println(lambda.Substitute(term, "x", lambda.V("y")))
	// Output: y (#x -> x)
}
