
package gentests
import _ "embed"
import "testing"
import "github.com/vic/golambda/cmd/gentests/helper"
//go:embed input.lam
var input string
//go:embed output.lam
var output string
func Test_017_pow_2_3_Reduction(t *testing.T) {
	gentests.CheckLambdaReduction(t, "017_pow_2_3", input, output)
}
