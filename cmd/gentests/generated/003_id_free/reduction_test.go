
package gentests
import _ "embed"
import "testing"
import "github.com/vic/golambda/cmd/gentests/helper"
//go:embed input.lam
var input string
//go:embed output.lam
var output string
func Test_003_id_free_Reduction(t *testing.T) {
	gentests.CheckLambdaReduction(t, "003_id_free", input, output)
}
