
package gentests
import _ "embed"
import "testing"
import "github.com/vic/golambda/cmd/gentests/helper"
//go:embed input.lam
var input string
func Test_091_growing_Divergence(t *testing.T) {
	gentests.CheckDivergence(t, "091_growing", input)
}
