package chuck

import (
	"fmt"
	"math"
	"runtime"

	"gonum.org/v1/gonum/spatial/r3"
)

// PreconditionError is the panic value used when a function of this package
// receives degenerate input such as a zero length rotation axis or a
// non-positive jaw count. These are caller bugs and are never recovered
// inside this package.
type PreconditionError struct {
	Func string
	Msg  string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Func, e.Msg)
}

// precondition panics with a PreconditionError naming the calling function.
func precondition(msg string) {
	pc, _, _, ok := runtime.Caller(1)
	name := "?"
	if ok {
		name = runtime.FuncForPC(pc).Name()
	}
	panic(&PreconditionError{Func: name, Msg: msg})
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func finiteVec(v r3.Vec) bool { return finite(v.X, v.Y, v.Z) }
