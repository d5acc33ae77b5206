package result

import (
	"fmt"

	"github.com/abevier/adt/futures"
)

// UnwrapError is raised by Unwrap and returned by ToTuple when the failure
// payload of a Result is not itself an error.
type UnwrapError struct {
	Payload any
}

func (e *UnwrapError) Error() string {
	return fmt.Sprint(e.Payload)
}

// PanicError carries a recovered panic value. TryCatchError stores it for
// panic values that are not errors, and async combinators fail their future
// with it when a transform panics.
type PanicError = futures.PanicError
