package result_test

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/abevier/adt/result"
)

func ExampleAndThen() {
	parse := func(s string) result.Of[int] {
		n, err := strconv.Atoi(s)
		return result.FromTuple(n, err)
	}
	inRange := func(port int) result.Of[int] {
		if port < 1 || port > 65535 {
			return result.Err[int](errors.New("port out of range"))
		}
		return result.Ok[int, error](port)
	}

	fmt.Println(result.AndThen(parse("8443"), inRange))
	fmt.Println(result.AndThen(parse("70000"), inRange))
	// Output:
	// Ok(8443)
	// Err(port out of range)
}

func ExampleCombine() {
	rs := []result.Result[int, string]{
		result.Ok[int, string](1),
		result.Err[int]("X"),
		result.Ok[int, string](3),
	}
	fmt.Println(result.Combine(rs))
	fmt.Println(result.Combine([]result.Result[int, string]{result.Ok[int, string](1), result.Ok[int, string](2)}))
	// Output:
	// Err(X)
	// Ok([1 2])
}
