package areamath_test

import (
	"fmt"

	"github.com/astreproj/astre/areamath"
)

// ExampleNew demonstrates building a small DiscreteArea table and querying
// the discretized area of an acceleration offset.
func ExampleNew() {
	da, err := areamath.New(areamath.DefaultMaxRadius)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(da.Area(0, 0))
	fmt.Println(da.AD(0.6, 0.4))
	// Output:
	// 1
	// 5
}
