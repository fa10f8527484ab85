package seqgen_test

import (
	"fmt"

	"github.com/katalvlaran/lvbars/seqgen"
)

// ExampleGenerate shows the default placeholder stream for seed 42 and its
// sign invariance.
func ExampleGenerate() {
	fmt.Println(seqgen.Generate(5, 42))
	fmt.Println(seqgen.Generate(5, -42))
	fmt.Println(seqgen.Generate(0, 42))
	// Output:
	// [10 67 35 54 75]
	// [10 67 35 54 75]
	// []
}

// ExampleNewGenerator draws values one at a time. Seed 0 falls back to 13.
func ExampleNewGenerator() {
	g := seqgen.NewGenerator(0)
	for i := 0; i < 3; i++ {
		fmt.Print(g.Next(), " ")
	}
	fmt.Println()
	// Output:
	// 10 20 91
}
