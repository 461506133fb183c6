package invcache_test

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/invcache/invcache"
	"github.com/katalvlaran/invcache/matrix"
)

// exampleLogger prints records without timestamps so the output is stable.
func exampleLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
}

func ExampleSolve() {
	a, _ := matrix.NewDenseFrom([][]float64{{2, 0}, {0, 2}})
	h := invcache.New(a)
	log := invcache.WithLogger(exampleLogger())

	inv, _ := invcache.Solve(h, log) // computed
	fmt.Print(inv)
	inv, _ = invcache.Solve(h, log) // served from the cache
	fmt.Print(inv)

	b, _ := matrix.NewDenseFrom([][]float64{{4, 0}, {0, 4}})
	h.SetMatrix(b)
	inv, _ = invcache.Solve(h, log) // computed again
	fmt.Print(inv)

	// Output:
	// [0.5, 0]
	// [0, 0.5]
	// level=INFO msg="getting cached inverse" epoch=0
	// [0.5, 0]
	// [0, 0.5]
	// [0.25, 0]
	// [0, 0.25]
}

func ExampleSolveSystem() {
	a, _ := matrix.NewDenseFrom([][]float64{{2, 0}, {0, 4}})
	h := invcache.New(a)
	b, _ := matrix.NewDenseFrom([][]float64{{1}, {1}})

	x, err := invcache.SolveSystem(h, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(x)

	// Output:
	// [0.5]
	// [0.25]
}
