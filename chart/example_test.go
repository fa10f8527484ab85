package chart_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvbars/chart"
)

// ExampleNew draws fixed values into a 120px container.
func ExampleNew() {
	p, err := chart.New(chart.WithValues(3, 6, 2, 9, 5), chart.WithHeight(120))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(p.Bars())
	fmt.Println(p.Sparkline(0))
	// Output:
	// [37 67 28 96 57]
	// ▂▅▁█▄
}

// ExamplePlaceholder_RenderSVG renders three bars as SVG.
func ExamplePlaceholder_RenderSVG() {
	p, _ := chart.New(chart.WithValues(0, 5, 10), chart.WithHeight(120), chart.WithMaxBarHeight(100))
	_ = p.RenderSVG(os.Stdout)
	fmt.Println()
	// Output:
	// <svg xmlns="http://www.w3.org/2000/svg" role="img" aria-label="placeholder chart" width="44" height="120" viewBox="0 0 44 120"><rect x="0" y="112" width="12" height="8"></rect><rect x="16" y="66" width="12" height="54"></rect><rect x="32" y="20" width="12" height="100"></rect></svg>
}
