// Package lvbars draws deterministic placeholder bar charts: reproducible
// pseudo-random bars for dashboards that have no data yet, and the same
// scaling pipeline for real series once data arrives.
//
// 🚀 What is inside?
//
//	seqgen/ — seeded Park–Miller LCG producing values in [10, 109]
//	scale/  — zero-anchored normalizer mapping series into pixel heights
//	chart/  — placeholder chart composition + HTML, SVG and sparkline output
//	cmd/lvbars — CLI driven by LVBARS_* environment variables and flags
//
// ✨ Why?
//
//   - Deterministic – same seed, same bars, on every machine and test run
//   - Total – no input makes the pipeline fail or panic at runtime
//   - Pure – every function is safe for concurrent use
//
// Quick example:
//
//	p, _ := chart.New(chart.WithSeed(42), chart.WithBarCount(5))
//	fmt.Println(p.Bars())      // [25 122 68 100 136]
//	fmt.Println(p.Sparkline(0))
//
//	go get github.com/katalvlaran/lvbars
package lvbars
