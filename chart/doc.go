// SPDX-License-Identifier: MIT
// Package chart composes seqgen and scale into a placeholder bar chart: a row
// of bars drawn from caller data, or from a seeded pseudo-random sequence when
// no data is available yet.
//
// Pipeline:
//
//	values (or seqgen.Generate(BarCount, Seed)) ─► scale.Scale ─► heights ─► render
//
// Renderers:
//   - RenderHTML — a flex container of <div> bars (Tailwind classes).
//   - RenderSVG  — one bottom-aligned <rect> per bar.
//   - Sparkline  — Unicode block characters ▁▂▃▄▅▆▇█ for terminals.
//
// Every renderer draws exactly one element per height, in input order, and
// uses the height verbatim.
//
// Usage:
//
//	p, err := chart.New(chart.WithBarCount(32), chart.WithSeed(97))
//	if err != nil { ... }
//	_ = p.RenderHTML(w)
//
//	p, _ = chart.New(chart.WithValues(3, 6, 2, 9, 5), chart.WithHeight(120))
//	fmt.Println(p.Sparkline(0))
//
// A *Placeholder is immutable after New and safe for concurrent use.
package chart
