// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"
	"html/template"
	"io"
	"strings"
)

// AriaLabel is the accessible name of every rendered chart.
const AriaLabel = "placeholder chart"

// Base classes of the HTML container and bars.
const (
	containerClass = "flex items-end gap-1 rounded-xl border bg-neutral-50 p-3"
	barClass       = "w-3 flex-1 rounded-t bg-neutral-300"
)

var htmlTmpl = template.Must(template.New("html").Parse(
	`<div role="img" aria-label="{{.Label}}" class="{{.Class}}" style="height: {{.Height}}px">` +
		`{{range .Bars}}<div class="{{$.BarClass}}" style="height: {{.}}px"></div>{{end}}` +
		`</div>`))

var svgTmpl = template.Must(template.New("svg").Parse(
	`<svg xmlns="http://www.w3.org/2000/svg" role="img" aria-label="{{.Label}}" width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}">` +
		`{{range .Rects}}<rect x="{{.X}}" y="{{.Y}}" width="{{.W}}" height="{{.H}}"></rect>{{end}}` +
		`</svg>`))

// htmlView is the data bound to htmlTmpl.
type htmlView struct {
	Label    string
	Class    string
	BarClass string
	Height   int
	Bars     []int
}

// rect is one SVG bar.
type rect struct {
	X, Y, W, H int
}

// svgView is the data bound to svgTmpl.
type svgView struct {
	Label  string
	Width  int
	Height int
	Rects  []rect
}

// RenderHTML writes the chart as a flex container with one <div> per bar.
// Extra classes from WithClassName are appended to the container.
//
// Errors wrap ErrRender when w fails.
func (p *Placeholder) RenderHTML(w io.Writer) error {
	view := htmlView{
		Label:    AriaLabel,
		Class:    strings.TrimSpace(containerClass + " " + p.cfg.className),
		BarClass: barClass,
		Height:   p.Height(),
		Bars:     p.bars,
	}
	if err := htmlTmpl.Execute(w, view); err != nil {
		return fmt.Errorf("%s: %w: %w", MethodRenderHTML, ErrRender, err)
	}
	return nil
}

// RenderSVG writes the chart as an SVG image. Bars are bottom-aligned,
// BarWidth wide and Gap apart; the canvas is exactly as wide as the bars.
//
// Errors wrap ErrRender when w fails.
func (p *Placeholder) RenderSVG(w io.Writer) error {
	n := len(p.bars)
	view := svgView{
		Label:  AriaLabel,
		Height: max(p.Height(), p.MaxBarHeight()),
		Rects:  make([]rect, n),
	}
	if n > 0 {
		view.Width = n*p.cfg.barWidth + (n-1)*p.cfg.gap
	}
	for i, h := range p.bars {
		view.Rects[i] = rect{
			X: i * (p.cfg.barWidth + p.cfg.gap),
			Y: view.Height - h,
			W: p.cfg.barWidth,
			H: h,
		}
	}
	if err := svgTmpl.Execute(w, view); err != nil {
		return fmt.Errorf("%s: %w: %w", MethodRenderSVG, ErrRender, err)
	}
	return nil
}
