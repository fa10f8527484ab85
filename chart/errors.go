// SPDX-License-Identifier: MIT
// Package: lvbars/chart
//
// errors.go — sentinel errors for the chart package.
//
// Callers branch with errors.Is; messages carry the method name as context.

package chart

import "errors"

// Method names used as error context.
const (
	MethodNew        = "New"
	MethodRenderSVG  = "RenderSVG"
	MethodRenderHTML = "RenderHTML"
)

// ErrInvalidOptions indicates a resolved option set that cannot be drawn,
// e.g. an explicit max bar height below the min bar height. The underlying
// scale sentinel is wrapped as well.
var ErrInvalidOptions = errors.New("chart: invalid options")

// ErrRender indicates the output writer rejected the rendered markup.
var ErrRender = errors.New("chart: render failed")
