// Copyright 2025 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ribbon

import (
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
)

// Params holds the shading parameters for rendering a ribbon. This
// package does not evaluate them: the host renderer passes them as
// uniforms to the shader stage (see [ShaderSource]), which does the
// camera-space billboarding and dash / alpha evaluation.
type Params struct {

	// Color is the ribbon color; its alpha is multiplied by Opacity.
	Color color.RGBA

	// Opacity is the overall alpha in [0,1].
	Opacity float32

	// LineWidth scales all per-point widths.
	LineWidth float32

	// Resolution is the viewport size in pixels, used by the vertex
	// stage for aspect ratio correction.
	Resolution math32.Vector2

	// SizeAttenuation makes the rendered width shrink with perspective
	// distance; when off, width is constant in screen space.
	SizeAttenuation bool

	// UseMap enables sampling the color texture.
	UseMap bool

	// UseAlphaMap enables sampling the alpha texture.
	UseAlphaMap bool

	// Repeat is the texture tiling repeat in u and v.
	Repeat math32.Vector2

	// UseDash enables dashing over the per-vertex counters.
	UseDash bool

	// DashArray is the length of one dash period in counter units.
	DashArray float32

	// DashOffset shifts the dash pattern along the line.
	DashOffset float32

	// DashRatio is the visible fraction of each dash period in [0,1].
	DashRatio float32

	// Visibility is the fraction of the line drawn, from the start,
	// in [0,1].
	Visibility float32

	// AlphaTest discards fragments with alpha at or below this value.
	AlphaTest float32
}

// Defaults sets standard shading parameters: opaque white, unit width,
// fully visible, no dashing.
func (pr *Params) Defaults() {
	pr.Color = colors.FromRGB(255, 255, 255)
	pr.Opacity = 1
	pr.LineWidth = 1
	pr.SizeAttenuation = true
	pr.Repeat.Set(1, 1)
	pr.DashRatio = 0.5
	pr.Visibility = 1
}
