// Copyright 2025 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ribbon

import (
	"fmt"
	"math"

	"cogentcore.org/core/base/slicesx"
	"cogentcore.org/core/math32"
)

// WidthFunc returns the ribbon width at the given normalized position
// along the line, in [0,1]. It is called once per input point per
// tessellation pass and must return a finite, non-negative value.
type WidthFunc func(pos float32) float32

// MaxPoints is the largest supported input point count: vertex indices
// must fit the 16-bit index buffers used for rendering, and each point
// emits two vertices.
const MaxPoints = (math.MaxUint16 + 1) / 2

// Tessellate expands the given polyline into fresh ribbon attribute
// arrays: 2 vertices per point and 2 triangles per segment. A nil width
// function gives every point width 1.
func Tessellate(points []math32.Vector3, width WidthFunc) (*Mesh, error) {
	ms := &Mesh{}
	if err := ms.Tessellate(points, width); err != nil {
		return nil, err
	}
	return ms, nil
}

// TessellateFlat is [Tessellate] for a polyline given as a flat array of
// 3*N coordinate scalars.
func TessellateFlat(flat []float32, width WidthFunc) (*Mesh, error) {
	points, err := pointsFromFlat(flat)
	if err != nil {
		return nil, err
	}
	return Tessellate(points, width)
}

// Tessellate rebuilds the mesh arrays in place from the given points,
// keeping the existing backing storage when the point count is unchanged.
// All validation happens before any array is written, so a failed call
// leaves prior contents fully intact.
func (ms *Mesh) Tessellate(points []math32.Vector3, width WidthFunc) error {
	n := len(points)
	if n == 0 {
		return fmt.Errorf("%w: empty point sequence", ErrInvalidInput)
	}
	if n > MaxPoints {
		return fmt.Errorf("%w: %d points need %d vertices, only %d fit 16-bit indices", ErrIndexOverflow, n, 2*n, 2*MaxPoints)
	}
	for i, pt := range points {
		if !finite(pt.X) || !finite(pt.Y) || !finite(pt.Z) {
			return fmt.Errorf("%w: point %d has non-finite component: %v", ErrInvalidInput, i, pt)
		}
	}
	widths, err := evalWidths(n, width)
	if err != nil {
		return err
	}

	nv := 2 * n
	ms.Position = slicesx.SetLength(ms.Position, nv*3)
	ms.Previous = slicesx.SetLength(ms.Previous, nv*3)
	ms.Next = slicesx.SetLength(ms.Next, nv*3)
	ms.Side = slicesx.SetLength(ms.Side, nv)
	ms.Width = slicesx.SetLength(ms.Width, nv)
	ms.UV = slicesx.SetLength(ms.UV, nv*2)
	ms.Counter = slicesx.SetLength(ms.Counter, nv)
	ms.Index = slicesx.SetLength(ms.Index, 6*(n-1))

	// exact coordinate equality of the endpoints makes this a closed loop,
	// wrapping the adjacency at both ends
	closed := n > 1 && points[0] == points[n-1]
	denom := float32(n - 1)
	if n == 1 {
		denom = 1
	}
	for j, pt := range points {
		c := float32(j) / denom
		pt.ToSlice(ms.Position, j*6)
		pt.ToSlice(ms.Position, j*6+3)

		var prev math32.Vector3
		switch {
		case j > 0:
			prev = points[j-1]
		case closed:
			prev = points[n-2]
		default:
			prev = points[0]
		}
		prev.ToSlice(ms.Previous, j*6)
		prev.ToSlice(ms.Previous, j*6+3)

		var next math32.Vector3
		switch {
		case j < n-1:
			next = points[j+1]
		case closed:
			next = points[1]
		default:
			next = points[n-1]
		}
		next.ToSlice(ms.Next, j*6)
		next.ToSlice(ms.Next, j*6+3)

		ms.Side[j*2] = 1
		ms.Side[j*2+1] = -1
		ms.Width[j*2] = widths[j]
		ms.Width[j*2+1] = widths[j]
		ms.UV[j*4] = c
		ms.UV[j*4+1] = 0
		ms.UV[j*4+2] = c
		ms.UV[j*4+3] = 1
		ms.Counter[j*2] = c
		ms.Counter[j*2+1] = c
	}

	// two triangles per segment quad, sharing the n+1 - n+2 diagonal;
	// winding must stay exactly this or faces cull incorrectly
	for j := 0; j < n-1; j++ {
		vb := uint32(2 * j)
		ib := j * 6
		ms.Index[ib] = vb
		ms.Index[ib+1] = vb + 1
		ms.Index[ib+2] = vb + 2
		ms.Index[ib+3] = vb + 2
		ms.Index[ib+4] = vb + 1
		ms.Index[ib+5] = vb + 3
	}
	return nil
}

func pointsFromFlat(flat []float32) ([]math32.Vector3, error) {
	if len(flat) == 0 || len(flat)%3 != 0 {
		return nil, fmt.Errorf("%w: flat point array length must be a positive multiple of 3, got %d", ErrInvalidInput, len(flat))
	}
	points := make([]math32.Vector3, len(flat)/3)
	for i := range points {
		points[i].FromSlice(flat, i*3)
	}
	return points, nil
}

func evalWidths(n int, width WidthFunc) ([]float32, error) {
	widths := make([]float32, n)
	denom := float32(n - 1)
	if n == 1 {
		denom = 1
	}
	for j := range widths {
		w := float32(1)
		if width != nil {
			w = width(float32(j) / denom)
		}
		if !finite(w) || w < 0 {
			return nil, fmt.Errorf("%w: width function returned %g at position %g", ErrInvalidInput, w, float32(j)/denom)
		}
		widths[j] = w
	}
	return widths, nil
}

func finite(x float32) bool {
	return !math32.IsNaN(x) && !math32.IsInf(x, 0)
}
