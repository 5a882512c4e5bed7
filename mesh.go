// Copyright 2025 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ribbon

import (
	"fmt"
	"math"

	"cogentcore.org/core/gpu/shape"
	"cogentcore.org/core/math32"
)

// Attribute is one of the named per-vertex attribute buffers making up a
// ribbon [Mesh]. Host renderers register attribute buffers under these
// names and re-upload the ones reported dirty by a [Buffer].
type Attribute int32

const (
	Position Attribute = iota
	Previous
	Next
	Side
	Width
	UV
	Counter
	Index

	AttributesN
)

var attributeNames = [AttributesN]string{
	"position", "previous", "next", "side", "width", "uv", "counters", "index",
}

func (a Attribute) String() string {
	if a < 0 || a >= AttributesN {
		return fmt.Sprintf("Attribute(%d)", int32(a))
	}
	return attributeNames[a]
}

// Components returns the number of components per vertex for this
// attribute: 3 for the point vectors, 2 for texture coordinates,
// 1 for everything else (index entries are 1 unsigned integer each).
func (a Attribute) Components() int {
	switch a {
	case Position, Previous, Next:
		return 3
	case UV:
		return 2
	default:
		return 1
	}
}

// Dirty is a bit set of [Attribute]s whose contents have changed since the
// host renderer last uploaded them.
type Dirty int32

// DirtyAll has every attribute marked.
const DirtyAll Dirty = 1<<AttributesN - 1

// Add marks the given attribute as needing upload.
func (d *Dirty) Add(a Attribute) {
	*d |= 1 << a
}

// Has returns whether the given attribute needs upload.
func (d Dirty) Has(a Attribute) bool {
	return d&(1<<a) != 0
}

// Reset clears all dirty marks.
func (d *Dirty) Reset() {
	*d = 0
}

// Mesh holds the tessellated vertex attribute arrays for one ribbon.
// Every input point contributes two vertices, one per rail, so all
// per-vertex arrays have 2N entries (times the component count) for N
// input points, and Index holds 6 entries per segment, 6(N-1) total.
type Mesh struct {

	// Position is the source point for each vertex, duplicated per rail.
	Position math32.ArrayF32

	// Previous is the point one step back along the line for each vertex,
	// with loop-aware substitution at the first point.
	Previous math32.ArrayF32

	// Next is the point one step forward along the line for each vertex,
	// with loop-aware substitution at the last point.
	Next math32.ArrayF32

	// Side is +1 for the left-rail vertex and -1 for the right-rail vertex
	// of each point, in emission order.
	Side math32.ArrayF32

	// Width is the per-point width, duplicated per rail.
	Width math32.ArrayF32

	// UV holds (u,v) per vertex: u is the normalized position along the
	// line in [0,1], v is 0 on the left rail and 1 on the right.
	UV math32.ArrayF32

	// Counter is the normalized position along the line in [0,1] per
	// vertex, independent of width, for dash and gradient effects.
	Counter math32.ArrayF32

	// Index is the triangle index list: two triangles per segment.
	Index math32.ArrayU32
}

// NumVertex returns the number of vertices (2 per input point).
func (ms *Mesh) NumVertex() int {
	return len(ms.Position) / 3
}

// NumIndex returns the number of triangle index entries.
func (ms *Mesh) NumIndex() int {
	return len(ms.Index)
}

// BBox returns the bounding box of the current vertex positions.
func (ms *Mesh) BBox() math32.Box3 {
	return shape.BBoxFromVtxs(ms.Position, 0, ms.NumVertex())
}

// BoundingSphere returns a bounding sphere enclosing the current vertex
// positions, for coarse pick rejection.
func (ms *Mesh) BoundingSphere() math32.Sphere {
	return ms.BBox().GetBoundingSphere()
}

// IndexesU16 returns the index list in the 16-bit form used for index
// buffer upload, returning [ErrIndexOverflow] if any index does not fit.
func (ms *Mesh) IndexesU16() ([]uint16, error) {
	ixs := make([]uint16, len(ms.Index))
	for i, ix := range ms.Index {
		if ix > math.MaxUint16 {
			return nil, fmt.Errorf("%w: index %d does not fit in 16 bits", ErrIndexOverflow, ix)
		}
		ixs[i] = uint16(ix)
	}
	return ixs, nil
}
