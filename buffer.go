// Copyright 2025 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ribbon

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Buffer owns the tessellated attribute arrays for one ribbon across full
// rebuilds ([Buffer.SetPoints]) and incremental FIFO updates
// ([Buffer.Advance]), and tracks what a host renderer must re-upload.
// A Buffer is not safe for concurrent use without external locking.
type Buffer struct {

	// Mesh holds the derived attribute arrays. References to the arrays
	// are invalidated by any SetPoints that changes the vertex count.
	Mesh Mesh

	// Points is the most recently supplied point sequence, kept only for
	// retrieval: the working copy is the Mesh arrays.
	Points []math32.Vector3

	// FlatPoints is the most recently supplied flat point sequence when
	// the flat variant was used, nil otherwise.
	FlatPoints []float32

	// Width is the current width function; nil means constant width 1.
	Width WidthFunc

	// Dirty is the set of attributes whose contents changed since the
	// host last called [Buffer.Clean].
	Dirty Dirty

	// NeedsConfig is set when a rebuild changed the vertex count, so the
	// host must re-register its attribute buffers instead of refreshing
	// their contents in place.
	NeedsConfig bool
}

// NewBuffer returns a Buffer tessellated from the given points.
// See [Buffer.SetPoints].
func NewBuffer(points []math32.Vector3, width WidthFunc) (*Buffer, error) {
	b := &Buffer{}
	if err := b.SetPoints(points, width); err != nil {
		return nil, err
	}
	return b, nil
}

// SetPoints stores the given point sequence as the current line and
// rebuilds all derived arrays. A non-nil width function replaces the
// current one. On error, no state changes. After a successful call all
// attributes are marked dirty, and NeedsConfig reports whether the vertex
// count changed; when it did not, the same backing arrays are refreshed
// in place so device buffers need no reallocation.
func (b *Buffer) SetPoints(points []math32.Vector3, width WidthFunc) error {
	return b.setPoints(points, nil, width)
}

// SetPointsFlat is [Buffer.SetPoints] for a polyline given as a flat
// array of 3*N coordinate scalars.
func (b *Buffer) SetPointsFlat(flat []float32, width WidthFunc) error {
	points, err := pointsFromFlat(flat)
	if err != nil {
		return err
	}
	return b.setPoints(points, flat, width)
}

func (b *Buffer) setPoints(points []math32.Vector3, flat []float32, width WidthFunc) error {
	wf := b.Width
	if width != nil {
		wf = width
	}
	onv := b.Mesh.NumVertex()
	if err := b.Mesh.Tessellate(points, wf); err != nil {
		return err
	}
	b.Points = points
	b.FlatPoints = flat
	b.Width = wf
	b.Dirty = DirtyAll
	if b.Mesh.NumVertex() != onv {
		b.NeedsConfig = true
	}
	return nil
}

// Advance shifts the ribbon forward by one point without re-tessellating:
// the oldest point drops off and p becomes the new last point on both
// rails. The whole previous array captures the positions exactly as they
// were before the shift, and next is rebuilt from the shifted positions.
// Side, width, uv, counter, and index are per-slot constants under a pure
// FIFO slide and are left untouched; only position, previous, and next
// are marked dirty. O(V) in the current vertex count.
func (b *Buffer) Advance(p math32.Vector3) error {
	if b.Mesh.NumVertex() == 0 {
		return fmt.Errorf("%w: Advance before SetPoints", ErrNotInitialized)
	}
	pos, prev, next := b.Mesh.Position, b.Mesh.Previous, b.Mesh.Next
	l := len(pos)

	copy(prev, pos)

	// drop the oldest point (6 scalars: 2 rails x 3 components)
	copy(pos, pos[6:])
	p.ToSlice(pos, l-6)
	p.ToSlice(pos, l-3)

	copy(next, pos[6:])
	p.ToSlice(next, l-6)
	p.ToSlice(next, l-3)

	b.Dirty.Add(Position)
	b.Dirty.Add(Previous)
	b.Dirty.Add(Next)
	return nil
}

// Clean clears the dirty set and the reconfigure flag. Hosts call this
// after syncing device buffers.
func (b *Buffer) Clean() {
	b.Dirty.Reset()
	b.NeedsConfig = false
}

// Pick intersects the given world-space ray with this ribbon using its
// own arrays and bounding sphere, with world as the ribbon's world
// transform. It returns (nil, nil) when nothing is within pick radius,
// and [ErrNotInitialized] before any successful SetPoints.
func (b *Buffer) Pick(ray math32.Ray, world *math32.Matrix4, opts *PickOptions) (*Hit, error) {
	if b.Mesh.NumVertex() == 0 {
		return nil, fmt.Errorf("%w: Pick before SetPoints", ErrNotInitialized)
	}
	ht, ok := Pick(ray, b.Mesh.BoundingSphere(), world, b.Mesh.Index, b.Mesh.Position, b.Mesh.Width, opts)
	if !ok {
		return nil, nil
	}
	return &ht, nil
}
