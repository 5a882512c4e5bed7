// Copyright 2025 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ribbon

import (
	"slices"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestBufferSetPoints(t *testing.T) {
	b := &Buffer{}
	points := linePoints(3)
	err := b.SetPoints(points, nil)
	assert.NoError(t, err)
	assert.Equal(t, points, b.Points)
	assert.Equal(t, 6, b.Mesh.NumVertex())
	assert.True(t, b.NeedsConfig)
	assert.Equal(t, DirtyAll, b.Dirty)

	b.Clean()
	assert.False(t, b.NeedsConfig)
	assert.Equal(t, Dirty(0), b.Dirty)

	// same point count: contents refresh in the same backing arrays
	p0 := &b.Mesh.Position[0]
	moved := []math32.Vector3{math32.Vec3(5, 0, 0), math32.Vec3(6, 0, 0), math32.Vec3(7, 0, 0)}
	err = b.SetPoints(moved, nil)
	assert.NoError(t, err)
	assert.False(t, b.NeedsConfig)
	assert.Equal(t, DirtyAll, b.Dirty)
	assert.True(t, p0 == &b.Mesh.Position[0])
	assert.Equal(t, float32(5), b.Mesh.Position[0])

	// different point count: full replacement
	b.Clean()
	err = b.SetPoints(linePoints(5), nil)
	assert.NoError(t, err)
	assert.True(t, b.NeedsConfig)
	assert.Equal(t, 10, b.Mesh.NumVertex())
}

func TestBufferSetPointsEmpty(t *testing.T) {
	b := &Buffer{}
	err := b.SetPoints(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	points := linePoints(3)
	assert.NoError(t, b.SetPoints(points, nil))
	b.Clean()
	before := slices.Clone(b.Mesh.Position)

	// rejected rebuilds leave all state as it was
	err = b.SetPoints([]math32.Vector3{}, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, points, b.Points)
	assert.Equal(t, math32.ArrayF32(before), b.Mesh.Position)
	assert.Equal(t, Dirty(0), b.Dirty)
	assert.False(t, b.NeedsConfig)
}

func TestBufferWidthFunc(t *testing.T) {
	b := &Buffer{}
	err := b.SetPoints(linePoints(3), func(pos float32) float32 {
		return 2
	})
	assert.NoError(t, err)
	assert.Equal(t, math32.ArrayF32{2, 2, 2, 2, 2, 2}, b.Mesh.Width)

	// nil width keeps the current function on rebuild
	err = b.SetPoints(linePoints(3), nil)
	assert.NoError(t, err)
	assert.Equal(t, math32.ArrayF32{2, 2, 2, 2, 2, 2}, b.Mesh.Width)

	err = b.SetPoints(linePoints(3), func(pos float32) float32 {
		return 3
	})
	assert.NoError(t, err)
	assert.Equal(t, math32.ArrayF32{3, 3, 3, 3, 3, 3}, b.Mesh.Width)
}

func TestBufferSetPointsFlat(t *testing.T) {
	b := &Buffer{}
	flat := []float32{0, 0, 0, 1, 0, 0, 2, 0, 0}
	err := b.SetPointsFlat(flat, nil)
	assert.NoError(t, err)
	assert.Equal(t, flat, b.FlatPoints)
	assert.Equal(t, 6, b.Mesh.NumVertex())

	err = b.SetPointsFlat([]float32{1, 2}, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, flat, b.FlatPoints)
}

func TestBufferAdvance(t *testing.T) {
	b := &Buffer{}
	assert.NoError(t, b.SetPoints(linePoints(3), nil))
	b.Clean()

	before := slices.Clone(b.Mesh.Position)
	np := math32.Vec3(9, 9, 9)
	assert.NoError(t, b.Advance(np))

	// previous captures the positions exactly as they were pre-shift
	assert.Equal(t, math32.ArrayF32(before), b.Mesh.Previous)

	// positions shifted left one point with np appended on both rails
	var v math32.Vector3
	v.FromSlice(b.Mesh.Position, 0)
	assert.Equal(t, math32.Vec3(1, 0, 0), v)
	v.FromSlice(b.Mesh.Position, 3)
	assert.Equal(t, math32.Vec3(1, 0, 0), v)
	v.FromSlice(b.Mesh.Position, 6)
	assert.Equal(t, math32.Vec3(2, 0, 0), v)
	v.FromSlice(b.Mesh.Position, 12)
	assert.Equal(t, np, v)
	v.FromSlice(b.Mesh.Position, 15)
	assert.Equal(t, np, v)

	// next follows the post-shift positions, np in the freed end slot
	v.FromSlice(b.Mesh.Next, 0)
	assert.Equal(t, math32.Vec3(2, 0, 0), v)
	v.FromSlice(b.Mesh.Next, 6)
	assert.Equal(t, np, v)
	v.FromSlice(b.Mesh.Next, 12)
	assert.Equal(t, np, v)

	// only the point arrays are marked for upload
	assert.True(t, b.Dirty.Has(Position))
	assert.True(t, b.Dirty.Has(Previous))
	assert.True(t, b.Dirty.Has(Next))
	assert.False(t, b.Dirty.Has(Side))
	assert.False(t, b.Dirty.Has(Width))
	assert.False(t, b.Dirty.Has(UV))
	assert.False(t, b.Dirty.Has(Counter))
	assert.False(t, b.Dirty.Has(Index))
	assert.False(t, b.NeedsConfig)
}

func TestBufferAdvanceSinglePoint(t *testing.T) {
	b := &Buffer{}
	assert.NoError(t, b.SetPoints([]math32.Vector3{math32.Vec3(1, 2, 3)}, nil))
	b.Clean()

	// with one point the shift degenerates to a pure overwrite
	before := slices.Clone(b.Mesh.Position)
	np := math32.Vec3(4, 5, 6)
	assert.NoError(t, b.Advance(np))

	assert.Equal(t, math32.ArrayF32(before), b.Mesh.Previous)

	var v math32.Vector3
	v.FromSlice(b.Mesh.Position, 0)
	assert.Equal(t, np, v)
	v.FromSlice(b.Mesh.Position, 3)
	assert.Equal(t, np, v)
	v.FromSlice(b.Mesh.Next, 0)
	assert.Equal(t, np, v)
	v.FromSlice(b.Mesh.Next, 3)
	assert.Equal(t, np, v)

	assert.True(t, b.Dirty.Has(Position))
	assert.True(t, b.Dirty.Has(Previous))
	assert.True(t, b.Dirty.Has(Next))
	assert.False(t, b.NeedsConfig)
}

func TestBufferAdvanceUninitialized(t *testing.T) {
	b := &Buffer{}
	err := b.Advance(math32.Vec3(1, 2, 3))
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestNewBuffer(t *testing.T) {
	b, err := NewBuffer(linePoints(4), nil)
	assert.NoError(t, err)
	assert.Equal(t, 8, b.Mesh.NumVertex())

	_, err = NewBuffer(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
