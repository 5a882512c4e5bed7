// Copyright 2025 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ribbon turns ordered sequences of 3D points (polylines) into
// renderable triangle-strip ribbon meshes with arbitrary, per-point-varying
// width, which native 1-pixel line primitives cannot provide.
//
// Each input point is emitted twice, once per rail of the ribbon, carrying
// the point position, the adjacent points along the line (previous and
// next), a side flag, a width, texture coordinates, and a normalized
// position counter. The actual widening happens in the consuming vertex
// stage, which billboards each rail vertex toward the camera using the
// adjacency vectors; shaders/ribbon.wgsl is a reference implementation.
//
// [Tessellate] produces the attribute arrays for a point list. [Buffer]
// owns the arrays across rebuilds, tracks which attributes a host renderer
// needs to re-upload, and supports an O(V) FIFO [Buffer.Advance] that
// slides the ribbon forward by one point without re-tessellating. [Pick]
// finds the first ribbon segment within pick radius of a ray.
//
// All types are single-threaded: a Buffer may be used freely from a render
// loop but requires external locking to share across goroutines.
package ribbon
