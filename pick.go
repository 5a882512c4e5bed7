// Copyright 2025 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ribbon

import "cogentcore.org/core/math32"

// PickOptions parameterizes [Pick].
type PickOptions struct {

	// LineWidth is the global width scale applied to the per-point
	// widths, matching [Params.LineWidth] on the rendered ribbon.
	LineWidth float32

	// Threshold is extra pick radius around each segment, for easier
	// selection of thin lines.
	Threshold float32

	// Near and Far bound the accepted world-space distance from the ray
	// origin, matching the camera planes.
	Near, Far float32

	// Segmented indicates the index list holds disjoint segment pairs,
	// so scanning steps by 2 instead of every consecutive pair.
	Segmented bool
}

// Defaults sets unit line width and an unbounded far plane.
func (po *PickOptions) Defaults() {
	po.LineWidth = 1
	po.Far = math32.Infinity
}

// Hit is one ray-ribbon intersection.
type Hit struct {

	// Distance is the world-space distance from the ray origin to Point.
	Distance float32

	// Point is the closest point on the ray to the accepted segment, in
	// world coordinates.
	Point math32.Vector3

	// Index is the offset into the index array of the accepted segment's
	// first entry.
	Index int
}

// Pick returns the first ribbon segment within pick radius of the given
// world-space ray, or false if there is none. sphere is the mesh bounding
// sphere in local coordinates and world is the mesh world transform;
// index, pos, and width are the ribbon's attribute arrays. A nil opts
// uses [PickOptions.Defaults]. Each segment's pick radius is
// Threshold + LineWidth*width/2 with the segment width read from
// width[i/3] (1 when out of range, as for non-ribbon geometry).
//
// The scan stops at the first accepted segment rather than searching for
// the globally nearest one; consumers depend on first-hit semantics for
// performance.
func Pick(ray math32.Ray, sphere math32.Sphere, world *math32.Matrix4, index math32.ArrayU32, pos, width math32.ArrayF32, opts *PickOptions) (Hit, bool) {
	var opt PickOptions
	if opts == nil {
		opt.Defaults()
	} else {
		opt = *opts
	}

	// coarse reject against the world-space bounding sphere
	sp := sphere
	sp.MulMatrix4(world)
	if !ray.IsIntersectionSphere(sp) {
		return Hit{}, false
	}

	// per-segment math happens in local space, where pos is stored
	inv, err := world.Inverse()
	if err != nil {
		return Hit{}, false
	}
	lray := math32.Ray{
		Origin: ray.Origin.MulMatrix4AsVector4(inv, 1),
		Dir:    ray.Dir.MulMatrix4AsVector4(inv, 0).Normal(),
	}

	step := 1
	if opt.Segmented {
		step = 2
	}
	for i := 0; i+1 < len(index); i += step {
		var va, vb math32.Vector3
		va.FromSlice(pos, int(index[i])*3)
		vb.FromSlice(pos, int(index[i+1])*3)

		w := float32(1)
		if wi := i / 3; wi < len(width) {
			w = width[wi]
		}
		prec := opt.Threshold + opt.LineWidth*w/2

		var onRay math32.Vector3
		distSq := lray.DistanceSquaredToSegment(va, vb, &onRay, nil)
		if distSq > prec*prec {
			continue
		}
		wpt := onRay.MulMatrix4AsVector4(world, 1)
		dist := ray.Origin.DistanceTo(wpt)
		if dist < opt.Near || dist > opt.Far {
			continue
		}
		return Hit{Distance: dist, Point: wpt, Index: i}, true
	}
	return Hit{}, false
}
