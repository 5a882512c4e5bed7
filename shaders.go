// Copyright 2025 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ribbon

import _ "embed"

// ShaderSource is the reference WGSL vertex + fragment stage consuming
// the attribute layout produced by [Tessellate], with uniforms matching
// [Params]. Hosts can compile it as-is or use it as a template for their
// own pipeline.
//
//go:embed shaders/ribbon.wgsl
var ShaderSource string
