// SPDX-License-Identifier: MIT

package clique

// membership converts a vertex index set into a length-n membership vector.
// n == 0 yields an empty, non-nil slice. Pure; indices outside [0,n) are ignored.
func membership(vertices []int, n int) []bool {
	out := make([]bool, n)
	for _, v := range vertices {
		if v >= 0 && v < n {
			out[v] = true
		}
	}

	return out
}

// result packages the engine's incumbent as a Result.
func (e *engine) result() Result {
	verts := make([]int, len(e.best))
	copy(verts, e.best)

	return Result{
		Members:  membership(verts, e.g.n),
		Vertices: verts,
		Weight:   e.bestW,
		Found:    e.found,
		Stats:    e.stats,
	}
}
