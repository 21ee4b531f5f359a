// Package render rasterises scene meshes onto ebiten images.
package render

import (
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"newera/internal/camera"
	"newera/internal/scene"
)

// clipDepth sits in front of the projection near plane so clipped vertices
// always project.
const clipDepth = 2 * camera.NearPlane

// ScreenTriangle is a projected triangle in pixel space.
type ScreenTriangle struct {
	X, Y  [3]float32
	Depth float32
	Color color.RGBA

	// GroupDepth is the view depth of the triangle's group anchor.
	GroupDepth float32
	Layer      scene.Layer
}

// Rasterize projects the mesh through view and returns the triangles ordered
// for painter's-algorithm drawing: groups far to near, the ground of a group
// before its boxes, then triangles far to near. Triangles are clipped at the
// near plane, and those lying wholly off one edge of the screen are dropped.
// dst is reused when it has capacity.
func Rasterize(dst []ScreenTriangle, m *scene.Mesh, view camera.View) []ScreenTriangle {
	dst = dst[:0]
	for i := range m.Triangles {
		tri := &m.Triangles[i]
		var poly [4]mgl64.Vec3
		n := clipNear(tri.V, view, &poly)
		if n < 3 {
			continue
		}
		var groupDepth float32
		if tri.Group >= 0 && tri.Group < len(m.Anchors) {
			groupDepth = float32(view.Depth(m.Anchors[tri.Group]))
		}
		for k := 1; k+1 < n; k++ {
			st, ok := project(view, poly[0], poly[k], poly[k+1])
			if !ok || offscreen(&st, view.W, view.H) {
				continue
			}
			st.Color = tri.Color
			st.GroupDepth = groupDepth
			st.Layer = tri.Layer
			dst = append(dst, st)
		}
	}
	sort.SliceStable(dst, func(i, j int) bool {
		a, b := &dst[i], &dst[j]
		if a.GroupDepth != b.GroupDepth {
			return a.GroupDepth > b.GroupDepth
		}
		if a.Layer != b.Layer {
			return a.Layer < b.Layer
		}
		return a.Depth > b.Depth
	})
	return dst
}

// clipNear keeps the part of v at least clipDepth in front of the eye. The
// result is a polygon of 0, 3 or 4 vertices written to out.
func clipNear(v [3]mgl64.Vec3, view camera.View, out *[4]mgl64.Vec3) int {
	var d [3]float64
	for k := range v {
		d[k] = view.Depth(v[k]) - clipDepth
	}
	n := 0
	for k := 0; k < 3; k++ {
		j := (k + 1) % 3
		if d[k] >= 0 {
			out[n] = v[k]
			n++
		}
		if (d[k] >= 0) != (d[j] >= 0) {
			t := d[k] / (d[k] - d[j])
			out[n] = v[k].Add(v[j].Sub(v[k]).Mul(t))
			n++
		}
	}
	return n
}

func project(view camera.View, a, b, c mgl64.Vec3) (ScreenTriangle, bool) {
	var st ScreenTriangle
	for k, v := range [3]mgl64.Vec3{a, b, c} {
		x, y, d, ok := view.Project(v)
		if !ok {
			return st, false
		}
		st.X[k], st.Y[k] = x, y
		st.Depth += d
	}
	st.Depth /= 3
	return st, true
}

func offscreen(t *ScreenTriangle, w, h float32) bool {
	allLeft, allRight, allAbove, allBelow := true, true, true, true
	for k := 0; k < 3; k++ {
		allLeft = allLeft && t.X[k] < 0
		allRight = allRight && t.X[k] > w
		allAbove = allAbove && t.Y[k] < 0
		allBelow = allBelow && t.Y[k] > h
	}
	return allLeft || allRight || allAbove || allBelow
}
