package lightshape

import (
	"github.com/OpenTraceLab/OpenTraceIES/pkg/ies"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// MirrorYZ reflects through the YZ plane (x -> -x).
	MirrorYZ = mgl32.Mat4FromRows(
		mgl32.Vec4{-1, 0, 0, 0},
		mgl32.Vec4{0, 1, 0, 0},
		mgl32.Vec4{0, 0, 1, 0},
		mgl32.Vec4{0, 0, 0, 1},
	)

	// MirrorXZ reflects through the XZ plane (y -> -y).
	MirrorXZ = mgl32.Mat4FromRows(
		mgl32.Vec4{1, 0, 0, 0},
		mgl32.Vec4{0, -1, 0, 0},
		mgl32.Vec4{0, 0, 1, 0},
		mgl32.Vec4{0, 0, 0, 1},
	)

	// RotateZ90 rotates a quarter turn counterclockwise around z.
	RotateZ90 = mgl32.Mat4FromRows(
		mgl32.Vec4{0, -1, 0, 0},
		mgl32.Vec4{1, 0, 0, 0},
		mgl32.Vec4{0, 0, 1, 0},
		mgl32.Vec4{0, 0, 0, 1},
	)
)

// mirror completes a partial web according to its symmetry. Every step
// appends a transformed copy of all polylines present at that point.
func mirror(plines Polylines, symmetry ies.Symmetry) Polylines {
	switch symmetry {
	case ies.SymmetryAxial:
		plines = cloneAndTransform(plines, MirrorYZ)
		plines = cloneAndTransform(plines, RotateZ90)
	case ies.SymmetryQuadrant:
		plines = cloneAndTransform(plines, MirrorXZ)
		plines = cloneAndTransform(plines, MirrorYZ)
	case ies.SymmetryPlane:
		plines = cloneAndTransform(plines, MirrorXZ)
	}
	return plines
}

// cloneAndTransform appends a copy of every polyline transformed by m.
func cloneAndTransform(plines Polylines, m mgl32.Mat4) Polylines {
	n := len(plines)
	out := make(Polylines, n, 2*n)
	copy(out, plines)
	for _, pline := range plines {
		clone := make(Polyline, len(pline))
		for i, p := range pline {
			clone[i] = transformPoint(m, p)
		}
		out = append(out, clone)
	}
	return out
}

func transformPoint(m mgl32.Mat4, p Point) Point {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}
