package meshes

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// The generators below produce interleaved vertex data (position, normal, uv)
// plus triangle indices for unit-sized shapes; scene objects size them through
// the model matrix. Cylinder and cone stand on the XZ plane (base y=0, top
// y=1) so a Y scale is the shape's height above the floor. Plane, box and
// sphere are centered on the origin.

func appendVertex(v []float32, pos, normal mgl32.Vec3, u, w float32) []float32 {
	return append(v,
		pos.X(), pos.Y(), pos.Z(),
		normal.X(), normal.Y(), normal.Z(),
		u, w)
}

// planeGeometry is a 2x2 quad in the XZ plane facing up.
func planeGeometry() ([]float32, []uint32) {
	up := mgl32.Vec3{0, 1, 0}
	var vertices []float32
	vertices = appendVertex(vertices, mgl32.Vec3{-1, 0, -1}, up, 0, 0)
	vertices = appendVertex(vertices, mgl32.Vec3{1, 0, -1}, up, 1, 0)
	vertices = appendVertex(vertices, mgl32.Vec3{1, 0, 1}, up, 1, 1)
	vertices = appendVertex(vertices, mgl32.Vec3{-1, 0, 1}, up, 0, 1)
	indices := []uint32{0, 1, 2, 0, 2, 3}
	return vertices, indices
}

// boxGeometry is a unit cube centered on the origin, four vertices per face
// so each face gets flat normals and a full 0..1 uv range.
func boxGeometry() ([]float32, []uint32) {
	type boxFace struct {
		normal  mgl32.Vec3
		corners [4]mgl32.Vec3
	}
	faces := []boxFace{
		{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}}},
		{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}}},
		{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}}},
		{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}}},
		{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}}},
		{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}}},
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	var vertices []float32
	var indices []uint32
	for _, f := range faces {
		base := uint32(len(vertices) / vertexStride)
		for i, c := range f.corners {
			vertices = appendVertex(vertices, c, f.normal, uvs[i][0], uvs[i][1])
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return vertices, indices
}

// cylinderGeometry is a radius-1 cylinder from y=0 to y=1 with both caps.
func cylinderGeometry(segments int) ([]float32, []uint32) {
	var vertices []float32
	var indices []uint32

	// Side surface: two rings sharing smooth radial normals. The seam
	// vertex is duplicated so uv can wrap from 0 to 1.
	for i := 0; i <= segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		x := float32(math.Cos(angle))
		z := float32(math.Sin(angle))
		normal := mgl32.Vec3{x, 0, z}
		u := float32(i) / float32(segments)
		vertices = appendVertex(vertices, mgl32.Vec3{x, 0, z}, normal, u, 0)
		vertices = appendVertex(vertices, mgl32.Vec3{x, 1, z}, normal, u, 1)
	}
	for i := 0; i < segments; i++ {
		bottom := uint32(2 * i)
		top := bottom + 1
		nextBottom := bottom + 2
		nextTop := bottom + 3
		indices = append(indices, bottom, top, nextTop, bottom, nextTop, nextBottom)
	}

	// Caps: a center vertex fanned to a ring with flat normals.
	for _, end := range []struct {
		y      float32
		normal mgl32.Vec3
	}{
		{0, mgl32.Vec3{0, -1, 0}},
		{1, mgl32.Vec3{0, 1, 0}},
	} {
		center := uint32(len(vertices) / vertexStride)
		vertices = appendVertex(vertices, mgl32.Vec3{0, end.y, 0}, end.normal, 0.5, 0.5)
		for i := 0; i <= segments; i++ {
			angle := 2 * math.Pi * float64(i) / float64(segments)
			x := float32(math.Cos(angle))
			z := float32(math.Sin(angle))
			vertices = appendVertex(vertices,
				mgl32.Vec3{x, end.y, z}, end.normal, 0.5+x/2, 0.5+z/2)
		}
		for i := 0; i < segments; i++ {
			indices = append(indices, center, center+1+uint32(i), center+2+uint32(i))
		}
	}

	return vertices, indices
}

// coneGeometry is a radius-1 cone with its base at y=0 and apex at y=1. The
// returned sideCount is the number of side-surface indices; the base cap
// indices follow so the cap can be skipped at draw time.
func coneGeometry(segments int) (vertices []float32, indices []uint32, sideCount int) {
	// Side surface. For a unit cone the slope makes the smooth normal
	// (cos, 1, sin) normalized. The apex vertex is duplicated per segment
	// to keep normals and uvs continuous.
	for i := 0; i <= segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		x := float32(math.Cos(angle))
		z := float32(math.Sin(angle))
		normal := mgl32.Vec3{x, 1, z}.Normalize()
		u := float32(i) / float32(segments)
		vertices = appendVertex(vertices, mgl32.Vec3{x, 0, z}, normal, u, 0)
		vertices = appendVertex(vertices, mgl32.Vec3{0, 1, 0}, normal, u, 1)
	}
	for i := 0; i < segments; i++ {
		base := uint32(2 * i)
		indices = append(indices, base, base+1, base+2)
	}
	sideCount = len(indices)

	// Base cap.
	down := mgl32.Vec3{0, -1, 0}
	center := uint32(len(vertices) / vertexStride)
	vertices = appendVertex(vertices, mgl32.Vec3{0, 0, 0}, down, 0.5, 0.5)
	for i := 0; i <= segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		x := float32(math.Cos(angle))
		z := float32(math.Sin(angle))
		vertices = appendVertex(vertices, mgl32.Vec3{x, 0, z}, down, 0.5+x/2, 0.5+z/2)
	}
	for i := 0; i < segments; i++ {
		indices = append(indices, center, center+1+uint32(i), center+2+uint32(i))
	}

	return vertices, indices, sideCount
}

// sphereGeometry is a unit sphere built from latitude rings and longitude
// sectors, normals pointing outward.
func sphereGeometry(rings, sectors int) ([]float32, []uint32) {
	var vertices []float32
	var indices []uint32

	for r := 0; r <= rings; r++ {
		phi := math.Pi * float64(r) / float64(rings)
		y := float32(math.Cos(phi))
		ringRadius := float32(math.Sin(phi))
		for s := 0; s <= sectors; s++ {
			theta := 2 * math.Pi * float64(s) / float64(sectors)
			x := ringRadius * float32(math.Cos(theta))
			z := ringRadius * float32(math.Sin(theta))
			pos := mgl32.Vec3{x, y, z}
			vertices = appendVertex(vertices, pos, pos,
				float32(s)/float32(sectors), float32(r)/float32(rings))
		}
	}

	stride := uint32(sectors + 1)
	for r := 0; r < rings; r++ {
		for s := 0; s < sectors; s++ {
			a := uint32(r)*stride + uint32(s)
			b := a + stride
			indices = append(indices, a, b, b+1, a, b+1, a+1)
		}
	}

	return vertices, indices
}
