// Package meshes owns the GPU geometry for the five primitive shapes the
// scene is built from. Each shape is generated once on its Load*Mesh call and
// drawn any number of times per frame with Draw*Mesh.
//
// Vertex layout is position (3), normal (3), texture coordinate (2),
// interleaved, matching the attribute locations in assets/shaders/scene.vert.
package meshes

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

const vertexStride = 8 // floats per vertex: position, normal, uv

// Mesh resolution settings.
const (
	cylinderSegments = 36
	coneSegments     = 36
	sphereRings      = 24
	sphereSectors    = 36
)

type glMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Library holds the uploaded primitive meshes. The zero value is usable;
// drawing a shape that has not been loaded is a no-op.
type Library struct {
	plane    glMesh
	cylinder glMesh
	cone     glMesh
	box      glMesh
	sphere   glMesh

	// Index count of the cone's side surface; indices past it form the
	// base cap, drawn only when requested.
	coneSideCount int32
}

func NewLibrary() *Library {
	return &Library{}
}

func uploadMesh(vertices []float32, indices []uint32) glMesh {
	var m glMesh

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32(vertexStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)

	gl.BindVertexArray(0)

	m.indexCount = int32(len(indices))
	return m
}

func (m *glMesh) draw(count int32) {
	if m.indexCount == 0 || count == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

func (m *glMesh) destroy() {
	if m.vao == 0 {
		return
	}
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	*m = glMesh{}
}

// LoadPlaneMesh uploads the plane geometry
func (l *Library) LoadPlaneMesh() {
	vertices, indices := planeGeometry()
	l.plane = uploadMesh(vertices, indices)
}

// LoadCylinderMesh uploads the cylinder geometry
func (l *Library) LoadCylinderMesh() {
	vertices, indices := cylinderGeometry(cylinderSegments)
	l.cylinder = uploadMesh(vertices, indices)
}

// LoadConeMesh uploads the cone geometry
func (l *Library) LoadConeMesh() {
	vertices, indices, sideCount := coneGeometry(coneSegments)
	l.cone = uploadMesh(vertices, indices)
	l.coneSideCount = int32(sideCount)
}

// LoadBoxMesh uploads the box geometry
func (l *Library) LoadBoxMesh() {
	vertices, indices := boxGeometry()
	l.box = uploadMesh(vertices, indices)
}

// LoadSphereMesh uploads the sphere geometry
func (l *Library) LoadSphereMesh() {
	vertices, indices := sphereGeometry(sphereRings, sphereSectors)
	l.sphere = uploadMesh(vertices, indices)
}

// DrawPlaneMesh issues the draw call for the plane
func (l *Library) DrawPlaneMesh() {
	l.plane.draw(l.plane.indexCount)
}

// DrawCylinderMesh issues the draw call for the cylinder
func (l *Library) DrawCylinderMesh() {
	l.cylinder.draw(l.cylinder.indexCount)
}

// DrawConeMesh issues the draw call for the cone, including the base cap
// only when capped is true
func (l *Library) DrawConeMesh(capped bool) {
	count := l.coneSideCount
	if capped {
		count = l.cone.indexCount
	}
	l.cone.draw(count)
}

// DrawBoxMesh issues the draw call for the box
func (l *Library) DrawBoxMesh() {
	l.box.draw(l.box.indexCount)
}

// DrawSphereMesh issues the draw call for the sphere
func (l *Library) DrawSphereMesh() {
	l.sphere.draw(l.sphere.indexCount)
}

// Destroy releases all uploaded GL buffers
func (l *Library) Destroy() {
	l.plane.destroy()
	l.cylinder.destroy()
	l.cone.destroy()
	l.box.destroy()
	l.sphere.destroy()
	l.coneSideCount = 0
}
