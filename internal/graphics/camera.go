package graphics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera handles the view and projection matrices for the fixed scene viewpoint
type Camera struct {
	Position    mgl32.Vec3
	Target      mgl32.Vec3
	Up          mgl32.Vec3
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
}

func NewCamera(width, height int, fov float32) *Camera {
	return &Camera{
		Position:    mgl32.Vec3{0.0, 5.5, 14.0},
		Target:      mgl32.Vec3{0.0, 3.5, 0.0},
		Up:          mgl32.Vec3{0.0, 1.0, 0.0},
		AspectRatio: float32(width) / float32(height),
		FOV:         fov,
		NearPlane:   0.1,
		FarPlane:    100.0,
	}
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// Upload pushes the view and projection matrices plus the viewer position
// (read by the specular term in the fragment shader) into the shader.
func (c *Camera) Upload(s *Shader) {
	s.SetMatrix4("view", c.GetViewMatrix())
	s.SetMatrix4("projection", c.GetProjectionMatrix())
	s.SetVector3("viewPosition", c.Position.X(), c.Position.Y(), c.Position.Z())
}
