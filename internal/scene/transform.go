package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// composeTransform builds the model matrix as
// Translate * RotateX * RotateY * RotateZ * Scale. Rotation angles are in
// degrees and apply in X, Y, Z order about the object's local origin, before
// translation; the order is significant since rotations do not commute.
func composeTransform(scale, rotationDeg, position mgl32.Vec3) mgl32.Mat4 {
	s := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(rotationDeg.X()))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(rotationDeg.Y()))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotationDeg.Z()))
	t := mgl32.Translate3D(position.X(), position.Y(), position.Z())

	return t.Mul4(rx).Mul4(ry).Mul4(rz).Mul4(s)
}

// SetTransformations composes the model matrix from the given scale, rotation
// (degrees) and position, and uploads it as the active shader's model-matrix
// uniform for the next draw call.
func (m *Manager) SetTransformations(scale, rotationDeg, position mgl32.Vec3) {
	if m.shader == nil {
		return
	}
	m.shader.SetMatrix4(uniformModel, composeTransform(scale, rotationDeg, position))
}
