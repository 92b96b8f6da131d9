package softpipe

import "github.com/go-gl/mathgl/mgl32"

// Camera is a perspective camera with a position and Euler rotation
// (pitch, yaw, roll in radians, applied roll·pitch·yaw). It produces
// the view-projection matrix shaders expect at matrix slot 0.
type Camera struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3 // pitch (x), yaw (y), roll (z)

	projection mgl32.Mat4
}

// NewCamera creates a camera with a perspective projection. fovy is the
// vertical field of view in radians.
func NewCamera(fovy, aspect, near, far float32) *Camera {
	return &Camera{
		projection: mgl32.Perspective(fovy, aspect, near, far),
	}
}

// View returns the world-to-camera matrix for the current position and
// rotation.
func (c *Camera) View() mgl32.Mat4 {
	rotate := mgl32.HomogRotate3DZ(c.Rotation[2]).
		Mul4(mgl32.HomogRotate3DX(c.Rotation[0])).
		Mul4(mgl32.HomogRotate3DY(c.Rotation[1]))
	translate := mgl32.Translate3D(-c.Position[0], -c.Position[1], -c.Position[2])
	return rotate.Mul4(translate)
}

// Projection returns the perspective projection matrix.
func (c *Camera) Projection() mgl32.Mat4 {
	return c.projection
}

// ViewProjection returns projection · view, the matrix that takes
// model-space positions to clip space when the model transform is
// identity.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.projection.Mul4(c.View())
}
