package graphics

import "math"

// Mat4 is a 4x4 float32 matrix in column-major order, matching the
// uniform layout the shaders expect: m[c][r] is column c, row r.
type Mat4 [4][4]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Model builds the model matrix for a sprite. It rotates by the sprite
// angle (degrees, counter-clockwise), corrects the x axis by the
// window aspect ratio (height over width), encodes depth as z, and
// translates to the sprite position in clip space.
func Model(data SpriteData, aspect float32) Mat4 {
	a := float64(-data.Angle) * math.Pi / 180
	sin, cos := math.Sincos(a)
	return Mat4{
		{float32(cos) * aspect, float32(sin), 0, 0},
		{float32(-sin), float32(cos), 0, 0},
		{0, 0, float32(data.Depth) / 256, 0},
		{Coord(data.X), Coord(data.Y), 0, 1},
	}
}

// Perspective builds a perspective projection matrix for a window of
// the given pixel dimensions, with a 60 degree field of view.
func Perspective(width, height int) Mat4 {
	aspect := float32(height) / float32(width)

	const (
		fov   = math.Pi / 3
		zfar  = 1024.0
		znear = 0.1
	)
	f := float32(1 / math.Tan(fov/2))

	return Mat4{
		{f * aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (zfar + znear) / (zfar - znear), 1},
		{0, 0, -(2 * zfar * znear) / (zfar - znear), 1},
	}
}

// LookAt builds a view matrix from a camera position, a view
// direction, and an up vector.
func LookAt(position, direction, up [3]float32) Mat4 {
	f := norm3(direction)

	s := norm3([3]float32{
		up[1]*f[2] - up[2]*f[1],
		up[2]*f[0] - up[0]*f[2],
		up[0]*f[1] - up[1]*f[0],
	})

	u := [3]float32{
		f[1]*s[2] - f[2]*s[1],
		f[2]*s[0] - f[0]*s[2],
		f[0]*s[1] - f[1]*s[0],
	}

	p := [3]float32{
		-position[0]*s[0] - position[1]*s[1] - position[2]*s[2],
		-position[0]*u[0] - position[1]*u[1] - position[2]*u[2],
		-position[0]*f[0] - position[1]*f[1] - position[2]*f[2],
	}

	return Mat4{
		{s[0], u[0], f[0], 0},
		{s[1], u[1], f[1], 0},
		{s[2], u[2], f[2], 0},
		{p[0], p[1], p[2], 1},
	}
}

func norm3(v [3]float32) [3]float32 {
	l := float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
	if l == 0 {
		return v
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}

// Mul returns m * n, applying n first.
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k][r] * n[c][k]
			}
			out[c][r] = sum
		}
	}
	return out
}

// Transform applies the matrix to a vec4.
func (m Mat4) Transform(v [4]float32) [4]float32 {
	var out [4]float32
	for r := 0; r < 4; r++ {
		out[r] = m[0][r]*v[0] + m[1][r]*v[1] + m[2][r]*v[2] + m[3][r]*v[3]
	}
	return out
}

// TransformXY applies the matrix to a 2D point at z=0, w=1 and returns
// the transformed x and y.
func (m Mat4) TransformXY(x, y float32) (float32, float32) {
	out := m.Transform([4]float32{x, y, 0, 1})
	return out[0], out[1]
}
