package tint

// mat3 represents a 3x3 linear transformation matrix over color
// channels, in row-major order:
//
//	| m0  m1  m2 |
//	| m3  m4  m5 |
//	| m6  m7  m8 |
//
// It carries the "linear part" of a space conversion (primaries and
// white-point change between working spaces).
type mat3 [9]float32

// mat3Identity is the identity transformation.
var mat3Identity = mat3{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

// mulVec applies the matrix to a channel triple.
func (m mat3) mulVec(x, y, z float32) (float32, float32, float32) {
	return m[0]*x + m[1]*y + m[2]*z,
		m[3]*x + m[4]*y + m[5]*z,
		m[6]*x + m[7]*y + m[8]*z
}

// mul returns m * n, the matrix applying n first and then m.
func (m mat3) mul(n mat3) mat3 {
	var out mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row*3+col] = m[row*3]*n[col] + m[row*3+1]*n[3+col] + m[row*3+2]*n[6+col]
		}
	}
	return out
}
