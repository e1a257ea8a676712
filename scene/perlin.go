package scene

import (
	"math"

	"github.com/ritobanrc/firework/types"
)

// Ken Perlin's reference permutation table. perlinPerm holds two copies so
// hash chains can index past 255 without wrapping explicitly.
var perlinTable = [256]int{
	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225,
	140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148,
	247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32,
	57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175,
	74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122,
	60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54,
	65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169,
	200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
	52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212,
	207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213,
	119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104,
	218, 246, 97, 228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241,
	81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157,
	184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93,
	222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}

var perlinPerm [512]int

func init() {
	for i, v := range perlinTable {
		perlinPerm[i] = v
		perlinPerm[i+256] = v
	}
}

// perlinNoise evaluates gradient noise at p, roughly in [-1, 1].
func perlinNoise(p types.Vec3) float32 {
	fx := float32(math.Floor(float64(p[0])))
	fy := float32(math.Floor(float64(p[1])))
	fz := float32(math.Floor(float64(p[2])))

	x0 := int(fx) & 255
	y0 := int(fy) & 255
	z0 := int(fz) & 255

	x := p[0] - fx
	y := p[1] - fy
	z := p[2] - fz

	u := perlinFade(x)
	v := perlinFade(y)
	w := perlinFade(z)

	a := perlinPerm[x0] + y0
	aa := perlinPerm[a] + z0
	ab := perlinPerm[a+1] + z0
	b := perlinPerm[x0+1] + y0
	ba := perlinPerm[b] + z0
	bb := perlinPerm[b+1] + z0

	return perlinLerp(w,
		perlinLerp(v,
			perlinLerp(u, perlinGrad(perlinPerm[aa], x, y, z), perlinGrad(perlinPerm[ba], x-1, y, z)),
			perlinLerp(u, perlinGrad(perlinPerm[ab], x, y-1, z), perlinGrad(perlinPerm[bb], x-1, y-1, z)),
		),
		perlinLerp(v,
			perlinLerp(u, perlinGrad(perlinPerm[aa+1], x, y, z-1), perlinGrad(perlinPerm[ba+1], x-1, y, z-1)),
			perlinLerp(u, perlinGrad(perlinPerm[ab+1], x, y-1, z-1), perlinGrad(perlinPerm[bb+1], x-1, y-1, z-1)),
		),
	)
}

// perlinTurbulence sums depth octaves of noise, halving the weight and
// doubling the frequency each step.
func perlinTurbulence(depth int, p types.Vec3) float32 {
	var accum float32
	weight := float32(1.0)
	for i := 0; i < depth; i++ {
		accum += weight * perlinNoise(p)
		weight *= 0.5
		p = p.Mul(2)
	}
	return accum
}

func perlinFade(t float32) float32 {
	return t * t * (3 - 2*t)
}

func perlinGrad(hash int, x, y, z float32) float32 {
	h := hash & 15

	u := x
	if h >= 8 {
		u = y
	}

	var v float32
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	default:
		v = z
	}

	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

func perlinLerp(t, a, b float32) float32 {
	return a + t*(b-a)
}
