package warp

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrSingularTransform indicates a non-invertible coefficient matrix.
var ErrSingularTransform = errors.New("warp: transform matrix is singular")

// Transform is a 3×3 homogeneous coordinate mapping in row-major order:
//
//	| m0 m1 m2 |   | x |
//	| m3 m4 m5 | · | y |
//	| m6 m7 m8 |   | 1 |
//
// Affine transforms keep the last row (0, 0, 1); projective transforms
// may use all nine coefficients. The zero value is not a valid transform;
// use Identity or a constructor.
type Transform struct {
	m [9]float64
}

// Identity returns the transform mapping every point to itself.
func Identity() Transform {
	return Transform{m: [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}}
}

// Affine builds the transform x' = a·x + b·y + c, y' = d·x + e·y + f.
func Affine(a, b, c, d, e, f float64) Transform {
	return Transform{m: [9]float64{a, b, c, d, e, f, 0, 0, 1}}
}

// Projective builds a transform from all nine coefficients, row-major.
func Projective(m [9]float64) Transform {
	return Transform{m: m}
}

// Translate returns the transform shifting by (tx, ty).
func Translate(tx, ty float64) Transform {
	return Affine(1, 0, tx, 0, 1, ty)
}

// Scale returns the transform scaling by (sx, sy) about the origin.
func Scale(sx, sy float64) Transform {
	return Affine(sx, 0, 0, 0, sy, 0)
}

// Rotate returns the counter-clockwise rotation by theta radians about
// the origin.
func Rotate(theta float64) Transform {
	s, c := math.Sin(theta), math.Cos(theta)

	return Affine(c, -s, 0, s, c, 0)
}

// RotateAbout returns the counter-clockwise rotation by theta radians
// about the point (cx, cy).
func RotateAbout(theta, cx, cy float64) Transform {
	return Translate(cx, cy).Compose(Rotate(theta)).Compose(Translate(-cx, -cy))
}

// Shear returns the transform x' = x + shx·y, y' = shy·x + y.
func Shear(shx, shy float64) Transform {
	return Affine(1, shx, 0, shy, 1, 0)
}

// Coefficients returns the row-major 3×3 coefficient array.
func (t Transform) Coefficients() [9]float64 {
	return t.m
}

// Compose returns the transform applying u first, then t:
// (t.Compose(u)).Apply(p) == t.Apply(u.Apply(p)).
func (t Transform) Compose(u Transform) Transform {
	var out Transform
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			var s float64
			for i := 0; i < 3; i++ {
				s += t.m[r*3+i] * u.m[i*3+c]
			}
			out.m[r*3+c] = s
		}
	}

	return out
}

// Apply maps the point (x, y) through the transform, performing the
// projective divide. Points mapped to the line at infinity yield ±Inf
// coordinates, which downstream resampling treats as out of bounds.
func (t Transform) Apply(x, y float64) (float64, float64) {
	px := t.m[0]*x + t.m[1]*y + t.m[2]
	py := t.m[3]*x + t.m[4]*y + t.m[5]
	pw := t.m[6]*x + t.m[7]*y + t.m[8]

	return px / pw, py / pw
}

// Invert returns the algebraic inverse of the transform.
// Returns ErrSingularTransform when the matrix is not invertible. An
// ill-conditioned but numerically invertible matrix (gonum's
// mat.Condition) is accepted.
func (t Transform) Invert() (Transform, error) {
	a := mat.NewDense(3, 3, append([]float64(nil), t.m[:]...))
	var inv mat.Dense
	if err := inv.Inverse(a); err != nil {
		// gonum reports an exactly singular matrix as an infinite
		// condition number.
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return Transform{}, ErrSingularTransform
		}
	}
	var out Transform
	copy(out.m[:], inv.RawMatrix().Data)

	return out, nil
}
