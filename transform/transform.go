// Package transform composes translation, rotation and scale into rigid
// (plus scale) transforms, the unit most scene graphs and animation tracks
// store per node.
//
// A Transform applies scale first, then rotation, then translation:
// Matrix() is T·R·S.
package transform

import (
	"errors"
	"fmt"

	"github.com/hupe1980/vecmath/mat"
	"github.com/hupe1980/vecmath/quat"
	"github.com/hupe1980/vecmath/scalar"
	"github.com/hupe1980/vecmath/vec"
)

var (
	// ErrNonUniformScale is returned by Inverse when the scale differs per
	// axis; the inverse of such a transform is not a TRS transform.
	ErrNonUniformScale = errors.New("transform has non-uniform scale")

	// ErrNotDecomposable is returned by Decompose for projective or sheared
	// matrices.
	ErrNotDecomposable = errors.New("matrix is not a translation·rotation·scale product")

	// ErrNonFinite is returned by Validate when a component is NaN or infinite.
	ErrNonFinite = errors.New("transform has non-finite component")
)

// Transform is a translation, unit rotation and per-axis scale.
type Transform[T scalar.Float] struct {
	Translation vec.Vec3[T]
	Rotation    quat.Quat[T]
	Scale       vec.Vec3[T]
}

// Identity returns the transform that maps every point to itself.
func Identity[T scalar.Float]() Transform[T] {
	return Transform[T]{Rotation: quat.Identity[T](), Scale: vec.Splat3[T](1)}
}

// New returns the transform with the given parts.
func New[T scalar.Float](translation vec.Vec3[T], rotation quat.Quat[T], scale vec.Vec3[T]) Transform[T] {
	return Transform[T]{Translation: translation, Rotation: rotation, Scale: scale}
}

// Matrix returns T·R·S.
func (t Transform[T]) Matrix() mat.Mat4[T] {
	r := t.Rotation.Mat3()
	s := t.Scale
	p := t.Translation

	return mat.Mat4[T]{
		{r[0][0] * s.X, r[0][1] * s.Y, r[0][2] * s.Z, p.X},
		{r[1][0] * s.X, r[1][1] * s.Y, r[1][2] * s.Z, p.Y},
		{r[2][0] * s.X, r[2][1] * s.Y, r[2][2] * s.Z, p.Z},
		{0, 0, 0, 1},
	}
}

// Point maps p through scale, rotation and translation.
func (t Transform[T]) Point(p vec.Vec3[T]) vec.Vec3[T] {
	return rotate(t.Rotation, p.Mul(t.Scale)).Add(t.Translation)
}

// Direction maps d through scale and rotation; translation is ignored.
func (t Transform[T]) Direction(d vec.Vec3[T]) vec.Vec3[T] {
	return rotate(t.Rotation, d.Mul(t.Scale))
}

// Compose returns the transform applying child first and then t.
//
// The result matches t.Matrix()·child.Matrix() when t has uniform scale. With
// non-uniform parent scale the product contains shear, which a Transform
// cannot hold; scales are then multiplied per axis.
func (t Transform[T]) Compose(child Transform[T]) Transform[T] {
	return Transform[T]{
		Translation: t.Point(child.Translation),
		Rotation:    t.Rotation.Mul(child.Rotation),
		Scale:       t.Scale.Mul(child.Scale),
	}
}

// Inverse returns the transform undoing t. It requires uniform scale
// (ErrNonUniformScale), compared relative to the scale's own magnitude, and
// reports a scale without a finite reciprocal as a singular matrix.
func (t Transform[T]) Inverse() (Transform[T], error) {
	s := t.Scale
	if !scalar.RelativeEqual(s.X, s.Y) || !scalar.RelativeEqual(s.X, s.Z) {
		return Transform[T]{}, fmt.Errorf("%w: %v", ErrNonUniformScale, s)
	}

	inv := 1 / s.X
	if s.X == 0 || !scalar.IsFinite(inv) {
		return Transform[T]{}, &mat.SingularMatrixError{Size: 4, Determinant: float64(s.X * s.Y * s.Z)}
	}
	r := t.Rotation.Conjugate()

	return Transform[T]{
		Translation: rotate(r, t.Translation).Scale(-inv),
		Rotation:    r,
		Scale:       vec.Splat3(inv),
	}, nil
}

// Interpolate blends translation and scale linearly and rotation with
// quat.Slerp.
func Interpolate[T scalar.Float](a, b Transform[T], t T) Transform[T] {
	return Transform[T]{
		Translation: a.Translation.Lerp(b.Translation, t),
		Rotation:    quat.Slerp(a.Rotation, b.Rotation, t),
		Scale:       a.Scale.Lerp(b.Scale, t),
	}
}

// Validate reports non-finite components and non-unit rotations.
func (t Transform[T]) Validate() error {
	for _, c := range [...]T{
		t.Translation.X, t.Translation.Y, t.Translation.Z,
		t.Rotation.W, t.Rotation.V.X, t.Rotation.V.Y, t.Rotation.V.Z,
		t.Scale.X, t.Scale.Y, t.Scale.Z,
	} {
		if !scalar.IsFinite(c) {
			return ErrNonFinite
		}
	}
	if !t.Rotation.IsUnit() {
		return fmt.Errorf("rotation: %w", &vec.NotUnitError{LengthSquared: float64(t.Rotation.LengthSquared())})
	}
	return nil
}

// Decompose splits an affine matrix into translation, rotation and scale.
// A reflection is folded into a negative X scale.
func Decompose[T scalar.Float](m mat.Mat4[T]) (Transform[T], error) {
	if m[3][0] != 0 || m[3][1] != 0 || m[3][2] != 0 || m[3][3] != 1 {
		return Transform[T]{}, fmt.Errorf("%w: projective row %v", ErrNotDecomposable, m.Row(3))
	}

	l := m.Mat3()
	s := vec.New3(l.Col(0).Length(), l.Col(1).Length(), l.Col(2).Length())
	// Column lengths are judged against the largest one so uniformly small
	// matrices still decompose.
	if largest := max(s.X, s.Y, s.Z); largest == 0 || min(s.X, s.Y, s.Z) <= scalar.Epsilon[T]()*largest {
		return Transform[T]{}, &mat.SingularMatrixError{Size: 4, Determinant: float64(l.Determinant())}
	}
	if l.Determinant() < 0 {
		s.X = -s.X
	}

	r := l.Mul(mat.Scaling(vec.New3(1/s.X, 1/s.Y, 1/s.Z)))
	if !r.IsRotation() {
		return Transform[T]{}, fmt.Errorf("%w: shear", ErrNotDecomposable)
	}

	q := quat.FromMat3(r)
	q.Normalize()

	return Transform[T]{Translation: m.TranslationPart(), Rotation: q, Scale: s}, nil
}

// ApproxEqual compares translation and scale component-wise and rotation up
// to sign.
func (t Transform[T]) ApproxEqual(o Transform[T]) bool {
	return t.Translation.ApproxEqual(o.Translation) &&
		t.Rotation.SameRotation(o.Rotation) &&
		t.Scale.ApproxEqual(o.Scale)
}

func (t Transform[T]) String() string {
	return fmt.Sprintf("T%s R%s S%s", t.Translation, t.Rotation, t.Scale)
}

// rotate applies a unit quaternion without the inverse of the full sandwich:
// v + 2w(u×v) + 2u×(u×v).
func rotate[T scalar.Float](q quat.Quat[T], v vec.Vec3[T]) vec.Vec3[T] {
	uv := q.V.Cross(v)
	uuv := q.V.Cross(uv)
	return v.Add(uv.Scale(2 * q.W)).Add(uuv.Scale(2))
}
