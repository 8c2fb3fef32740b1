package mat

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecmath/vec"
)

func TestDeterminant(t *testing.T) {
	tests := []struct {
		name     string
		det      float64
		expected float64
	}{
		{"2x2", Mat2[float64]{{4, 7}, {2, 6}}.Determinant(), 10},
		{"2x2 negative", Mat2[float64]{{1, 2}, {3, 4}}.Determinant(), -2},
		{"3x3", Mat3[float64]{{2, 1, 0}, {1, 3, 1}, {0, 1, -2}}.Determinant(), -12},
		{"3x3 singular", Mat3[float64]{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}.Determinant(), 0},
		{"4x4", Mat4[float64]{{3, 0, 2, -1}, {1, 2, 0, -2}, {4, 0, 6, -3}, {5, 0, 2, 0}}.Determinant(), 20},
		{"4x4 singular", Mat4[float64]{{10, 4, 6, 9}, {8, 2, 4, 7}, {11, 5, 7, 10}, {3, 9, 11, 2}}.Determinant(), 0},
		{"4x4 identity", Identity4[float64]().Determinant(), 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, tc.det, 1e-9)
		})
	}
}

func TestInverse2(t *testing.T) {
	m := Mat2[float64]{{4, 7}, {2, 6}}
	inv, err := m.Inverse()
	require.NoError(t, err)
	assert.True(t, inv.ApproxEqual(Mat2[float64]{{0.6, -0.7}, {-0.2, 0.4}}), inv.String())
	assert.True(t, m.Mul(inv).ApproxEqual(Identity2[float64]()))

	m = Mat2[float64]{{1, 2}, {-2, -1}}
	inv, err = m.Inverse()
	require.NoError(t, err)
	assert.True(t, inv.ApproxEqual(Mat2[float64]{{-1.0 / 3, -2.0 / 3}, {2.0 / 3, 1.0 / 3}}))
	assert.True(t, inv.Mul(m).ApproxEqual(Identity2[float64]()))
}

func TestInverse3(t *testing.T) {
	m := Mat3[float64]{{1, 2, 3}, {0, 1, 4}, {5, 6, 0}}
	inv, err := m.Inverse()
	require.NoError(t, err)
	assert.True(t, inv.ApproxEqual(Mat3[float64]{{-24, 18, 5}, {20, -15, -4}, {-5, 4, 1}}), inv.String())
	assert.True(t, m.Mul(inv).ApproxEqual(Identity3[float64]()))

	f := Mat3[float32]{{2, 1, 0}, {1, 3, 1}, {0, 1, -2}}
	finv, err := f.Inverse()
	require.NoError(t, err)
	assert.True(t, f.Mul(finv).ApproxEqual(Identity3[float32]()))
}

func TestInverse4(t *testing.T) {
	m := Mat4[float64]{{3, 0, 2, -1}, {1, 2, 0, -2}, {4, 0, 6, -3}, {5, 0, 2, 0}}
	inv, err := m.Inverse()
	require.NoError(t, err)
	assert.True(t, m.Mul(inv).ApproxEqual(Identity4[float64]()), m.Mul(inv).String())
	assert.True(t, inv.Mul(m).ApproxEqual(Identity4[float64]()))

	back, err := inv.Inverse()
	require.NoError(t, err)
	assert.True(t, back.ApproxEqual(m))
}

func TestInverseSingular(t *testing.T) {
	tests := []struct {
		name string
		size int
		inv  func() error
	}{
		{"2x2", 2, func() error { _, err := Mat2[float64]{{1, 2}, {2, 4}}.Inverse(); return err }},
		{"3x3", 3, func() error { _, err := Mat3[float64]{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}.Inverse(); return err }},
		{"4x4", 4, func() error {
			_, err := Mat4[float64]{{10, 4, 6, 9}, {8, 2, 4, 7}, {11, 5, 7, 10}, {3, 9, 11, 2}}.Inverse()
			return err
		}},
		{"4x4 zero", 4, func() error { _, err := Mat4[float32]{}.Inverse(); return err }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.inv()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSingularMatrix))

			var se *SingularMatrixError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tc.size, se.Size)
			assert.InDelta(t, 0, se.Determinant, 1e-9)
		})
	}
}

func TestInverseSmallScale(t *testing.T) {
	t.Run("float32 uniform 0.02", func(t *testing.T) {
		m := Scaling(vec.Splat3[float32](0.02)).Mat4()
		inv, err := m.Inverse()
		require.NoError(t, err)
		assert.True(t, m.Mul(inv).ApproxEqual(Identity4[float32]()), m.Mul(inv).String())
		assert.InDelta(t, 50, inv[0][0], 1e-3)
	})

	t.Run("float64 uniform 0.001", func(t *testing.T) {
		m := Scaling(vec.Splat3(0.001))
		inv, err := m.Inverse()
		require.NoError(t, err)
		assert.True(t, m.Mul(inv).ApproxEqual(Identity3[float64]()))
	})

	t.Run("2x2", func(t *testing.T) {
		m := Mat2[float64]{{1e-5, 0}, {0, 1e-5}}
		inv, err := m.Inverse()
		require.NoError(t, err)
		assert.True(t, m.Mul(inv).ApproxEqual(Identity2[float64]()))
	})

	t.Run("general 4x4", func(t *testing.T) {
		m := Mat4[float64]{{3, 0, 2, -1}, {1, 2, 0, -2}, {4, 0, 6, -3}, {5, 0, 2, 0}}.Scale(1e-3)
		inv, err := m.Inverse()
		require.NoError(t, err)
		assert.True(t, m.Mul(inv).ApproxEqual(Identity4[float64]()), m.Mul(inv).String())
	})

	t.Run("singular stays singular", func(t *testing.T) {
		_, err := Mat3[float64]{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}.Scale(1e-3).Inverse()
		assert.ErrorIs(t, err, ErrSingularMatrix)
	})
}

// naiveCofactor expands the 3×3 minor that excludes row r and column c.
func naiveCofactor(m Mat4[float64], r, c int) float64 {
	var minor Mat3[float64]
	mi := 0
	for i := range 4 {
		if i == r {
			continue
		}
		mj := 0
		for j := range 4 {
			if j == c {
				continue
			}
			minor[mi][mj] = m[i][j]
			mj++
		}
		mi++
	}
	sign := 1.0
	if (r+c)%2 == 1 {
		sign = -1
	}
	return sign * minor.Determinant()
}

func TestMat4AdjugateMatchesCofactors(t *testing.T) {
	m := Mat4[float64]{{3, -1, 2, 7}, {1, 2, 0, -2}, {4, 9, 6, -3}, {5, 0, 2, 1}}
	adj := m.Adjugate()

	for r := range 4 {
		for c := range 4 {
			assert.InDelta(t, naiveCofactor(m, c, r), adj[r][c], 1e-9, "adj[%d][%d]", r, c)
		}
	}

	det := 0.0
	for j := range 4 {
		det += m[0][j] * naiveCofactor(m, 0, j)
	}
	assert.InDelta(t, det, m.Determinant(), 1e-9)
}

func TestMat3Adjugate(t *testing.T) {
	m := Mat3[float64]{{1, 2, 3}, {0, 1, 4}, {5, 6, 0}}
	// det(m) = 1, so the adjugate equals the inverse.
	assert.Equal(t, Mat3[float64]{{-24, 18, 5}, {20, -15, -4}, {-5, 4, 1}}, m.Adjugate())
}

func TestIdentityProducts(t *testing.T) {
	m3 := Mat3[float64]{{1, 2, 3}, {0, 1, 4}, {5, 6, 0}}
	assert.Equal(t, m3, m3.Mul(Identity3[float64]()))
	assert.Equal(t, m3, Identity3[float64]().Mul(m3))

	m4 := Mat4[float32]{{3, 0, 2, -1}, {1, 2, 0, -2}, {4, 0, 6, -3}, {5, 0, 2, 0}}
	assert.Equal(t, m4, m4.Mul(Identity4[float32]()))
	assert.Equal(t, m4, Identity4[float32]().Mul(m4))

	v := vec.New3(1.0, -2, 3)
	assert.Equal(t, v, Identity3[float64]().MulVec(v))
}

func TestRowsAndColumns(t *testing.T) {
	m := FromRows3(vec.New3(1.0, 2, 3), vec.New3(4.0, 5, 6), vec.New3(7.0, 8, 9))
	assert.Equal(t, vec.New3(4.0, 5, 6), m.Row(1))
	assert.Equal(t, vec.New3(2.0, 5, 8), m.Col(1))
	assert.Equal(t, m.Row(2), m.Transpose().Col(2))

	// Column vectors: the result is the dot of each row with v.
	assert.Equal(t, vec.New3(14.0, 32, 50), m.MulVec(vec.New3(1.0, 2, 3)))
}

func TestMatrixArithmetic(t *testing.T) {
	a := Mat2[float64]{{1, 2}, {3, 4}}
	b := Mat2[float64]{{5, 6}, {7, 8}}
	assert.Equal(t, Mat2[float64]{{19, 22}, {43, 50}}, a.Mul(b))
	assert.Equal(t, Mat2[float64]{{6, 8}, {10, 12}}, a.Add(b))
	assert.Equal(t, Mat2[float64]{{-4, -4}, {-4, -4}}, a.Sub(b))
	assert.Equal(t, Mat2[float64]{{-1, -2}, {-3, -4}}, a.Neg())
	assert.Equal(t, Mat2[float64]{{2, 4}, {6, 8}}, a.Scale(2))
	assert.Equal(t, "[1.00 2.00]\n[3.00 4.00]", a.String())
}

func TestAffine(t *testing.T) {
	m := Translation(vec.New3(1.0, 2, 3))
	assert.Equal(t, vec.New3(2.0, 3, 4), m.MulPoint(vec.New3(1.0, 1, 1)))
	assert.Equal(t, vec.New3(1.0, 1, 1), m.MulDir(vec.New3(1.0, 1, 1)))
	assert.Equal(t, vec.New3(1.0, 2, 3), m.TranslationPart())

	r := RotationZ(math.Pi / 2)
	m.RotateEuler(NewEuler(0, 0, math.Pi/2), PHB)
	assert.True(t, m.ApproxEqual(Translation(vec.New3(1.0, 2, 3)).Mul(r.Mat4())))
	assert.True(t, m.Mat3().ApproxEqual(r))

	m.Translate(vec.New3(1.0, 0, 0))
	assert.True(t, m.TranslationPart().ApproxEqual(vec.New3(1.0, 3, 3)))
}
