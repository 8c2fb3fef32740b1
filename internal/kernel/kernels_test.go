package kernel

import (
	"fmt"
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/vecmath/mat"
	"github.com/hupe1980/vecmath/vec"
)

func TestMain(m *testing.M) {
	fmt.Printf("GOOS=%s GOARCH=%s %s=%q active=%s wide=%v\n",
		runtime.GOOS, runtime.GOARCH, EnvOverride, os.Getenv(EnvOverride), Active(), HasWideVector())
	os.Exit(m.Run())
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{Scalar, Blocked} {
		got, ok := ParseKind(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}

	got, ok := ParseKind(" BLOCKED ")
	assert.True(t, ok)
	assert.Equal(t, Blocked, got)

	_, ok = ParseKind("avx9")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Kind(7).String())
}

func TestSelectKind(t *testing.T) {
	tests := []struct {
		name       string
		override   string
		wide       bool
		want       Kind
		overridden bool
	}{
		{"Wide CPU", "", true, Blocked, false},
		{"Narrow CPU", "", false, Scalar, false},
		{"Forced scalar", "scalar", true, Scalar, true},
		{"Forced blocked", "blocked", false, Blocked, true},
		{"Unknown override ignored", "sse9", true, Blocked, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k, over := selectKind(tc.override, tc.wide)
			assert.Equal(t, tc.want, k)
			assert.Equal(t, tc.overridden, over)
		})
	}
}

func points(n int) []vec.Vec3[float64] {
	out := make([]vec.Vec3[float64], n)
	for i := range out {
		f := float64(i)
		out[i] = vec.New3(f, -2*f+1, 0.5*f-3)
	}
	return out
}

func TestAffineMatchesMulPoint(t *testing.T) {
	affine := mat.Translation(vec.New3(1.0, -2, 3)).Mul(mat.FromEulerDeg(mat.NewEuler(10.0, 20, 30), mat.HPB).Mat4())
	projective, err := mat.Perspective(1.0, 1.5, 0.1, 100)
	assert.NoError(t, err)

	for _, m := range []mat.Mat4[float64]{affine, projective} {
		for _, k := range []Kind{Scalar, Blocked} {
			for _, n := range []int{0, 1, 4, 7, 33} {
				t.Run(fmt.Sprintf("%s/%d", k, n), func(t *testing.T) {
					src := points(n)
					dst := make([]vec.Vec3[float64], n)
					Affine(k, &m, src, dst)
					for i := range src {
						assert.True(t, dst[i].ApproxEqual(m.MulPoint(src[i])), "i=%d", i)
					}
				})
			}
		}
	}
}

func TestLinearMatchesMulVec(t *testing.T) {
	m := mat.FromEulerDeg(mat.NewEuler(-40.0, 170, 25), mat.BPH).Mul(mat.Scaling(vec.New3(2.0, 1, 0.5)))

	for _, k := range []Kind{Scalar, Blocked} {
		src := points(11)
		dst := make([]vec.Vec3[float64], len(src))
		Linear(k, &m, src, dst)
		for i := range src {
			assert.True(t, dst[i].ApproxEqual(m.MulVec(src[i])), "%s i=%d", k, i)
		}
	}
}

func TestInPlace(t *testing.T) {
	m := mat.Translation(vec.New3(1.0, 1, 1))
	for _, k := range []Kind{Scalar, Blocked} {
		buf := points(6)
		want := points(6)
		Affine(k, &m, buf, buf)
		for i := range buf {
			assert.True(t, buf[i].ApproxEqual(want[i].Add(vec.Splat3(1.0))))
		}
	}
}

func BenchmarkAffine(b *testing.B) {
	m := mat.Translation(vec.New3[float32](1, 2, 3)).Mul(mat.FromEulerDeg(mat.NewEuler[float32](10, 20, 30), mat.HPB).Mat4())
	src := make([]vec.Vec3[float32], 4096)
	dst := make([]vec.Vec3[float32], len(src))

	for _, k := range []Kind{Scalar, Blocked} {
		b.Run(k.String(), func(b *testing.B) {
			for b.Loop() {
				Affine(k, &m, src, dst)
			}
		})
	}
}
