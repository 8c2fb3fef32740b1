package vecmath_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/batch"
	"github.com/hupe1980/vecmath/mat"
	"github.com/hupe1980/vecmath/quat"
	"github.com/hupe1980/vecmath/scalar"
	"github.com/hupe1980/vecmath/uniform"
	"github.com/hupe1980/vecmath/vec"
)

// Example_inverse shows the typed error returned for singular matrices.
func Example_inverse() {
	m := vecmath.Mat2{{4, 7}, {2, 6}}
	inv, err := m.Inverse()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(inv)

	_, err = vecmath.Mat2{{1, 2}, {2, 4}}.Inverse()
	fmt.Println(errors.Is(err, vecmath.ErrSingularMatrix))
	fmt.Println(err)
	// Output:
	// [0.60 -0.70]
	// [-0.20 0.40]
	// true
	// 2x2 matrix is singular: determinant 0
}

// Example_eulerRoundTrip builds an object-to-upright matrix from heading,
// pitch and bank and extracts the angles again.
func Example_eulerRoundTrip() {
	e := mat.NewEuler(30.0, 45, 60)
	m := mat.FromEulerConventionDeg(e, mat.ObjectToUpright)

	back, err := m.ToEulerDeg(mat.ObjectToUpright)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("pitch=%.1f heading=%.1f bank=%.1f\n", back.Pitch, back.Heading, back.Bank)

	q := quat.FromEulerConventionDeg(e, mat.ObjectToUpright)
	fmt.Println(q.Mat3().ApproxEqual(m))
	// Output:
	// pitch=30.0 heading=45.0 bank=60.0
	// true
}

// Example_slerp interpolates halfway between two headings.
func Example_slerp() {
	a := quat.Identity[float64]()
	b, err := quat.FromAngleAxisDeg(vec.Up[float64](), 90)
	if err != nil {
		fmt.Println(err)
		return
	}

	_, angle := quat.Slerp(a, b, 0.5).ToAngleAxis()
	fmt.Printf("%.1f\n", scalar.ToDegrees(angle))
	// Output:
	// 45.0
}

// Example_uniformBlock lays out a std140 uniform block.
func Example_uniformBlock() {
	block, err := uniform.NewBlock(uniform.Std140, uniform.Float32)
	if err != nil {
		fmt.Println(err)
		return
	}
	_ = block.Set("model", uniform.FromMat4(mat.Identity4[float32]()))
	_ = block.Set("tint", uniform.FromVec3(vec.New3[float32](1, 0.5, 0.25)))
	_ = block.Set("uv", uniform.FromVec2(vec.New2[float32](0, 1)))

	for _, name := range block.Names() {
		off, _ := block.Offset(name)
		fmt.Println(name, off)
	}
	fmt.Println("size", block.Size())
	// Output:
	// model 0
	// tint 64
	// uv 80
	// size 96
}

// Example_batch translates a slice of points in place.
func Example_batch() {
	points := []vecmath.Vec3{{X: 1, Y: 2, Z: 3}, {X: -1, Y: 0, Z: 0.5}}
	m := mat.Translation(vec.New3[float32](10, 0, 0))

	if err := batch.TransformPoints(context.Background(), m, points, points); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(points[0])
	fmt.Println(points[1])
	// Output:
	// (11.00 2.00 3.00)
	// (9.00 0.00 0.50)
}
