package polymorphism

import (
	"fmt"
	"math"

	"github.com/zephyrtronium/objmodel"
)

// ShapeClass declares calculateArea, which every shape binds.
var ShapeClass = objmodel.MustClass("Shape",
	objmodel.Abstract("calculateArea"),
)

type circle struct {
	radius float64
}

type rectangle struct {
	width, height float64
}

var (
	// CircleClass computes the area of a circle from its radius.
	CircleClass = ShapeClass.MustExtend("Circle", objmodel.Bindings{
		"calculateArea": func(self *objmodel.Object, args ...interface{}) (interface{}, error) {
			r := self.Value.(*circle).radius
			return math.Pi * r * r, nil
		},
	})
	// RectangleClass computes the area of a rectangle from its sides.
	RectangleClass = ShapeClass.MustExtend("Rectangle", objmodel.Bindings{
		"calculateArea": func(self *objmodel.Object, args ...interface{}) (interface{}, error) {
			r := self.Value.(*rectangle)
			return r.width * r.height, nil
		},
	})
)

// NewCircle creates a circle. The radius must not be negative.
func NewCircle(radius float64) (*objmodel.Object, error) {
	if radius < 0 || math.IsNaN(radius) {
		return nil, fmt.Errorf("%w: circle radius %v", objmodel.ErrInvalidArgument, radius)
	}
	return CircleClass.New(&circle{radius: radius}, nil)
}

// NewRectangle creates a rectangle. Neither side may be negative.
func NewRectangle(width, height float64) (*objmodel.Object, error) {
	if width < 0 || height < 0 || math.IsNaN(width) || math.IsNaN(height) {
		return nil, fmt.Errorf("%w: rectangle sides %v×%v", objmodel.ErrInvalidArgument, width, height)
	}
	return RectangleClass.New(&rectangle{width: width, height: height}, nil)
}

// Area returns the area of any shape, or 0 for an invalid handle.
func Area(shape *objmodel.Object) (float64, error) {
	r, err := shape.Perform("calculateArea")
	if err != nil {
		return 0, err
	}
	a, _ := r.(float64)
	return a, nil
}

// PrintArea writes the area of any shape to c.
func PrintArea(c *objmodel.Console, shape *objmodel.Object) error {
	a, err := Area(shape)
	if err != nil {
		return err
	}
	c.Printf("面積: %.2f\n", a)
	return nil
}
