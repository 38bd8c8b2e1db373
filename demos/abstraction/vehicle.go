// Package abstraction demonstrates an abstract class: Vehicle declares start
// and stop without bodies, so only subclasses that bind them can be
// instantiated.
package abstraction

import (
	"fmt"

	"github.com/zephyrtronium/objmodel"
)

// VehicleClass is abstract. Constructing it directly fails with
// objmodel.ErrAbstractClass, and this package exports no constructor for it.
var VehicleClass = objmodel.MustClass("Vehicle",
	objmodel.Abstract("start"),
	objmodel.Abstract("stop"),
	objmodel.Concrete("displayBrand", displayBrand),
)

// An Engine supplies the messages for the abstract operations of a vehicle.
type Engine interface {
	Start(brand string) string
	Stop(brand string) string
}

// DefineVehicle creates a concrete subclass of VehicleClass whose start and
// stop report e's messages.
func DefineVehicle(name string, e Engine) (*objmodel.Class, error) {
	return VehicleClass.Extend(name, objmodel.Bindings{
		"start": func(self *objmodel.Object, args ...interface{}) (interface{}, error) {
			return say(self, args, e.Start)
		},
		"stop": func(self *objmodel.Object, args ...interface{}) (interface{}, error) {
			return say(self, args, e.Stop)
		},
	})
}

func say(self *objmodel.Object, args []interface{}, msg func(string) string) (interface{}, error) {
	c, err := objmodel.ConsoleArgAt(args, 0)
	if err != nil {
		return nil, err
	}
	c.Println(msg(self.Value.(*vehicle).brand))
	return nil, nil
}

type carEngine struct{}

func (carEngine) Start(brand string) string { return brand + "の車がエンジンを始動しました" }
func (carEngine) Stop(brand string) string  { return brand + "の車が停止しました" }

// CarClass is the concrete Car.
var CarClass = func() *objmodel.Class {
	c, err := DefineVehicle("Car", carEngine{})
	if err != nil {
		panic(err)
	}
	return c
}()

// vehicle is the state shared by every vehicle.
type vehicle struct {
	brand string
}

// Vehicle is a handle to an object of any concrete vehicle class.
type Vehicle struct {
	obj *objmodel.Object
}

// newVehicle is the base initializer for every vehicle class.
func newVehicle(cls *objmodel.Class, brand string) (*Vehicle, error) {
	if !cls.Inherits(VehicleClass) {
		return nil, fmt.Errorf("%w: %s is not a kind of %s", objmodel.ErrInvalidArgument, cls, VehicleClass)
	}
	if brand == "" {
		return nil, fmt.Errorf("%w: %s needs a brand", objmodel.ErrInvalidArgument, cls)
	}
	obj, err := cls.New(&vehicle{brand: brand}, nil)
	if err != nil {
		return nil, err
	}
	return &Vehicle{obj: obj}, nil
}

// NewCar creates a car of the given brand.
func NewCar(brand string) (*Vehicle, error) {
	return newVehicle(CarClass, brand)
}

// New creates a vehicle of a class derived from VehicleClass, such as one
// returned by DefineVehicle. Other classes fail with
// objmodel.ErrInvalidArgument.
func New(cls *objmodel.Class, brand string) (*Vehicle, error) {
	return newVehicle(cls, brand)
}

// Start starts the vehicle.
func (v *Vehicle) Start(c *objmodel.Console) error {
	return v.perform("start", c)
}

// Stop stops the vehicle.
func (v *Vehicle) Stop(c *objmodel.Console) error {
	return v.perform("stop", c)
}

// DisplayBrand writes the vehicle's brand.
func (v *Vehicle) DisplayBrand(c *objmodel.Console) error {
	return v.perform("displayBrand", c)
}

// Object returns the underlying object.
func (v *Vehicle) Object() *objmodel.Object {
	if v == nil {
		return nil
	}
	return v.obj
}

// Destroy releases the vehicle.
func (v *Vehicle) Destroy() {
	if v == nil {
		return
	}
	v.obj.Destroy()
}

func (v *Vehicle) perform(op string, c *objmodel.Console) error {
	if v == nil {
		return nil
	}
	_, err := v.obj.Perform(op, c)
	return err
}

// displayBrand is a Vehicle method.
func displayBrand(self *objmodel.Object, args ...interface{}) (interface{}, error) {
	c, err := objmodel.ConsoleArgAt(args, 0)
	if err != nil {
		return nil, err
	}
	c.Printf("ブランド: %s\n", self.Value.(*vehicle).brand)
	return nil, nil
}
