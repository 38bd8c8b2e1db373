// Package factorymethod demonstrates the Factory Method pattern: an abstract
// creator defers the choice of product class to its subclasses, and a
// template method uses whatever product they create.
package factorymethod

import (
	"fmt"

	"github.com/zephyrtronium/objmodel"
)

// ProductClass is the abstract product. Every vehicle can drive.
var ProductClass = objmodel.MustClass("Vehicle",
	objmodel.Abstract("drive"),
)

// announce returns a drive body that writes msg.
func announce(msg string) objmodel.Fn {
	return func(self *objmodel.Object, args ...interface{}) (interface{}, error) {
		c, err := objmodel.ConsoleArgAt(args, 0)
		if err != nil {
			return nil, err
		}
		c.Println(msg)
		return nil, nil
	}
}

var (
	// CarClass is a product.
	CarClass = ProductClass.MustExtend("Car", objmodel.Bindings{"drive": announce("車が走っています")})
	// BikeClass is a product.
	BikeClass = ProductClass.MustExtend("Bike", objmodel.Bindings{"drive": announce("バイクが走っています")})
)

// CreatorClass is the abstract creator. createVehicle is the factory method;
// useVehicle is a template method built on it.
var CreatorClass = objmodel.MustClass("VehicleFactory",
	objmodel.Abstract("createVehicle"),
	objmodel.Final("useVehicle", useVehicle),
)

// creates returns a createVehicle body producing instances of product.
func creates(product *objmodel.Class) objmodel.Fn {
	return func(self *objmodel.Object, args ...interface{}) (interface{}, error) {
		return product.New(nil, nil)
	}
}

var (
	// CarFactoryClass creates cars.
	CarFactoryClass = CreatorClass.MustExtend("CarFactory", objmodel.Bindings{"createVehicle": creates(CarClass)})
	// BikeFactoryClass creates bikes.
	BikeFactoryClass = CreatorClass.MustExtend("BikeFactory", objmodel.Bindings{"createVehicle": creates(BikeClass)})
)

// NewCarFactory creates a creator of cars.
func NewCarFactory() (*objmodel.Object, error) {
	return CarFactoryClass.New(nil, nil)
}

// NewBikeFactory creates a creator of bikes.
func NewBikeFactory() (*objmodel.Object, error) {
	return BikeFactoryClass.New(nil, nil)
}

// CreateVehicle asks a creator for a new product. An invalid creator creates
// nothing.
func CreateVehicle(creator *objmodel.Object) (*objmodel.Object, error) {
	r, err := creator.Perform("createVehicle")
	if err != nil || r == nil {
		return nil, err
	}
	v, ok := r.(*objmodel.Object)
	if !ok {
		return nil, fmt.Errorf("%w: %v created %T, not a vehicle", objmodel.ErrArgument, creator, r)
	}
	return v, nil
}

// useVehicle is a VehicleFactory method.
//
// useVehicle creates a vehicle with the factory method, drives it, and
// releases it.
func useVehicle(self *objmodel.Object, args ...interface{}) (interface{}, error) {
	c, err := objmodel.ConsoleArgAt(args, 0)
	if err != nil {
		return nil, err
	}
	v, err := CreateVehicle(self)
	if err != nil {
		return nil, err
	}
	defer v.Destroy()
	return v.Perform("drive", c)
}
