// Package inheritance demonstrates a derived class inheriting the state of
// its base and overriding one of its operations.
package inheritance

import (
	"fmt"

	"github.com/zephyrtronium/objmodel"
)

// AnimalClass is the base class. Its makeSound has a default body.
var AnimalClass = objmodel.MustClass("Animal",
	objmodel.Concrete("makeSound", animalMakeSound),
	objmodel.Final("getName", getName),
)

// DogClass inherits from AnimalClass and overrides makeSound.
var DogClass = AnimalClass.MustExtend("Dog", objmodel.Bindings{
	"makeSound": dogMakeSound,
})

// animal is the state shared by Animal and every class derived from it.
type animal struct {
	name string
}

// Animal is a handle to an Animal or any class derived from it.
type Animal struct {
	obj *objmodel.Object
}

// newAnimal is the base initializer for Animal and its subclasses.
func newAnimal(cls *objmodel.Class, name string) (*Animal, error) {
	if !cls.Inherits(AnimalClass) {
		return nil, fmt.Errorf("%w: %s is not a kind of %s", objmodel.ErrInvalidArgument, cls, AnimalClass)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: %s needs a name", objmodel.ErrInvalidArgument, cls.Name())
	}
	obj, err := cls.New(&animal{name: name}, nil)
	if err != nil {
		return nil, err
	}
	return &Animal{obj: obj}, nil
}

// NewAnimal creates a plain Animal.
func NewAnimal(name string) (*Animal, error) {
	return newAnimal(AnimalClass, name)
}

// NewDog creates a Dog. The handle is the same type as for any Animal.
func NewDog(name string) (*Animal, error) {
	return newAnimal(DogClass, name)
}

// MakeSound writes the animal's sound to c.
func (a *Animal) MakeSound(c *objmodel.Console) {
	if a == nil {
		return
	}
	a.obj.Perform("makeSound", c)
}

// Name returns the animal's name.
func (a *Animal) Name() string {
	if a == nil {
		return ""
	}
	r, _ := a.obj.Perform("getName")
	s, _ := r.(string)
	return s
}

// Object returns the underlying object.
func (a *Animal) Object() *objmodel.Object {
	if a == nil {
		return nil
	}
	return a.obj
}

// Destroy releases the animal.
func (a *Animal) Destroy() {
	if a == nil {
		return
	}
	a.obj.Destroy()
}

// animalMakeSound is an Animal method.
func animalMakeSound(self *objmodel.Object, args ...interface{}) (interface{}, error) {
	c, err := objmodel.ConsoleArgAt(args, 0)
	if err != nil {
		return nil, err
	}
	c.Println("動物の鳴き声")
	return nil, nil
}

// dogMakeSound is a Dog method.
func dogMakeSound(self *objmodel.Object, args ...interface{}) (interface{}, error) {
	c, err := objmodel.ConsoleArgAt(args, 0)
	if err != nil {
		return nil, err
	}
	c.Printf("%sがワンワンと鳴く\n", self.Value.(*animal).name)
	return nil, nil
}

// getName is an Animal method.
func getName(self *objmodel.Object, args ...interface{}) (interface{}, error) {
	return self.Value.(*animal).name, nil
}
