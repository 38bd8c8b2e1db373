// Package polymorphism demonstrates one operation name producing different
// behavior depending on the class each object was built from.
package polymorphism

import (
	"fmt"

	"github.com/zephyrtronium/objmodel"
)

// HumanClass is the interface every kind of human implements. It declares
// only the abstract sayHello.
var HumanClass = objmodel.MustClass("Human",
	objmodel.Abstract("sayHello"),
)

// A Greeter phrases a self-introduction for a name. Every class defined with
// DefineHuman must provide one, so sayHello is always bound.
type Greeter interface {
	Greet(name string) string
}

// DefineHuman creates a subclass of HumanClass whose sayHello writes g's
// greeting.
func DefineHuman(name string, g Greeter) (*objmodel.Class, error) {
	return HumanClass.Extend(name, objmodel.Bindings{
		"sayHello": func(self *objmodel.Object, args ...interface{}) (interface{}, error) {
			c, err := objmodel.ConsoleArgAt(args, 0)
			if err != nil {
				return nil, err
			}
			c.Println(g.Greet(self.Value.(*human).name))
			return nil, nil
		},
	})
}

type japanese struct{}

func (japanese) Greet(name string) string {
	return "こんにちは。私の名前は" + name + "です。"
}

type american struct{}

func (american) Greet(name string) string {
	return "Hello. My name is " + name + "."
}

var (
	// JapaneseClass greets in Japanese.
	JapaneseClass = mustDefineHuman("Japanese", japanese{})
	// AmericanClass greets in English.
	AmericanClass = mustDefineHuman("American", american{})
)

func mustDefineHuman(name string, g Greeter) *objmodel.Class {
	c, err := DefineHuman(name, g)
	if err != nil {
		panic(err)
	}
	return c
}

// human is the private state of every Human.
type human struct {
	name string
}

// Human is a handle to an object of any class derived from HumanClass.
type Human struct {
	obj *objmodel.Object
}

// NewHuman creates a human of the given class. cls must derive from
// HumanClass; other classes fail with objmodel.ErrInvalidArgument.
func NewHuman(cls *objmodel.Class, name string) (*Human, error) {
	if !cls.Inherits(HumanClass) {
		return nil, fmt.Errorf("%w: %s is not a kind of %s", objmodel.ErrInvalidArgument, cls, HumanClass)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: %s needs a name", objmodel.ErrInvalidArgument, cls)
	}
	obj, err := cls.New(&human{name: name}, nil)
	if err != nil {
		return nil, err
	}
	return &Human{obj: obj}, nil
}

// NewJapanese creates a Japanese human.
func NewJapanese(name string) (*Human, error) {
	return NewHuman(JapaneseClass, name)
}

// NewAmerican creates an American human.
func NewAmerican(name string) (*Human, error) {
	return NewHuman(AmericanClass, name)
}

// SayHello writes the human's greeting to c.
func (h *Human) SayHello(c *objmodel.Console) error {
	if h == nil {
		return nil
	}
	_, err := h.obj.Perform("sayHello", c)
	return err
}

// Destroy releases the human.
func (h *Human) Destroy() {
	if h == nil {
		return
	}
	h.obj.Destroy()
}
