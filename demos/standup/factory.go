package standup

import (
	"github.com/zephyrtronium/objmodel"
)

// Titles maps each kind of employee to the name the factory gives it.
var Titles = map[string]string{
	"Tanto":  "担当",
	"Shunin": "主任",
	"Bucho":  "部長",
}

// hire returns a factory constructor for cls. The constructor takes the base
// salary as its only argument.
func hire(cls *objmodel.Class) objmodel.Constructor {
	return func(args ...interface{}) (*objmodel.Object, error) {
		base, err := objmodel.IntArgAt(args, 0)
		if err != nil {
			return nil, err
		}
		return newShain(cls, Titles[cls.Name()], base)
	}
}

// Factory creates employees by kind: Tanto, Shunin, or Bucho.
var Factory = objmodel.NewFactory("SyainFactory", map[string]objmodel.Constructor{
	"Tanto":  hire(TantoClass),
	"Shunin": hire(ShuninClass),
	"Bucho":  hire(BuchoClass),
})

// CreateShain creates an employee of the given kind with the given base
// salary. Unknown kinds fail with objmodel.ErrUnknownVariant.
func CreateShain(kind string, baseSalary int) (*Employee, error) {
	obj, err := Factory.Create(kind, baseSalary)
	if err != nil {
		return nil, err
	}
	return Wrap(obj)
}
