// Package standup demonstrates the Template Method pattern. Every employee
// stands up and answers the same way; only the style and the salary the
// answer reports differ between kinds of employee.
package standup

import (
	"fmt"

	"github.com/zephyrtronium/objmodel"
)

// ShainClass is the abstract employee. getSalary and getStyle are the
// customizable steps; standup is the template method that sequences them,
// and getBaseSalary is a helper no subclass can replace.
var ShainClass = objmodel.MustClass("Shain",
	objmodel.Abstract("getSalary"),
	objmodel.Abstract("getStyle"),
	objmodel.Final("getBaseSalary", getBaseSalary),
	objmodel.Final("standup", standup),
)

// A Role supplies the customizable steps of the standup for one kind of
// employee.
type Role interface {
	// Salary computes the salary from the base salary.
	Salary(base int) int
	// Style describes how the employee stands up.
	Style() string
}

// Define creates a subclass of ShainClass whose abstract operations are
// bound to r.
func Define(name string, r Role) (*objmodel.Class, error) {
	return ShainClass.Extend(name, objmodel.Bindings{
		"getSalary": func(self *objmodel.Object, args ...interface{}) (interface{}, error) {
			base, err := self.Perform("getBaseSalary")
			if err != nil {
				return nil, err
			}
			return r.Salary(base.(int)), nil
		},
		"getStyle": func(self *objmodel.Object, args ...interface{}) (interface{}, error) {
			return r.Style(), nil
		},
	})
}

type tanto struct{}

func (tanto) Salary(base int) int { return base }
func (tanto) Style() string       { return "普通に" }

type shunin struct{}

func (shunin) Salary(base int) int { return base*2 + 1 }
func (shunin) Style() string       { return "シャキッと" }

type bucho struct{}

func (bucho) Salary(base int) int { return base * 3 }
func (bucho) Style() string       { return "だるそうに" }

var (
	// TantoClass is a staff member, paid the base salary.
	TantoClass = mustDefine("Tanto", tanto{})
	// ShuninClass is a chief, paid twice the base salary plus one.
	ShuninClass = mustDefine("Shunin", shunin{})
	// BuchoClass is a department head, paid three times the base salary.
	BuchoClass = mustDefine("Bucho", bucho{})
)

func mustDefine(name string, r Role) *objmodel.Class {
	c, err := Define(name, r)
	if err != nil {
		panic(err)
	}
	return c
}

// shain is the private state of every employee.
type shain struct {
	name       string
	baseSalary int
}

// Employee is a handle to an object of any class derived from ShainClass.
type Employee struct {
	obj *objmodel.Object
}

// New creates an employee of the given class, which must derive from
// ShainClass. The name must not be empty. Other classes fail with
// objmodel.ErrInvalidArgument.
func New(cls *objmodel.Class, name string, baseSalary int) (*Employee, error) {
	obj, err := newShain(cls, name, baseSalary)
	if err != nil {
		return nil, err
	}
	return &Employee{obj: obj}, nil
}

// newShain is the base initializer for every employee class.
func newShain(cls *objmodel.Class, name string, baseSalary int) (*objmodel.Object, error) {
	if !cls.Inherits(ShainClass) {
		return nil, fmt.Errorf("%w: %s is not a kind of %s", objmodel.ErrInvalidArgument, cls, ShainClass)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: %s needs a name", objmodel.ErrInvalidArgument, cls)
	}
	return cls.New(&shain{name: name, baseSalary: baseSalary}, nil)
}

// Wrap returns an Employee handle for an object of a class derived from
// ShainClass, such as one created by Factory.
func Wrap(obj *objmodel.Object) (*Employee, error) {
	if !obj.Valid() {
		return nil, fmt.Errorf("%w: cannot wrap %v", objmodel.ErrInvalidArgument, obj)
	}
	if !obj.Class().Inherits(ShainClass) {
		return nil, fmt.Errorf("%w: %v is not a kind of %s", objmodel.ErrInvalidArgument, obj, ShainClass)
	}
	return &Employee{obj: obj}, nil
}

// Standup makes the employee stand up and report to c.
func (e *Employee) Standup(c *objmodel.Console) error {
	if e == nil {
		return nil
	}
	_, err := e.obj.Perform("standup", c)
	return err
}

// Salary returns the employee's salary, or 0 for an invalid handle.
func (e *Employee) Salary() int {
	if e == nil {
		return 0
	}
	r, _ := e.obj.Perform("getSalary")
	n, _ := r.(int)
	return n
}

// Style returns how the employee stands up, or the empty string for an
// invalid handle.
func (e *Employee) Style() string {
	if e == nil {
		return ""
	}
	r, _ := e.obj.Perform("getStyle")
	s, _ := r.(string)
	return s
}

// Name returns the employee's name.
func (e *Employee) Name() string {
	if e == nil || !e.obj.Valid() {
		return ""
	}
	return e.obj.Value.(*shain).name
}

// Object returns the underlying object.
func (e *Employee) Object() *objmodel.Object {
	if e == nil {
		return nil
	}
	return e.obj
}

// Destroy releases the employee.
func (e *Employee) Destroy() {
	if e == nil {
		return
	}
	e.obj.Destroy()
}

// getBaseSalary is a Shain method.
func getBaseSalary(self *objmodel.Object, args ...interface{}) (interface{}, error) {
	return self.Value.(*shain).baseSalary, nil
}

// standup is a Shain method.
//
// standup asks the object for its style, then its salary, then reports both.
// The order of the steps and the report are the same for every subclass.
func standup(self *objmodel.Object, args ...interface{}) (interface{}, error) {
	c, err := objmodel.ConsoleArgAt(args, 0)
	if err != nil {
		return nil, err
	}
	style, err := self.Perform("getStyle")
	if err != nil {
		return nil, err
	}
	salary, err := self.Perform("getSalary")
	if err != nil {
		return nil, err
	}
	report(c, self.Value.(*shain).name, style, salary)
	return nil, nil
}

// report writes a standup answer.
func report(c *objmodel.Console, name string, style, salary interface{}) {
	c.Printf("%sが%s起立して答えました。給料は%d円です。\n", name, style, salary)
}
