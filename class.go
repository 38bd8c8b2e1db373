package objmodel

import (
	"fmt"
	"strings"
)

// OpKind classifies an operation declared by a class.
type OpKind int

const (
	// AbstractOp operations have no default body. Every instantiable class
	// must bind them.
	AbstractOp OpKind = iota
	// ConcreteOp operations have a default body which derived classes may
	// replace.
	ConcreteOp
	// FinalOp operations have a body which derived classes may not replace.
	// Template methods are final.
	FinalOp
)

func (k OpKind) String() string {
	switch k {
	case AbstractOp:
		return "abstract"
	case ConcreteOp:
		return "concrete"
	case FinalOp:
		return "final"
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// Op declares an operation slot.
type Op struct {
	// Name is the name by which callers perform the operation.
	Name string
	// Kind is the operation's kind.
	Kind OpKind
	// Default is the body bound when no class overrides the operation. It is
	// nil for abstract operations.
	Default Fn
}

// Abstract declares an operation with no default body.
func Abstract(name string) Op {
	return Op{Name: name, Kind: AbstractOp}
}

// Concrete declares an overridable operation with a default body.
func Concrete(name string, f Fn) Op {
	return Op{Name: name, Kind: ConcreteOp, Default: f}
}

// Final declares an operation whose body no derived class can replace.
func Final(name string, f Fn) Op {
	return Op{Name: name, Kind: FinalOp, Default: f}
}

// Bindings maps operation names to the bodies a class or object binds for
// them.
type Bindings map[string]Fn

// Class describes the operations of a type of object and holds the table
// that new instances receive. A Class is immutable once created.
//
// Always use NewClass, MustClass, Extend, or MustExtend to obtain classes.
type Class struct {
	name   string
	parent *Class
	// ops is the ordered list of declared operations, the parent's first.
	ops []Op
	// index maps operation names to their positions in ops and table.
	index map[string]int
	// table holds the bound body of each slot. A nil entry is an unbound
	// abstract operation.
	table []Fn
}

// NewClass creates a root class declaring the given operations in order.
func NewClass(name string, ops ...Op) (*Class, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: class name is empty", ErrInvalidArgument)
	}
	c := &Class{
		name:  name,
		ops:   make([]Op, 0, len(ops)),
		index: make(map[string]int, len(ops)),
	}
	if err := c.declare(ops); err != nil {
		return nil, err
	}
	return c, nil
}

// MustClass is like NewClass but panics if the class cannot be created. It
// is intended for package-level class definitions.
func MustClass(name string, ops ...Op) *Class {
	c, err := NewClass(name, ops...)
	if err != nil {
		panic(fmt.Errorf("objmodel: error defining class %s: %w", name, err))
	}
	return c
}

// Extend creates a subclass of c. The subclass inherits every slot of c in
// the same order, binds overrides over the inherited slots, and appends any
// new operations after them. It is an error to override a final operation
// or one that c does not declare, and to redeclare an inherited operation.
func (c *Class) Extend(name string, overrides Bindings, ops ...Op) (*Class, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: class name is empty", ErrInvalidArgument)
	}
	d := &Class{
		name:   name,
		parent: c,
		ops:    make([]Op, len(c.ops), len(c.ops)+len(ops)),
		index:  make(map[string]int, len(c.ops)+len(ops)),
		table:  make([]Fn, len(c.table), len(c.table)+len(ops)),
	}
	copy(d.ops, c.ops)
	copy(d.table, c.table)
	for k, v := range c.index {
		d.index[k] = v
	}
	if err := d.declare(ops); err != nil {
		return nil, err
	}
	if err := d.bind(d.table, overrides); err != nil {
		return nil, err
	}
	return d, nil
}

// MustExtend is like Extend but panics if the class cannot be created.
func (c *Class) MustExtend(name string, overrides Bindings, ops ...Op) *Class {
	d, err := c.Extend(name, overrides, ops...)
	if err != nil {
		panic(fmt.Errorf("objmodel: error defining class %s: %w", name, err))
	}
	return d
}

// declare appends new operation slots to the class.
func (c *Class) declare(ops []Op) error {
	for _, op := range ops {
		if op.Name == "" {
			return fmt.Errorf("%w: %s declares an operation with no name", ErrInvalidArgument, c.name)
		}
		if _, ok := c.index[op.Name]; ok {
			return fmt.Errorf("%w: %s declares %s twice", ErrDuplicateOp, c.name, op.Name)
		}
		switch {
		case op.Kind == AbstractOp && op.Default != nil:
			return fmt.Errorf("%w: abstract operation %s.%s has a body", ErrInvalidArgument, c.name, op.Name)
		case op.Kind != AbstractOp && op.Default == nil:
			return fmt.Errorf("%w: %s operation %s.%s has no body", ErrInvalidArgument, op.Kind, c.name, op.Name)
		}
		c.index[op.Name] = len(c.ops)
		c.ops = append(c.ops, op)
		c.table = append(c.table, op.Default)
	}
	return nil
}

// bind writes overrides into table, which must have the same layout as the
// class's own table.
func (c *Class) bind(table []Fn, overrides Bindings) error {
	for name, f := range overrides {
		i, ok := c.index[name]
		if !ok {
			return fmt.Errorf("%w: %s does not declare %s", ErrNoSuchOp, c.name, name)
		}
		if c.ops[i].Kind == FinalOp {
			return fmt.Errorf("%w: %s cannot override %s", ErrFinal, c.name, name)
		}
		if f == nil {
			return fmt.Errorf("%w: %s binds nil to %s", ErrInvalidArgument, c.name, name)
		}
		table[i] = f
	}
	return nil
}

// unbound returns the names of the abstract operations left unbound in
// table, in slot order.
func (c *Class) unbound(table []Fn) []string {
	var r []string
	for i, f := range table {
		if f == nil {
			r = append(r, c.ops[i].Name)
		}
	}
	return r
}

// New constructs an instance of c with the given private state. Per-object
// overrides, if any, are bound into a copy of the class table before the
// object is returned; the object's table never changes afterward. New fails
// with ErrAbstractClass if any abstract operation remains unbound.
func (c *Class) New(value interface{}, overrides Bindings) (*Object, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil class", ErrInvalidArgument)
	}
	table := c.table
	if table == nil {
		// A nil table marks a destroyed object.
		table = []Fn{}
	}
	if len(overrides) > 0 {
		table = make([]Fn, len(c.table))
		copy(table, c.table)
		if err := c.bind(table, overrides); err != nil {
			return nil, err
		}
	}
	if missing := c.unbound(table); len(missing) > 0 {
		return nil, fmt.Errorf("%w %s: unbound %s", ErrAbstractClass, c.name, strings.Join(missing, ", "))
	}
	return &Object{
		Value: value,
		class: c,
		table: table,
		id:    nextObject(),
	}, nil
}

// Name returns the class's name.
func (c *Class) Name() string {
	return c.name
}

// Parent returns the class's parent, or nil if it is a root class.
func (c *Class) Parent() *Class {
	return c.parent
}

// Inherits returns whether c is base or derives from it.
func (c *Class) Inherits(base *Class) bool {
	if base == nil {
		return false
	}
	for ; c != nil; c = c.parent {
		if c == base {
			return true
		}
	}
	return false
}

// IsAbstract returns whether the class leaves any abstract operation
// unbound, i.e. whether New would fail without per-object overrides.
func (c *Class) IsAbstract() bool {
	return len(c.unbound(c.table)) > 0
}

// Declares returns whether the class has a slot for the named operation.
func (c *Class) Declares(op string) bool {
	_, ok := c.index[op]
	return ok
}

// String returns the class's name.
func (c *Class) String() string {
	if c == nil {
		return "<nil class>"
	}
	return c.name
}
