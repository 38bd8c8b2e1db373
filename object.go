package objmodel

import (
	"fmt"
	"sync/atomic"
)

// Object is an instance of a Class: private state plus the operation table
// bound when it was constructed.
//
// Always use (*Class).New or a type-specific constructor to obtain objects.
// The zero Object is a destroyed object, and every operation on it is a
// no-op.
type Object struct {
	// Value is the object's type-specific private state. Operations bound to
	// the object's class know its concrete type.
	Value interface{}

	class *Class
	// table is the bound operation table. It is nil once the object is
	// destroyed.
	table []Fn

	// id is the object's unique ID.
	id uintptr
}

// objcounter is the global counter for object IDs. All accesses to this must
// be atomic.
var objcounter uintptr

// nextObject increments the object counter and returns its value as a unique
// ID for a new object.
func nextObject() uintptr {
	return atomic.AddUintptr(&objcounter, 1)
}

// Perform invokes the named operation with the object as its receiver. The
// body that runs is whatever the object's table bound at construction.
//
// If o is nil or destroyed, Perform does nothing and returns nil, nil. If the
// object's class does not declare op, the error wraps ErrNoSuchOp.
func (o *Object) Perform(op string, args ...interface{}) (interface{}, error) {
	if !o.Valid() {
		return nil, nil
	}
	i, ok := o.class.index[op]
	if !ok {
		return nil, fmt.Errorf("%w: %s does not respond to %s", ErrNoSuchOp, o.class.name, op)
	}
	return o.table[i](o, args...)
}

// Destroy releases the object. If its class declares a destroy operation,
// that runs first. Afterward the object's state and table are gone, and all
// operations on it are no-ops. Destroying a nil or destroyed object does
// nothing.
func (o *Object) Destroy() error {
	if !o.Valid() {
		return nil
	}
	var err error
	if i, ok := o.class.index["destroy"]; ok {
		_, err = o.table[i](o)
	}
	o.Value = nil
	o.table = nil
	return err
}

// Valid returns whether o refers to a live object.
func (o *Object) Valid() bool {
	return o != nil && o.table != nil
}

// Class returns the class the object was constructed from, or nil if o is
// nil.
func (o *Object) Class() *Class {
	if o == nil {
		return nil
	}
	return o.class
}

// UniqueID returns the object's unique ID.
func (o *Object) UniqueID() uintptr {
	if o == nil {
		return 0
	}
	return o.id
}

// String returns a short description of the object.
func (o *Object) String() string {
	switch {
	case o == nil:
		return "<nil object>"
	case o.table == nil:
		return fmt.Sprintf("<destroyed %s@%d>", o.class, o.id)
	}
	return fmt.Sprintf("<%s@%d>", o.class, o.id)
}
