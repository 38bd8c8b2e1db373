// Package testutils provides utilities for testing classes and demos built on
// objmodel.
package testutils

import (
	"bytes"
	"errors"
	"testing"

	"github.com/zephyrtronium/objmodel"
)

// Console returns a console writing to fresh buffers, along with the buffers
// for output and failures.
func Console() (c *objmodel.Console, out, fail *bytes.Buffer) {
	out, fail = new(bytes.Buffer), new(bytes.Buffer)
	return objmodel.NewConsole(out, fail), out, fail
}

// RunDemo runs the registered demo with the given name and returns what it
// wrote. The test fails if the demo is not registered or returns an error.
func RunDemo(t *testing.T, name string) (out, fail string) {
	t.Helper()
	d, ok := objmodel.Lookup(name)
	if !ok {
		t.Fatalf("no demo named %q", name)
	}
	c, o, f := Console()
	if err := d.Run(c); err != nil {
		t.Fatalf("demo %s failed: %v\nstderr:\n%s", name, err, f)
	}
	return o.String(), f.String()
}

// CheckOps is a testing helper to check that a class declares each of the
// given operations.
func CheckOps(t *testing.T, cls *objmodel.Class, ops []string) {
	t.Helper()
	for _, name := range ops {
		t.Run("Have_"+name, func(t *testing.T) {
			if !cls.Declares(name) {
				t.Fatalf("%s does not declare %s", cls, name)
			}
		})
	}
}

// CheckConcrete is a testing helper to check that a class can be
// instantiated, i.e. that it binds every abstract operation it inherits.
func CheckConcrete(t *testing.T, cls *objmodel.Class) {
	t.Helper()
	if cls.IsAbstract() {
		t.Errorf("%s leaves abstract operations unbound", cls)
	}
}

// CheckAbstract is a testing helper to check that a class cannot be
// instantiated directly.
func CheckAbstract(t *testing.T, cls *objmodel.Class) {
	t.Helper()
	if !cls.IsAbstract() {
		t.Errorf("%s has no unbound abstract operations", cls)
	}
	obj, err := cls.New(nil, nil)
	if !errors.Is(err, objmodel.ErrAbstractClass) {
		t.Errorf("constructing %s gave error %v, want ErrAbstractClass", cls, err)
	}
	if obj != nil {
		t.Errorf("constructing %s returned object %v", cls, obj)
	}
}

// CheckInvalidHandle is a testing helper to check that performing each of
// the given operations on a nil object does nothing and returns nil.
func CheckInvalidHandle(t *testing.T, ops []string, args ...interface{}) {
	t.Helper()
	var obj *objmodel.Object
	for _, name := range ops {
		t.Run("Nil_"+name, func(t *testing.T) {
			r, err := obj.Perform(name, args...)
			if r != nil || err != nil {
				t.Errorf("%s on nil object gave (%v, %v), want (nil, nil)", name, r, err)
			}
		})
	}
}

// BenchDummy is a dummy variable to prevent dead code elimination in
// benchmarks.
var BenchDummy interface{}
