// Package singleton demonstrates a class with exactly one process-wide
// instance.
package singleton

import (
	"sync"

	"github.com/zephyrtronium/objmodel"
)

// Class is the Singleton class. The only way to obtain an instance is
// Instance.
var Class = objmodel.MustClass("Singleton",
	objmodel.Concrete("doSomething", doSomething),
	objmodel.Concrete("calls", calls),
)

// state is the private state of the single instance. It is shared by every
// caller, so it carries its own lock.
type state struct {
	mu sync.Mutex
	n  int
}

var holder = objmodel.NewSingleton(func() (*objmodel.Object, error) {
	return Class.New(&state{}, nil)
})

// Instance returns the single instance, creating it on first use. Every call
// returns the same object.
func Instance() (*objmodel.Object, error) {
	return holder.Instance()
}

// Reset destroys the instance so the next call to Instance creates a new one.
// It is not safe to call Reset concurrently with Instance.
func Reset() error {
	return holder.Reset()
}

// doSomething is a Singleton method.
//
// doSomething writes a message and counts the call.
func doSomething(self *objmodel.Object, args ...interface{}) (interface{}, error) {
	c, err := objmodel.ConsoleArgAt(args, 0)
	if err != nil {
		return nil, err
	}
	s := self.Value.(*state)
	s.mu.Lock()
	s.n++
	s.mu.Unlock()
	c.Println("シングルトンのメソッドが呼ばれました")
	return nil, nil
}

// calls is a Singleton method.
//
// calls returns the number of times doSomething has run.
func calls(self *objmodel.Object, args ...interface{}) (interface{}, error) {
	s := self.Value.(*state)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.n, nil
}
