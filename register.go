package objmodel

import (
	"fmt"
	"sort"
	"sync"
)

// A Demo is a runnable example program built on the object model.
type Demo struct {
	// Name identifies the demo on the command line.
	Name string
	// Summary is a one-line description.
	Summary string
	// Run executes the demo, writing to c. A non-nil error means the demo
	// aborted early, after reporting to c.
	Run func(c *Console) error
}

var (
	demoMu sync.Mutex
	// demos is the set of registered demos, by name.
	demos = make(map[string]Demo, 8)
)

// Register adds a demo. It is intended to be called from the init function of
// the package implementing the demo. Register panics if a demo with the same
// name is already registered.
func Register(d Demo) {
	demoMu.Lock()
	defer demoMu.Unlock()
	if _, ok := demos[d.Name]; ok {
		panic(fmt.Sprintf("objmodel: demo %q registered twice", d.Name))
	}
	demos[d.Name] = d
}

// Lookup returns the registered demo with the given name.
func Lookup(name string) (Demo, bool) {
	demoMu.Lock()
	defer demoMu.Unlock()
	d, ok := demos[name]
	return d, ok
}

// Demos returns all registered demos sorted by name.
func Demos() []Demo {
	demoMu.Lock()
	defer demoMu.Unlock()
	r := make([]Demo, 0, len(demos))
	for _, d := range demos {
		r = append(r, d)
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Name < r[j].Name })
	return r
}
