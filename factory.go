package objmodel

import (
	"fmt"
	"log"
	"sort"
)

// A Constructor creates an object from constructor arguments.
type Constructor func(args ...interface{}) (*Object, error)

// Factory maps a closed set of tags to constructors. It is the single place
// deciding which concrete class is built for which tag.
type Factory struct {
	name  string
	ctors map[string]Constructor
	// Log, if not nil, receives a report of every unknown tag passed to
	// Create.
	Log *log.Logger
}

// NewFactory creates a factory over the given variants. The map is copied,
// so the set of variants cannot change after this returns.
func NewFactory(name string, variants map[string]Constructor) *Factory {
	ctors := make(map[string]Constructor, len(variants))
	for tag, f := range variants {
		if f != nil {
			ctors[tag] = f
		}
	}
	return &Factory{name: name, ctors: ctors}
}

// Create builds the variant named by tag. If tag is unknown, the result is
// nil and the error wraps ErrUnknownVariant.
func (f *Factory) Create(tag string, args ...interface{}) (*Object, error) {
	ctor, ok := f.ctors[tag]
	if !ok {
		err := fmt.Errorf("%w: %s has no variant %q", ErrUnknownVariant, f.name, tag)
		if f.Log != nil {
			f.Log.Print(err)
		}
		return nil, err
	}
	return ctor(args...)
}

// Variants returns the factory's tags in sorted order.
func (f *Factory) Variants() []string {
	r := make([]string, 0, len(f.ctors))
	for tag := range f.ctors {
		r = append(r, tag)
	}
	sort.Strings(r)
	return r
}

// Name returns the factory's name.
func (f *Factory) Name() string {
	return f.name
}
