package objmodel

import "github.com/zephyrtronium/contains"

// Scope owns a group of objects and destroys them together. The zero Scope
// is empty and ready to use. A Scope is not safe for concurrent use.
type Scope struct {
	objs []*Object
	// seen is the set of IDs of adopted objects.
	seen contains.Set
}

// Own adopts obj into the scope and returns it. Adopting the same object
// twice, or a nil or destroyed object, has no effect.
func (s *Scope) Own(obj *Object) *Object {
	if !obj.Valid() {
		return obj
	}
	if s.seen.Add(obj.UniqueID()) {
		s.objs = append(s.objs, obj)
	}
	return obj
}

// Len returns the number of objects the scope owns.
func (s *Scope) Len() int {
	return len(s.objs)
}

// Close destroys every owned object, most recently adopted first, and
// empties the scope. The first error from a destroy operation is returned,
// but every object is destroyed regardless.
func (s *Scope) Close() error {
	var err error
	for i := len(s.objs) - 1; i >= 0; i-- {
		if e := s.objs[i].Destroy(); e != nil && err == nil {
			err = e
		}
		s.objs[i] = nil
	}
	s.objs = s.objs[:0]
	s.seen.Reset()
	return err
}
