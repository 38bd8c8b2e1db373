package objmodel

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Singleton lazily constructs exactly one object and returns it on every
// request. It is safe for concurrent use; concurrent first requests build the
// object once.
//
// The object a Singleton holds is shared, mutable state reachable from
// anywhere the Singleton is. It lives until Reset is called, typically for
// the life of the process.
type Singleton struct {
	build func() (*Object, error)

	mu sync.Mutex
	// done is 1 once obj is set. All accesses must be atomic.
	done uint32
	obj  *Object
}

// NewSingleton creates an uninitialized holder that calls build on first
// access.
func NewSingleton(build func() (*Object, error)) *Singleton {
	return &Singleton{build: build}
}

// Instance returns the held object, constructing it if this is the first
// request. If construction fails or produces no object, the holder remains
// uninitialized and the next request tries again.
func (s *Singleton) Instance() (*Object, error) {
	if atomic.LoadUint32(&s.done) == 1 {
		return s.obj, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done == 0 {
		obj, err := s.build()
		if err != nil {
			return nil, err
		}
		if obj == nil {
			return nil, fmt.Errorf("%w: singleton built a nil object", ErrInvalidArgument)
		}
		s.obj = obj
		atomic.StoreUint32(&s.done, 1)
	}
	return s.obj, nil
}

// Initialized returns whether the held object has been constructed.
func (s *Singleton) Initialized() bool {
	return atomic.LoadUint32(&s.done) == 1
}

// Reset destroys the held object, if any, and returns the holder to the
// uninitialized state. Handles obtained before Reset refer to the destroyed
// object. It is not safe to call Reset concurrently with Instance.
func (s *Singleton) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done == 0 {
		return nil
	}
	obj := s.obj
	s.obj = nil
	atomic.StoreUint32(&s.done, 0)
	return obj.Destroy()
}
