package objmodel

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

// TestSingletonIdentity tests that every request returns the same object.
func TestSingletonIdentity(t *testing.T) {
	var builds int
	s := NewSingleton(func() (*Object, error) {
		builds++
		return testCounterClass.New(&counter{}, nil)
	})
	if s.Initialized() {
		t.Error("new singleton is initialized")
	}
	a, err := s.Instance()
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Instance()
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("different instances: %v and %v", a, b)
	}
	if builds != 1 {
		t.Errorf("built %d times, want 1", builds)
	}
	a.Perform("incr")
	b.Perform("incr")
	if r, _ := a.Perform("get"); r != 2 {
		t.Errorf("shared state: want 2, got %v", r)
	}
}

// TestSingletonConcurrent tests that concurrent first requests construct the
// object once.
func TestSingletonConcurrent(t *testing.T) {
	var builds int32
	s := NewSingleton(func() (*Object, error) {
		atomic.AddInt32(&builds, 1)
		return testCounterClass.New(&counter{}, nil)
	})
	const n = 64
	objs := make([]*Object, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			objs[i], _ = s.Instance()
		}(i)
	}
	wg.Wait()
	if builds != 1 {
		t.Errorf("built %d times, want 1", builds)
	}
	for i, obj := range objs {
		if obj != objs[0] {
			t.Errorf("goroutine %d got %v, want %v", i, obj, objs[0])
		}
	}
}

// TestSingletonRetry tests that a failed construction leaves the holder
// uninitialized.
func TestSingletonRetry(t *testing.T) {
	bad := errors.New("bad")
	fail := true
	s := NewSingleton(func() (*Object, error) {
		if fail {
			return nil, bad
		}
		return testCounterClass.New(&counter{}, nil)
	})
	if obj, err := s.Instance(); err != bad || obj != nil {
		t.Errorf("first Instance gave (%v, %v), want (nil, %v)", obj, err, bad)
	}
	if s.Initialized() {
		t.Error("singleton initialized after failure")
	}
	fail = false
	obj, err := s.Instance()
	if err != nil {
		t.Fatal(err)
	}
	if !obj.Valid() {
		t.Error("retried instance is not valid")
	}
}

// TestSingletonNilBuild tests that a build returning no object counts as a
// failure rather than initializing the holder with nil.
func TestSingletonNilBuild(t *testing.T) {
	empty := true
	s := NewSingleton(func() (*Object, error) {
		if empty {
			return nil, nil
		}
		return testCounterClass.New(&counter{}, nil)
	})
	obj, err := s.Instance()
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("wrong error: want ErrInvalidArgument, got %v", err)
	}
	if obj != nil {
		t.Errorf("got object %v", obj)
	}
	if s.Initialized() {
		t.Error("singleton initialized by nil build")
	}
	empty = false
	obj, err = s.Instance()
	if err != nil {
		t.Fatal(err)
	}
	if !obj.Valid() {
		t.Error("instance after retry is not valid")
	}
}

// TestSingletonReset tests that Reset destroys the instance and a later
// request builds a new one.
func TestSingletonReset(t *testing.T) {
	var destroyed int
	s := NewSingleton(func() (*Object, error) {
		return testCounterClass.New(&counter{destroyed: &destroyed}, nil)
	})
	if err := s.Reset(); err != nil {
		t.Errorf("reset of uninitialized singleton: %v", err)
	}
	a, _ := s.Instance()
	if err := s.Reset(); err != nil {
		t.Fatal(err)
	}
	if destroyed != 1 {
		t.Errorf("destroyed %d times, want 1", destroyed)
	}
	if a.Valid() {
		t.Error("old instance still valid after reset")
	}
	b, _ := s.Instance()
	if a == b {
		t.Error("reset singleton returned the old instance")
	}
}
