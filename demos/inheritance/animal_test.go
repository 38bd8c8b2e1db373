package inheritance

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/objmodel"
	"github.com/zephyrtronium/objmodel/testutils"
)

func TestClasses(t *testing.T) {
	ops := []string{"makeSound", "getName"}
	testutils.CheckOps(t, AnimalClass, ops)
	testutils.CheckOps(t, DogClass, ops)
	if DogClass.Parent() != AnimalClass {
		t.Errorf("Dog's parent is %v, want Animal", DogClass.Parent())
	}
}

func TestMakeSound(t *testing.T) {
	cases := map[string]struct {
		new  func(string) (*Animal, error)
		want string
	}{
		"Animal": {NewAnimal, "動物の鳴き声\n"},
		"Dog":    {NewDog, "ポチがワンワンと鳴く\n"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			a, err := c.new("ポチ")
			if err != nil {
				t.Fatal(err)
			}
			defer a.Destroy()
			con, out, _ := testutils.Console()
			a.MakeSound(con)
			if out.String() != c.want {
				t.Errorf("wrong sound: want %q, got %q", c.want, out.String())
			}
			if a.Name() != "ポチ" {
				t.Errorf("wrong name: want ポチ, got %q", a.Name())
			}
		})
	}
}

// TestFinalName tests that subclasses cannot replace getName.
func TestFinalName(t *testing.T) {
	_, err := AnimalClass.Extend("Cat", objmodel.Bindings{
		"getName": func(self *objmodel.Object, args ...interface{}) (interface{}, error) {
			return "タマ", nil
		},
	})
	if !errors.Is(err, objmodel.ErrFinal) {
		t.Errorf("wrong error: want ErrFinal, got %v", err)
	}
}

func TestEmptyName(t *testing.T) {
	for name, f := range map[string]func(string) (*Animal, error){"Animal": NewAnimal, "Dog": NewDog} {
		t.Run(name, func(t *testing.T) {
			a, err := f("")
			if !errors.Is(err, objmodel.ErrInvalidArgument) {
				t.Errorf("wrong error: want ErrInvalidArgument, got %v", err)
			}
			if a != nil {
				t.Errorf("got animal %v", a)
			}
		})
	}
}

func TestNilAnimal(t *testing.T) {
	var a *Animal
	con, out, _ := testutils.Console()
	a.MakeSound(con)
	if out.Len() != 0 {
		t.Errorf("nil animal made a sound: %q", out.String())
	}
	if a.Name() != "" {
		t.Errorf("nil animal has name %q", a.Name())
	}
	a.Destroy()
}

func TestRun(t *testing.T) {
	out, _ := testutils.RunDemo(t, "inheritance")
	want := "ポチがワンワンと鳴く\nポチがワンワンと鳴く\n"
	if out != want {
		t.Errorf("wrong output: want %q, got %q", want, out)
	}
}

func TestForeignClass(t *testing.T) {
	cat := objmodel.MustClass("Cat", objmodel.Concrete("makeSound", func(self *objmodel.Object, args ...interface{}) (interface{}, error) { return nil, nil }))
	a, err := newAnimal(cat, "タマ")
	if !errors.Is(err, objmodel.ErrInvalidArgument) {
		t.Errorf("wrong error: want ErrInvalidArgument, got %v", err)
	}
	if a != nil {
		t.Errorf("got animal %v", a.Object())
	}
}
