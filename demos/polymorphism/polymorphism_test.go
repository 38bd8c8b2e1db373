package polymorphism

import (
	"errors"
	"math"
	"testing"

	"github.com/zephyrtronium/objmodel"
	"github.com/zephyrtronium/objmodel/testutils"
)

func TestHumanClasses(t *testing.T) {
	testutils.CheckAbstract(t, HumanClass)
	for _, cls := range []*objmodel.Class{JapaneseClass, AmericanClass} {
		t.Run(cls.Name(), func(t *testing.T) {
			testutils.CheckOps(t, cls, []string{"sayHello"})
			testutils.CheckConcrete(t, cls)
		})
	}
}

func TestSayHello(t *testing.T) {
	cases := map[string]struct {
		new  func(string) (*Human, error)
		name string
		want string
	}{
		"Japanese": {NewJapanese, "太郎", "こんにちは。私の名前は太郎です。\n"},
		"American": {NewAmerican, "John", "Hello. My name is John.\n"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			h, err := c.new(c.name)
			if err != nil {
				t.Fatal(err)
			}
			defer h.Destroy()
			con, out, _ := testutils.Console()
			if err := h.SayHello(con); err != nil {
				t.Fatal(err)
			}
			if out.String() != c.want {
				t.Errorf("wrong greeting: want %q, got %q", c.want, out.String())
			}
		})
	}
}

type shout struct{}

func (shout) Greet(name string) string { return name + "!" }

// TestDefineHuman tests that new kinds of human need only a Greeter.
func TestDefineHuman(t *testing.T) {
	cls, err := DefineHuman("Shouter", shout{})
	if err != nil {
		t.Fatal(err)
	}
	h, err := NewHuman(cls, "Bob")
	if err != nil {
		t.Fatal(err)
	}
	con, out, _ := testutils.Console()
	h.SayHello(con)
	if want := "Bob!\n"; out.String() != want {
		t.Errorf("wrong greeting: want %q, got %q", want, out.String())
	}
	if _, err := NewHuman(HumanClass, "Bob"); !errors.Is(err, objmodel.ErrAbstractClass) {
		t.Errorf("wrong error for abstract Human: want ErrAbstractClass, got %v", err)
	}
	if _, err := NewHuman(cls, ""); !errors.Is(err, objmodel.ErrInvalidArgument) {
		t.Errorf("wrong error for empty name: want ErrInvalidArgument, got %v", err)
	}
}

func TestArea(t *testing.T) {
	cases := map[string]struct {
		new  func() (*objmodel.Object, error)
		want float64
	}{
		"Circle":     {func() (*objmodel.Object, error) { return NewCircle(5) }, 25 * math.Pi},
		"Rectangle":  {func() (*objmodel.Object, error) { return NewRectangle(4, 6) }, 24},
		"ZeroCircle": {func() (*objmodel.Object, error) { return NewCircle(0) }, 0},
		"Line":       {func() (*objmodel.Object, error) { return NewRectangle(0, 6) }, 0},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			shape, err := c.new()
			if err != nil {
				t.Fatal(err)
			}
			defer shape.Destroy()
			got, err := Area(shape)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(got-c.want) > 1e-9 {
				t.Errorf("wrong area: want %v, got %v", c.want, got)
			}
		})
	}
}

func TestBadShapes(t *testing.T) {
	cases := map[string]func() (*objmodel.Object, error){
		"NegRadius": func() (*objmodel.Object, error) { return NewCircle(-1) },
		"NaNRadius": func() (*objmodel.Object, error) { return NewCircle(math.NaN()) },
		"NegWidth":  func() (*objmodel.Object, error) { return NewRectangle(-1, 1) },
		"NegHeight": func() (*objmodel.Object, error) { return NewRectangle(1, -1) },
	}
	for name, f := range cases {
		t.Run(name, func(t *testing.T) {
			obj, err := f()
			if !errors.Is(err, objmodel.ErrInvalidArgument) {
				t.Errorf("wrong error: want ErrInvalidArgument, got %v", err)
			}
			if obj != nil {
				t.Errorf("got shape %v", obj)
			}
		})
	}
	testutils.CheckAbstract(t, ShapeClass)
}

func TestRun(t *testing.T) {
	out, fail := testutils.RunDemo(t, "polymorphism")
	want := "こんにちは。私の名前は太郎です。\n" +
		"Hello. My name is John.\n" +
		"面積: 78.54\n" +
		"面積: 24.00\n"
	if out != want {
		t.Errorf("wrong output: want %q, got %q", want, out)
	}
	if fail != "" {
		t.Errorf("unexpected failure output %q", fail)
	}
}

// TestForeignClass tests that human handles refuse classes that do not
// derive from HumanClass.
func TestForeignClass(t *testing.T) {
	cases := map[string]*objmodel.Class{
		"Shape":  CircleClass,
		"Parrot": objmodel.MustClass("Parrot", objmodel.Concrete("sayHello", func(self *objmodel.Object, args ...interface{}) (interface{}, error) { return nil, nil })),
		"Nil":    nil,
	}
	for name, cls := range cases {
		t.Run(name, func(t *testing.T) {
			h, err := NewHuman(cls, "太郎")
			if !errors.Is(err, objmodel.ErrInvalidArgument) {
				t.Errorf("wrong error: want ErrInvalidArgument, got %v", err)
			}
			if h != nil {
				t.Errorf("got human %v", h)
			}
		})
	}
}
