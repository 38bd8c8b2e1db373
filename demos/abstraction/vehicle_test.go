package abstraction

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/objmodel"
	"github.com/zephyrtronium/objmodel/testutils"
)

func TestVehicleAbstract(t *testing.T) {
	testutils.CheckAbstract(t, VehicleClass)
	testutils.CheckConcrete(t, CarClass)
	testutils.CheckOps(t, CarClass, []string{"start", "stop", "displayBrand"})
	if _, err := New(VehicleClass, "Test"); !errors.Is(err, objmodel.ErrAbstractClass) {
		t.Errorf("wrong error: want ErrAbstractClass, got %v", err)
	}
}

func TestCar(t *testing.T) {
	car, err := NewCar("Honda")
	if err != nil {
		t.Fatal(err)
	}
	defer car.Destroy()
	cases := map[string]struct {
		f    func(*objmodel.Console) error
		want string
	}{
		"Start":        {car.Start, "Hondaの車がエンジンを始動しました\n"},
		"Stop":         {car.Stop, "Hondaの車が停止しました\n"},
		"DisplayBrand": {car.DisplayBrand, "ブランド: Honda\n"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			con, out, _ := testutils.Console()
			if err := c.f(con); err != nil {
				t.Fatal(err)
			}
			if out.String() != c.want {
				t.Errorf("wrong output: want %q, got %q", c.want, out.String())
			}
		})
	}
}

type electric struct{}

func (electric) Start(brand string) string { return brand + " powers on" }
func (electric) Stop(brand string) string  { return brand + " powers off" }

func TestDefineVehicle(t *testing.T) {
	cls, err := DefineVehicle("EV", electric{})
	if err != nil {
		t.Fatal(err)
	}
	v, err := New(cls, "Tesla")
	if err != nil {
		t.Fatal(err)
	}
	con, out, _ := testutils.Console()
	v.Start(con)
	v.Stop(con)
	v.DisplayBrand(con)
	want := "Tesla powers on\nTesla powers off\nブランド: Tesla\n"
	if out.String() != want {
		t.Errorf("wrong output: want %q, got %q", want, out.String())
	}
	if _, err := New(cls, ""); !errors.Is(err, objmodel.ErrInvalidArgument) {
		t.Errorf("wrong error for empty brand: want ErrInvalidArgument, got %v", err)
	}
}

func TestMissingConsole(t *testing.T) {
	car, err := NewCar("Toyota")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := car.Object().Perform("start"); !errors.Is(err, objmodel.ErrArgument) {
		t.Errorf("wrong error: want ErrArgument, got %v", err)
	}
}

func TestRun(t *testing.T) {
	out, fail := testutils.RunDemo(t, "abstraction")
	once := "Toyotaの車がエンジンを始動しました\n" +
		"Toyotaの車が停止しました\n" +
		"ブランド: Toyota\n"
	if want := once + once; out != want {
		t.Errorf("wrong output: want %q, got %q", want, out)
	}
	want := "エラー: cannot instantiate abstract class Vehicle: unbound start, stop\n"
	if fail != want {
		t.Errorf("wrong failure output: want %q, got %q", want, fail)
	}
}

// TestForeignClass tests that vehicle handles refuse classes that do not
// derive from VehicleClass, even ones declaring the same operations.
func TestForeignClass(t *testing.T) {
	lookalike := objmodel.MustClass("Lookalike",
		objmodel.Concrete("start", func(self *objmodel.Object, args ...interface{}) (interface{}, error) { return nil, nil }),
		objmodel.Concrete("stop", func(self *objmodel.Object, args ...interface{}) (interface{}, error) { return nil, nil }),
		objmodel.Concrete("displayBrand", func(self *objmodel.Object, args ...interface{}) (interface{}, error) { return nil, nil }),
	)
	cases := map[string]*objmodel.Class{
		"Lookalike": lookalike,
		"Empty":     objmodel.MustClass("Empty"),
		"Nil":       nil,
	}
	for name, cls := range cases {
		t.Run(name, func(t *testing.T) {
			v, err := New(cls, "Toyota")
			if !errors.Is(err, objmodel.ErrInvalidArgument) {
				t.Errorf("wrong error: want ErrInvalidArgument, got %v", err)
			}
			if v != nil {
				t.Errorf("got vehicle %v", v.Object())
			}
		})
	}
}
