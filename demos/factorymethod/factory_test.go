package factorymethod

import (
	"testing"

	"github.com/zephyrtronium/objmodel"
	"github.com/zephyrtronium/objmodel/testutils"
)

func TestClasses(t *testing.T) {
	testutils.CheckAbstract(t, ProductClass)
	testutils.CheckAbstract(t, CreatorClass)
	for _, cls := range []*objmodel.Class{CarClass, BikeClass, CarFactoryClass, BikeFactoryClass} {
		testutils.CheckConcrete(t, cls)
	}
}

func TestCreateVehicle(t *testing.T) {
	cases := map[string]struct {
		new   func() (*objmodel.Object, error)
		class *objmodel.Class
		drive string
	}{
		"Car":  {NewCarFactory, CarClass, "車が走っています\n"},
		"Bike": {NewBikeFactory, BikeClass, "バイクが走っています\n"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			f, err := c.new()
			if err != nil {
				t.Fatal(err)
			}
			defer f.Destroy()
			v, err := CreateVehicle(f)
			if err != nil {
				t.Fatal(err)
			}
			defer v.Destroy()
			if v.Class() != c.class {
				t.Errorf("wrong class: want %v, got %v", c.class, v.Class())
			}
			con, out, _ := testutils.Console()
			if _, err := v.Perform("drive", con); err != nil {
				t.Fatal(err)
			}
			if out.String() != c.drive {
				t.Errorf("wrong output: want %q, got %q", c.drive, out.String())
			}
			out.Reset()
			if _, err := f.Perform("useVehicle", con); err != nil {
				t.Fatal(err)
			}
			if out.String() != c.drive {
				t.Errorf("wrong useVehicle output: want %q, got %q", c.drive, out.String())
			}
		})
	}
}

func TestCreateVehicleInvalid(t *testing.T) {
	v, err := CreateVehicle(nil)
	if v != nil || err != nil {
		t.Errorf("nil creator gave (%v, %v)", v, err)
	}
}

func TestRun(t *testing.T) {
	out, _ := testutils.RunDemo(t, "factorymethod")
	want := "車が走っています\n" +
		"バイクが走っています\n" +
		"\n" +
		"=== テンプレートメソッドの使用 ===\n" +
		"車が走っています\n" +
		"バイクが走っています\n"
	if out != want {
		t.Errorf("wrong output: want %q, got %q", want, out)
	}
}
