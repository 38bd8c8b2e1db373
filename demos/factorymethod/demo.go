package factorymethod

import "github.com/zephyrtronium/objmodel"

func init() {
	objmodel.Register(objmodel.Demo{
		Name:    "factorymethod",
		Summary: "CarFactory and BikeFactory decide which vehicle to create",
		Run:     Run,
	})
}

// Run creates a vehicle from each factory and drives it, then does the same
// through the useVehicle template method.
func Run(c *objmodel.Console) error {
	var scope objmodel.Scope
	defer scope.Close()

	var factories []*objmodel.Object
	for _, newFactory := range []func() (*objmodel.Object, error){NewCarFactory, NewBikeFactory} {
		f, err := newFactory()
		if err != nil {
			c.Failf("ファクトリーを作成できませんでした: %v", err)
			return err
		}
		factories = append(factories, scope.Own(f))
	}

	for _, f := range factories {
		v, err := CreateVehicle(f)
		if err != nil {
			c.Failf("乗り物を作成できませんでした: %v", err)
			return err
		}
		if _, err := scope.Own(v).Perform("drive", c); err != nil {
			return err
		}
	}

	c.Println()
	c.Println("=== テンプレートメソッドの使用 ===")
	for _, f := range factories {
		if _, err := f.Perform("useVehicle", c); err != nil {
			return err
		}
	}
	return nil
}
