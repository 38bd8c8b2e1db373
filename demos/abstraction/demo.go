package abstraction

import "github.com/zephyrtronium/objmodel"

func init() {
	objmodel.Register(objmodel.Demo{
		Name:    "abstraction",
		Summary: "abstract Vehicle with a concrete Car",
		Run:     Run,
	})
}

// Run drives a Toyota through the abstract and concrete operations, then
// shows that the abstract Vehicle itself cannot be constructed.
func Run(c *objmodel.Console) error {
	car, err := NewCar("Toyota")
	if err != nil {
		c.Failf("メモリの割り当てに失敗しました: %v", err)
		return err
	}
	defer car.Destroy()

	for _, step := range []func(*objmodel.Console) error{car.Start, car.Stop, car.DisplayBrand} {
		if err := step(c); err != nil {
			return err
		}
	}

	// The same operations through the untyped object.
	obj := car.Object()
	for _, op := range []string{"start", "stop", "displayBrand"} {
		if _, err := obj.Perform(op, c); err != nil {
			return err
		}
	}

	if _, err := VehicleClass.New(&vehicle{brand: "Test"}, nil); err != nil {
		c.Failf("エラー: %v", err)
	}
	return nil
}
