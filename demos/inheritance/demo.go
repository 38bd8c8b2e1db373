package inheritance

import "github.com/zephyrtronium/objmodel"

func init() {
	objmodel.Register(objmodel.Demo{
		Name:    "inheritance",
		Summary: "Dog overrides Animal's makeSound",
		Run:     Run,
	})
}

// Run creates a Dog and makes it bark, first through its Animal handle and
// then through the untyped object.
func Run(c *objmodel.Console) error {
	dog, err := NewDog("ポチ")
	if err != nil {
		c.Failf("犬を作成できませんでした: %v", err)
		return err
	}
	defer dog.Destroy()

	dog.MakeSound(c)

	_, err = dog.Object().Perform("makeSound", c)
	return err
}
