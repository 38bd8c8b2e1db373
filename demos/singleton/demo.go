package singleton

import "github.com/zephyrtronium/objmodel"

func init() {
	objmodel.Register(objmodel.Demo{
		Name:    "singleton",
		Summary: "two requests for the instance return the same object",
		Run:     Run,
	})
}

// Run fetches the instance twice, shows that both are the same object, and
// calls doSomething through each.
func Run(c *objmodel.Console) error {
	s1, err := Instance()
	if err != nil {
		c.Failf("インスタンスを取得できませんでした: %v", err)
		return err
	}
	s2, err := Instance()
	if err != nil {
		c.Failf("インスタンスを取得できませんでした: %v", err)
		return err
	}

	c.Printf("s1 == s2: %t\n", s1 == s2)

	for _, s := range []*objmodel.Object{s1, s2} {
		if _, err := s.Perform("doSomething", c); err != nil {
			return err
		}
	}
	n, err := s1.Perform("calls")
	if err != nil {
		return err
	}
	c.Printf("呼び出し回数: %d\n", n)
	return nil
}
