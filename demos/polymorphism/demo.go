package polymorphism

import "github.com/zephyrtronium/objmodel"

func init() {
	objmodel.Register(objmodel.Demo{
		Name:    "polymorphism",
		Summary: "Japanese and American answer sayHello differently",
		Run:     Run,
	})
}

// Run greets through one Human handle bound first to a Japanese and then to
// an American, then prints the areas of a circle and a rectangle.
func Run(c *objmodel.Console) error {
	var h *Human
	var err error

	h, err = NewJapanese("太郎")
	if err != nil {
		c.Failf("メモリの割り当てに失敗しました: %v", err)
		return err
	}
	if err := h.SayHello(c); err != nil {
		return err
	}
	h.Destroy()

	h, err = NewAmerican("John")
	if err != nil {
		c.Failf("メモリの割り当てに失敗しました: %v", err)
		return err
	}
	if err := h.SayHello(c); err != nil {
		return err
	}
	h.Destroy()

	var scope objmodel.Scope
	defer scope.Close()
	circle, err := NewCircle(5)
	if err != nil {
		c.Failf("円を作成できませんでした: %v", err)
		return err
	}
	scope.Own(circle)
	rect, err := NewRectangle(4, 6)
	if err != nil {
		c.Failf("長方形を作成できませんでした: %v", err)
		return err
	}
	scope.Own(rect)
	for _, shape := range []*objmodel.Object{circle, rect} {
		if err := PrintArea(c, shape); err != nil {
			return err
		}
	}
	return nil
}
