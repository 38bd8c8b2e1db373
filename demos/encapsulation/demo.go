package encapsulation

import "github.com/zephyrtronium/objmodel"

func init() {
	objmodel.Register(objmodel.Demo{
		Name:    "encapsulation",
		Summary: "bank account with a hidden balance",
		Run:     Run,
	})
}

// Run opens an account with 1000, deposits 500, withdraws 200, and prints
// the balance.
func Run(c *objmodel.Console) error {
	acct, err := New(1000)
	if err != nil {
		c.Failf("口座を作成できませんでした: %v", err)
		return err
	}
	defer acct.Destroy()

	acct.Deposit(500)
	acct.Withdraw(200)

	c.Printf("残高: %.2f\n", acct.Balance())
	return nil
}
