// Package encapsulation demonstrates hiding state behind operations with a
// bank account whose balance is reachable only through its table.
package encapsulation

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/zephyrtronium/objmodel"
)

// Class is the BankAccount class.
var Class = objmodel.MustClass("BankAccount",
	objmodel.Concrete("deposit", deposit),
	objmodel.Concrete("withdraw", withdraw),
	objmodel.Concrete("getBalance", getBalance),
	objmodel.Concrete("getNumber", getNumber),
	objmodel.Concrete("destroy", destroy),
)

// account is the private state of a BankAccount.
type account struct {
	number  uuid.UUID
	balance float64
}

// Account is a handle to a BankAccount object. Methods on a nil or destroyed
// Account do nothing and return zero values.
type Account struct {
	obj *objmodel.Object
}

// New opens an account with the given initial balance and a fresh account
// number.
func New(initial float64) (*Account, error) {
	obj, err := NewObject(initial)
	if err != nil {
		return nil, err
	}
	return &Account{obj: obj}, nil
}

// NewObject is like New but returns the underlying object.
func NewObject(initial float64) (*objmodel.Object, error) {
	n, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("could not assign account number: %w", err)
	}
	return Class.New(&account{number: n, balance: initial}, nil)
}

// Deposit adds amount to the balance. Non-positive amounts are ignored.
func (a *Account) Deposit(amount float64) {
	if a == nil {
		return
	}
	a.obj.Perform("deposit", amount)
}

// Withdraw removes amount from the balance. Non-positive amounts and amounts
// greater than the balance are ignored.
func (a *Account) Withdraw(amount float64) {
	if a == nil {
		return
	}
	a.obj.Perform("withdraw", amount)
}

// Balance returns the current balance, or 0 for an invalid account.
func (a *Account) Balance() float64 {
	if a == nil {
		return 0
	}
	r, _ := a.obj.Perform("getBalance")
	b, _ := r.(float64)
	return b
}

// Number returns the account number, or the empty string for an invalid
// account.
func (a *Account) Number() string {
	if a == nil {
		return ""
	}
	r, _ := a.obj.Perform("getNumber")
	s, _ := r.(string)
	return s
}

// Object returns the account's underlying object.
func (a *Account) Object() *objmodel.Object {
	if a == nil {
		return nil
	}
	return a.obj
}

// Destroy releases the account.
func (a *Account) Destroy() {
	if a == nil {
		return
	}
	a.obj.Destroy()
}

// deposit is a BankAccount method.
//
// deposit adds a positive amount to the balance.
func deposit(self *objmodel.Object, args ...interface{}) (interface{}, error) {
	amount, err := objmodel.FloatArgAt(args, 0)
	if err != nil {
		return nil, err
	}
	if amount > 0 {
		self.Value.(*account).balance += amount
	}
	return nil, nil
}

// withdraw is a BankAccount method.
//
// withdraw removes a positive amount no greater than the balance.
func withdraw(self *objmodel.Object, args ...interface{}) (interface{}, error) {
	amount, err := objmodel.FloatArgAt(args, 0)
	if err != nil {
		return nil, err
	}
	a := self.Value.(*account)
	if amount > 0 && amount <= a.balance {
		a.balance -= amount
	}
	return nil, nil
}

// getBalance is a BankAccount method.
func getBalance(self *objmodel.Object, args ...interface{}) (interface{}, error) {
	return self.Value.(*account).balance, nil
}

// getNumber is a BankAccount method.
func getNumber(self *objmodel.Object, args ...interface{}) (interface{}, error) {
	return self.Value.(*account).number.String(), nil
}

// destroy is a BankAccount method.
//
// destroy wipes the balance and account number before the object is
// released.
func destroy(self *objmodel.Object, args ...interface{}) (interface{}, error) {
	a := self.Value.(*account)
	a.balance = 0
	a.number = uuid.Nil
	return nil, nil
}
