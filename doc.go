/*
Package objmodel implements a small object model for Go programs that want to
show how classes are put together from plain parts. An object is private
state plus a table of operations bound when it was constructed.

The model has three pieces. A Class describes an ordered set of operations.
Each operation is either abstract, meaning every instantiable class must bind
it, concrete, meaning it has a default body that a derived class may replace,
or final, meaning it has a body that no derived class may replace. An Object
is an instance of a Class: it holds its private state in Value and a table of
bound operations that was fixed when the object was constructed. Callers
invoke operations through Perform, which looks up the operation's slot and
calls whatever was bound there with the object as the receiver.

Defining Classes

A base class declares its operations:

	var Shain = objmodel.MustClass("Shain",
		objmodel.Abstract("getSalary"),
		objmodel.Abstract("getStyle"),
		objmodel.Final("standup", standup),
	)

Derived classes bind the abstract operations and may override concrete ones.
They never change the number or order of slots; operations a subclass adds
are appended after its parent's:

	var Bucho = Shain.MustExtend("Bucho", objmodel.Bindings{
		"getSalary": buchoSalary,
		"getStyle":  buchoStyle,
	})

Constructing an object from a class that still has unbound abstract
operations fails with ErrAbstractClass, so no object is ever observably half
built. Overriding a final operation fails with ErrFinal when the class is
defined, which keeps template methods identical in every derived class.

Dispatch

Perform takes the operation name and arguments. The receiver's table is the
only input that decides which body runs:

	out, err := obj.Perform("standup", console)

Operations on a nil or destroyed object do nothing and return nil, so a
caller that forgets to check a failed constructor cannot crash the program.

Helpers

Factory maps a closed set of tags to constructors. Singleton lazily builds
exactly one object and is safe for concurrent first access. Scope owns a
group of objects and destroys them together. Console is the text and failure
sink the demo programs write to.

The demos directory contains one package per idea (encapsulation,
inheritance, polymorphism, abstraction, singleton, factory method, and a
template method with a factory). Each registers itself with Register so that
cmd/gofdemo can run it.
*/
package objmodel
