package objmodel

import "errors"

var (
	// ErrInvalidArgument indicates that a constructor received a missing or
	// empty required field. No object is returned along with it.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownVariant indicates that a Factory received a tag outside its
	// set of variants.
	ErrUnknownVariant = errors.New("unknown variant")
	// ErrAbstractClass indicates an attempt to construct an object whose
	// class leaves at least one abstract operation unbound.
	ErrAbstractClass = errors.New("cannot instantiate abstract class")
	// ErrNoSuchOp indicates that an operation name is not declared by a
	// class.
	ErrNoSuchOp = errors.New("no such operation")
	// ErrFinal indicates an attempt to override a final operation.
	ErrFinal = errors.New("operation is final")
	// ErrDuplicateOp indicates that a class declares the same operation name
	// more than once, including redeclaring an operation of its parent.
	ErrDuplicateOp = errors.New("duplicate operation")
	// ErrArgument indicates that an operation received an argument of the
	// wrong type, or too few arguments.
	ErrArgument = errors.New("bad argument")
)
