package objmodel

import "fmt"

// An Fn is a statically compiled operation body. self is the object whose
// table bound the operation, and args are the arguments passed to Perform.
type Fn func(self *Object, args ...interface{}) (interface{}, error)

// ArgAt returns the nth argument. If there are not enough arguments, the
// result is nil and the error wraps ErrArgument.
func ArgAt(args []interface{}, n int) (interface{}, error) {
	if n < 0 || n >= len(args) {
		return nil, fmt.Errorf("%w: need argument %d, have %d", ErrArgument, n, len(args))
	}
	return args[n], nil
}

// StringArgAt returns the nth argument as a string.
func StringArgAt(args []interface{}, n int) (string, error) {
	v, err := ArgAt(args, n)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", argType(n, "string", v)
	}
	return s, nil
}

// IntArgAt returns the nth argument as an int.
func IntArgAt(args []interface{}, n int) (int, error) {
	v, err := ArgAt(args, n)
	if err != nil {
		return 0, err
	}
	x, ok := v.(int)
	if !ok {
		return 0, argType(n, "int", v)
	}
	return x, nil
}

// FloatArgAt returns the nth argument as a float64. Integer arguments are
// converted.
func FloatArgAt(args []interface{}, n int) (float64, error) {
	v, err := ArgAt(args, n)
	if err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	}
	return 0, argType(n, "float64", v)
}

// ConsoleArgAt returns the nth argument as a *Console. Operations that write
// output take the console as an argument rather than holding one.
func ConsoleArgAt(args []interface{}, n int) (*Console, error) {
	v, err := ArgAt(args, n)
	if err != nil {
		return nil, err
	}
	c, ok := v.(*Console)
	if !ok || c == nil {
		return nil, argType(n, "*Console", v)
	}
	return c, nil
}

// ObjectArgAt returns the nth argument as an *Object.
func ObjectArgAt(args []interface{}, n int) (*Object, error) {
	v, err := ArgAt(args, n)
	if err != nil {
		return nil, err
	}
	o, ok := v.(*Object)
	if !ok {
		return nil, argType(n, "*Object", v)
	}
	return o, nil
}

func argType(n int, want string, have interface{}) error {
	return fmt.Errorf("%w: argument %d must be %s, not %T", ErrArgument, n, want, have)
}
