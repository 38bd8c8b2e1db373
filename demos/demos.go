// Package demos registers every demo program. Import it for side effects.
package demos

import (
	// importing for side effects
	_ "github.com/zephyrtronium/objmodel/demos/abstraction"
	_ "github.com/zephyrtronium/objmodel/demos/encapsulation"
	_ "github.com/zephyrtronium/objmodel/demos/factorymethod"
	_ "github.com/zephyrtronium/objmodel/demos/inheritance"
	_ "github.com/zephyrtronium/objmodel/demos/polymorphism"
	_ "github.com/zephyrtronium/objmodel/demos/singleton"
	_ "github.com/zephyrtronium/objmodel/demos/standup"
)
