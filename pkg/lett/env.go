package lett

// Env is a persistent chain of single-binding frames, instantiated once
// with Type for the checker and once with Value for the evaluator.
//
// A nil *Env is the empty environment. Extending never mutates an
// existing frame; shadowing falls out of lookup walking from the
// innermost frame outward and returning the first match. Frames may be
// shared by any number of closures, so a frame lives as long as the
// longest-lived closure that captured it.
type Env[T any] struct {
	name    string
	binding T
	parent  *Env[T]
}

// Extend returns a new innermost frame binding name, with e as its parent.
func (e *Env[T]) Extend(name string, binding T) *Env[T] {
	return &Env[T]{name: name, binding: binding, parent: e}
}

// ExtendRec returns a new frame whose binding is allowed to refer to the
// frame itself. This is the letrec knot: the closure bound to name
// captures the very frame that binds it, so recursive calls through name
// resolve in that frame. The resulting cycle is ordinary garbage for Go's
// collector.
func (e *Env[T]) ExtendRec(name string, bind func(*Env[T]) T) *Env[T] {
	frame := &Env[T]{name: name, parent: e}
	frame.binding = bind(frame)
	return frame
}

// Lookup walks outward from the innermost frame and returns the first
// binding of name.
func (e *Env[T]) Lookup(name string) (T, bool) {
	for frame := e; frame != nil; frame = frame.parent {
		if frame.name == name {
			return frame.binding, true
		}
	}
	var zero T
	return zero, false
}
