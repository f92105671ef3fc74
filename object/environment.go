package object

// Environment is a single scope frame: a mapping from names to values,
// plus an optional link to the enclosing frame. Frames form a tree whose
// root is the global environment; blocks and function calls each push
// exactly one fresh child (spec §3 invariants).
//
// Unlike the teacher's Scope, a captured closure environment is never
// copied — it is shared by reference. Copying on capture (as the
// teacher's Scope.Copy does) would snapshot the enclosing bindings at
// declaration time, breaking the closure invariant that later mutations
// of an outer binding stay visible inside the closure (spec §8,
// "closures" test and the makeCounter end-to-end scenario in spec §8.5).
type Environment struct {
	vars   map[string]Value
	parent *Environment
}

// New creates an environment enclosed by parent. parent is nil for the
// global environment.
func New(parent *Environment) *Environment {
	return &Environment{vars: make(map[string]Value), parent: parent}
}

// Get walks the chain from this environment outward, returning the first
// matching binding.
func (e *Environment) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Define binds name in this environment, overwriting any existing
// binding of the same name in this scope (spec §3: redeclaring a name in
// the same scope overwrites).
func (e *Environment) Define(name string, value Value) {
	e.vars[name] = value
}

// Assign walks the chain from this environment outward and mutates the
// first matching binding. It reports false if name is undefined
// anywhere in the chain.
func (e *Environment) Assign(name string, value Value) bool {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.vars[name]; ok {
			env.vars[name] = value
			return true
		}
	}
	return false
}
