package keymap

// Resolver maps key strings to actions. When two bindings share a key the
// later one wins.
type Resolver struct {
	bindings map[string]Binding
}

// NewResolver creates a resolver from bindings.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{bindings: make(map[string]Binding)}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.bindings[key] = b
		}
	}
	return r
}

// Lookup returns the full binding of a key.
func (r *Resolver) Lookup(key string) (Binding, bool) {
	b, ok := r.bindings[key]
	return b, ok
}
