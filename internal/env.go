package internal

// env holds the variables of one run in order of first assignment
type env struct {
	names  []string
	values map[string]number
}

func newEnv() *env {
	return &env{values: make(map[string]number)}
}

func (e *env) get(name string) (number, bool) {
	value, ok := e.values[name]
	return value, ok
}

// assign overwrites an existing variable in place or appends a new one
func (e *env) assign(name string, value number) {
	if _, ok := e.values[name]; !ok {
		e.names = append(e.names, name)
	}
	e.values[name] = value
}

func (e *env) bindings() []Binding {
	out := make([]Binding, len(e.names))
	for i, name := range e.names {
		out[i] = Binding{Name: name, Value: e.values[name]}
	}
	return out
}
