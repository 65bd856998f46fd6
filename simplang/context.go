package simplang

import "iter"

// Context holds the variables of one run. Variables are write-once.
// The zero value is ready to use.
type Context struct {
	names  []string
	values map[string]string
}

func NewContext() *Context {
	return &Context{
		values: make(map[string]string),
	}
}

func (c *Context) Define(name, value string) error {
	if _, ok := c.values[name]; ok {
		return &RedefinedVariableError{
			Name: name,
		}
	}
	if c.values == nil {
		c.values = make(map[string]string)
	}
	c.values[name] = value
	c.names = append(c.names, name)
	return nil
}

func (c *Context) Lookup(name string) (string, error) {
	value, ok := c.values[name]
	if !ok {
		return "", &VariableDoesNotExistError{
			Name: name,
		}
	}
	return value, nil
}

func (c *Context) Len() int {
	return len(c.names)
}

// Variables iterates in definition order.
func (c *Context) Variables() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, name := range c.names {
			if !yield(name, c.values[name]) {
				return
			}
		}
	}
}

func (c *Context) Snapshot() map[string]string {
	ret := make(map[string]string, len(c.values))
	for name, value := range c.values {
		ret[name] = value
	}
	return ret
}
