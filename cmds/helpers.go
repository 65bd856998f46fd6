package cmds

// Var defines a command setting the returned value. name+"." resets it to zero.
func Var[T any](name string, desc string, aliases ...string) *T {
	var value T

	// set
	Define(name, Func(func(v T) {
		value = v
	}).Desc(desc).Alias(aliases...))

	// set zero
	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Desc("reset "+name))

	return &value
}

func Switch(name string, desc string, aliases ...string) *bool {
	var value bool

	// set true
	Define(name, Func(func() {
		value = true
	}).Desc(desc).Alias(aliases...))

	// set false
	Define("!"+name, Func(func() {
		value = false
	}).Desc("unset "+name))

	return &value
}
