package debugs

import (
	"github.com/reusee/simpleparser/simplang"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

// tapGlobals exposes variables as starlark strings, by name and as the dict `variables`.
// lookup(name) returns the value and fails for unbound names. defined(name) reports whether name is bound.
func tapGlobals(variables *simplang.Context) starlark.StringDict {
	ret := make(starlark.StringDict)

	dict := starlark.NewDict(variables.Len())
	for name, value := range variables.Variables() {
		dict.SetKey(starlark.String(name), starlark.String(value))
		if isIdentifier(name) {
			ret[name] = starlark.String(value)
		}
	}
	ret["variables"] = dict

	ret["lookup"] = starlark.NewBuiltin("lookup", func(
		thread *starlark.Thread,
		fn *starlark.Builtin,
		args starlark.Tuple,
		kwargs []starlark.Tuple,
	) (starlark.Value, error) {
		var name string
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &name); err != nil {
			return nil, err
		}
		value, err := variables.Lookup(name)
		if err != nil {
			return nil, err
		}
		return starlark.String(value), nil
	})

	ret["defined"] = starlarkutil.MakeFunc("defined", func(name string) bool {
		_, err := variables.Lookup(name)
		return err == nil
	})

	return ret
}

func isIdentifier(name string) bool {
	if name == "" || name == "variables" || name == "lookup" || name == "defined" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_',
			r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return !isKeyword[name]
}

var isKeyword = map[string]bool{
	"and": true, "break": true, "continue": true, "def": true, "elif": true,
	"else": true, "for": true, "if": true, "in": true, "lambda": true,
	"load": true, "not": true, "or": true, "pass": true, "return": true,
	"while": true, "None": true, "True": true, "False": true,
}
