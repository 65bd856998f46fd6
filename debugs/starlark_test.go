package debugs

import (
	"strings"
	"testing"

	"github.com/reusee/simpleparser/simplang"
	"go.starlark.net/starlark"
)

func TestTapGlobals(t *testing.T) {
	variables := simplang.NewContext()
	for name, value := range map[string]string{
		"x":      "5",
		"my-var": "ciao",
		"if":     "kw",
	} {
		if err := variables.Define(name, value); err != nil {
			t.Fatal(err)
		}
	}
	globals := tapGlobals(variables)

	if v, ok := globals["x"].(starlark.String); !ok || string(v) != "5" {
		t.Fatalf("got %v", globals["x"])
	}
	if _, ok := globals["my-var"]; ok {
		t.Fatal("not an identifier")
	}
	if _, ok := globals["if"]; ok {
		t.Fatal("keyword")
	}

	thread := &starlark.Thread{Name: "test"}
	for expr, expected := range map[string]string{
		`x`:                    "5",
		`variables["my-var"]`:  "ciao",
		`variables["if"]`:      "kw",
		`str(len(variables))`:  "3",
		`lookup("x")`:          "5",
		`lookup("my-var")`:     "ciao",
		`str(defined("x"))`:    "True",
		`str(defined("nope"))`: "False",
	} {
		v, err := starlark.EvalOptions(&syntaxOptions, thread, "test", expr, globals)
		if err != nil {
			t.Fatalf("%s: %v", expr, err)
		}
		s, ok := starlark.AsString(v)
		if !ok || s != expected {
			t.Fatalf("%s: got %v", expr, v)
		}
	}

	_, err := starlark.EvalOptions(&syntaxOptions, thread, "test", `lookup("missing")`, globals)
	if err == nil {
		t.Fatal("should error")
	}
	if !strings.Contains(err.Error(), "variable missing does not exist") {
		t.Fatalf("got %v", err)
	}
	_, err = starlark.EvalOptions(&syntaxOptions, thread, "test", `lookup()`, globals)
	if err == nil {
		t.Fatal("should error")
	}
}

func TestIsIdentifier(t *testing.T) {
	for name, expected := range map[string]bool{
		"x":         true,
		"_x1":       true,
		"Foo":       true,
		"1x":        false,
		"a-b":       false,
		"":          false,
		"while":     false,
		"variables": false,
		"defined":   false,
		"è":         false,
	} {
		if got := isIdentifier(name); got != expected {
			t.Fatalf("%q: got %v", name, got)
		}
	}
}
