package cmds

import (
	"errors"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}).Alias("--a"))

	if err := executor.Execute([]string{
		"+a",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"a", "1",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"--a", "2",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 2 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"foo",
	})
	if !errors.Is(err, ErrUnrecognizedArgument) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "unrecognized argument: foo") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"a",
	})
	if !errors.Is(err, ErrMissingArgument) {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"a", "x",
	})
	if err == nil || !strings.Contains(err.Error(), "convert x to int") {
		t.Fatalf("got %v", err)
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()
	errFoo := errors.New("foo")
	executor.Define("fail", Func(func() error {
		return errFoo
	}))
	executor.Define("ok", Func(func() error {
		return nil
	}))
	if err := executor.Execute([]string{"ok"}); err != nil {
		t.Fatal(err)
	}
	if err := executor.Execute([]string{"fail"}); !errors.Is(err, errFoo) {
		t.Fatalf("got %v", err)
	}
}

func TestDuplicatedCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Func(func() {}))
	func() {
		defer func() {
			if p := recover(); p == nil {
				t.Fatal("should panic")
			}
		}()
		executor.Define("bar", Func(func() {}).Alias("foo"))
	}()
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	err := executor.Execute([]string{"foo", "42", "foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatal()
	}
	if s != "foo" {
		t.Fatal()
	}

	err = executor.Execute([]string{"foo", "99"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 99 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}

	err = executor.Execute([]string{"foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}
}

func TestFuncPanics(t *testing.T) {
	for _, fn := range []any{
		42,
		func() (int, error) { return 0, nil },
		func() int { return 0 },
	} {
		func() {
			defer func() {
				if p := recover(); p == nil {
					t.Fatalf("should panic for %T", fn)
				}
			}()
			Func(fn)
		}()
	}
}
