package scope

import (
	"errors"
	"testing"
)

func TestEnvDeclareLookup(t *testing.T) {
	env := New[int]()
	if env.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", env.Depth())
	}

	if err := env.Declare("x", 1); err != nil {
		t.Fatal(err)
	}
	v, err := env.Lookup("x")
	if err != nil || v != 1 {
		t.Errorf("Lookup(x) = %d, %v; want 1, nil", v, err)
	}
}

func TestEnvLookupUndeclared(t *testing.T) {
	env := New[string]()
	v, err := env.Lookup("y")
	var ue *UndeclaredNameError
	if !errors.As(err, &ue) {
		t.Fatalf("err = %v, want *UndeclaredNameError", err)
	}
	if ue.Name != "y" || v != "" {
		t.Errorf("got name %q value %q", ue.Name, v)
	}
	if err.Error() != "undeclared name: y" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestEnvRedeclare(t *testing.T) {
	env := New[int]()
	if err := env.Declare("x", 1); err != nil {
		t.Fatal(err)
	}
	err := env.Declare("x", 2)
	var ae *AlreadyDeclaredError
	if !errors.As(err, &ae) || ae.Name != "x" {
		t.Fatalf("err = %v, want *AlreadyDeclaredError for x", err)
	}
	if v, _ := env.Lookup("x"); v != 1 {
		t.Errorf("failed Declare changed the binding to %d", v)
	}
}

func TestEnvShadowing(t *testing.T) {
	env := New[int]()
	env.Declare("x", 1)

	env.EnterLevel()
	if err := env.Declare("x", 2); err != nil {
		t.Fatalf("shadowing declaration failed: %v", err)
	}
	if v, _ := env.Lookup("x"); v != 2 {
		t.Errorf("inner Lookup(x) = %d, want 2", v)
	}
	if env.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", env.Depth())
	}

	env.ExitLevel()
	if v, _ := env.Lookup("x"); v != 1 {
		t.Errorf("outer Lookup(x) = %d, want 1", v)
	}
}

func TestEnvExitDropsBindings(t *testing.T) {
	env := New[int]()
	env.EnterLevel()
	env.Declare("tmp", 7)
	env.ExitLevel()

	if _, err := env.Lookup("tmp"); err == nil {
		t.Error("binding survived ExitLevel")
	}
	if err := env.Declare("tmp", 8); err != nil {
		t.Errorf("redeclaring after ExitLevel: %v", err)
	}
}

func TestEnvUpdate(t *testing.T) {
	env := New[int]()
	env.Declare("x", 1)
	env.EnterLevel()
	env.EnterLevel()

	if err := env.Update("x", 5); err != nil {
		t.Fatal(err)
	}
	if v, _ := env.Lookup("x"); v != 5 {
		t.Errorf("Lookup(x) = %d, want 5", v)
	}

	// the update lands in the outer frame and survives the inner ones
	env.ExitLevel()
	env.ExitLevel()
	if v, _ := env.Lookup("x"); v != 5 {
		t.Errorf("after ExitLevel: Lookup(x) = %d, want 5", v)
	}
}

func TestEnvUpdateNearest(t *testing.T) {
	env := New[int]()
	env.Declare("x", 1)
	env.EnterLevel()
	env.Declare("x", 2)

	env.Update("x", 3)
	env.ExitLevel()

	if v, _ := env.Lookup("x"); v != 1 {
		t.Errorf("outer x = %d, want 1 (update should hit the inner binding)", v)
	}
}

func TestEnvUpdateUndeclared(t *testing.T) {
	env := New[bool]()
	err := env.Update("nope", true)
	var ue *UndeclaredNameError
	if !errors.As(err, &ue) {
		t.Fatalf("err = %v, want *UndeclaredNameError", err)
	}
	if _, err := env.Lookup("nope"); err == nil {
		t.Error("failed Update created a binding")
	}
}

func TestEnvExitOutermostPanics(t *testing.T) {
	env := New[int]()
	defer func() {
		if recover() == nil {
			t.Error("ExitLevel on the outermost frame did not panic")
		}
	}()
	env.ExitLevel()
}
