package scope

import "fmt"

// UndeclaredNameError is returned for a lookup or update of a name that is
// not bound in any visible frame.
type UndeclaredNameError struct {
	Name string
}

func (e *UndeclaredNameError) Error() string {
	return fmt.Sprintf("undeclared name: %s", e.Name)
}

// AlreadyDeclaredError is returned when a name is declared twice in the
// same frame.
type AlreadyDeclaredError struct {
	Name string
}

func (e *AlreadyDeclaredError) Error() string {
	return fmt.Sprintf("%s already declared in this scope", e.Name)
}
