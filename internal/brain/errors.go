package brain

import "fmt"

// DuplicateNameError is returned by AddNode when the name is already taken.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("brain: node %q already exists", e.Name)
}

// UnknownNodeError is returned by Link when an endpoint does not exist.
type UnknownNodeError struct {
	Name string
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("brain: unknown node %q", e.Name)
}
