package domain

import "fmt"

// Remote operations named in failures.
const (
	OpList   = "list"
	OpGet    = "get"
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// FetchError wraps a failed listing or get-by-id call.
type FetchError struct {
	Op  string
	ID  string
	Err error
}

func (e *FetchError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("fetch %s %s: %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// MutationError wraps a failed create, update or delete call.
type MutationError struct {
	Op  string
	ID  string
	Err error
}

func (e *MutationError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s restaurant %s: %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("%s restaurant: %v", e.Op, e.Err)
}

func (e *MutationError) Unwrap() error { return e.Err }
