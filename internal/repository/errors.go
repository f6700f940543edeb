package repository

import "fmt"

// ErrNotFound represents a resource not found error in the repository layer.
type ErrNotFound struct {
	Resource string // The type of resource (e.g., "restaurant")
	ID       string // The identifier that was not found
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Resource, e.ID)
}

// IsNotFound checks if an error is a repository not found error.
func IsNotFound(err error) bool {
	_, ok := err.(ErrNotFound)
	return ok
}

// ErrAlreadyExists represents a create or rename colliding with an
// existing record.
type ErrAlreadyExists struct {
	Resource string
	ID       string
}

func (e ErrAlreadyExists) Error() string {
	return fmt.Sprintf("%s '%s' already exists", e.Resource, e.ID)
}

// IsAlreadyExists checks if an error is a repository already exists error.
func IsAlreadyExists(err error) bool {
	_, ok := err.(ErrAlreadyExists)
	return ok
}

// ErrNoChanges is reported when an update request produces no effective
// change. It is a recoverable outcome, not a failure.
type ErrNoChanges struct {
	Resource string
	ID       string
}

func (e ErrNoChanges) Error() string {
	return fmt.Sprintf("no changes requested for %s '%s'", e.Resource, e.ID)
}

// IsNoChanges checks if an error is a repository no changes error.
func IsNoChanges(err error) bool {
	_, ok := err.(ErrNoChanges)
	return ok
}

// ErrInvalidQuery represents a query that cannot be translated to a
// store call, such as fully empty criteria.
type ErrInvalidQuery struct {
	Reason string
}

func (e ErrInvalidQuery) Error() string {
	return fmt.Sprintf("invalid query: %s", e.Reason)
}

// IsInvalidQuery checks if an error is a repository invalid query error.
func IsInvalidQuery(err error) bool {
	_, ok := err.(ErrInvalidQuery)
	return ok
}

// NewNotFound creates a new ErrNotFound.
func NewNotFound(resource, id string) ErrNotFound {
	return ErrNotFound{Resource: resource, ID: id}
}

// NewAlreadyExists creates a new ErrAlreadyExists.
func NewAlreadyExists(resource, id string) ErrAlreadyExists {
	return ErrAlreadyExists{Resource: resource, ID: id}
}

// NewNoChanges creates a new ErrNoChanges.
func NewNoChanges(resource, id string) ErrNoChanges {
	return ErrNoChanges{Resource: resource, ID: id}
}

// NewInvalidQuery creates a new ErrInvalidQuery.
func NewInvalidQuery(reason string) ErrInvalidQuery {
	return ErrInvalidQuery{Reason: reason}
}
