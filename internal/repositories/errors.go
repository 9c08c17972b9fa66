package repositories

import (
	"errors"
	"fmt"
)

// NotFoundError reports an unknown resource ID. Handlers render it as a
// dedicated not-found response rather than a server error.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
