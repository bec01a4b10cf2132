package knit

import "fmt"

// NotFoundError reports a class identifier absent from the input mapping.
type NotFoundError struct {
	Class string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("class %q not found", e.Class)
}

// MalformedInputError reports a metadata document that is not valid JSON or
// whose fields have the wrong shape. It is always reported to the caller,
// never fatal to the process.
type MalformedInputError struct {
	Err error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed knit metadata: %v", e.Err)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }
