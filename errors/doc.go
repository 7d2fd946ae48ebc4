/*
Package errors provides semantic error types for entityconv.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound       = errors.New("not found")
	    ErrAlreadyExists  = errors.New("already exists")
	    ErrInvalidInput   = errors.New("invalid input")
	    ErrUnexpectedType = errors.New("unexpected type")
	    ErrNoConverter    = errors.New("no converter registered for type category")
	)

Usage:

	out, err := conv.StructToV2(value, "Address")
	if err != nil {
	    if errors.IsUnexpectedType(err) {
	        // value was neither a map nor a legacy struct
	    }
	    return nil, err
	}

	// Create typed errors
	err := errors.NewNotFoundError("type", "Address")
	err := errors.NewValidationError("Address.zip", "unknown type \"zipcode\"")
	err := errors.NewUnexpectedTypeError("map[string]any or v1.IStruct", value)

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
