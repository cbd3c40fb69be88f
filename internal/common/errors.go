package common

import "errors"

// Error kinds shared by every component. Wrap them with fmt.Errorf("%w: ...")
// and test with errors.Is.
var (
	// ErrFetch covers network failures and non-2xx upstream responses.
	ErrFetch = errors.New("fetch error")
	// ErrParse is returned when an expected structure is absent from a response.
	ErrParse = errors.New("parse error")
	// ErrValidation is returned when submitted data lacks required fields.
	ErrValidation = errors.New("validation error")
)
