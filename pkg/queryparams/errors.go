package queryparams

import "errors"

// ErrMissingParam is the sentinel wrapped by every MissingParamError,
// allowing errors.Is checks without matching on the parameter name.
var ErrMissingParam = errors.New("required parameter is empty")

// MissingParamError reports the first parameter that failed validation.
type MissingParamError struct {
	Param string
}

func (e *MissingParamError) Error() string {
	return e.Param + " is required."
}

func (e *MissingParamError) Unwrap() error {
	return ErrMissingParam
}
