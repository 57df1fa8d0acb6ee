package errors

import "errors"

var (
	ErrorNotImplemented      = errors.New("not implemented")
	ErrorInvalidFareSource   = errors.New("invalid fare source code")
	ErrorMissingSessionToken = errors.New("supplier session token missing")
)
