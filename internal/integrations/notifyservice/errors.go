package notifyservice

import "errors"

var (
	// ErrInternal returned on internal client errors
	ErrInternal = errors.New("notifyservice client: internal error")

	// ErrInvalidResponse returned on a malformed response from the service
	ErrInvalidResponse = errors.New("notifyservice client: invalid response")
)
