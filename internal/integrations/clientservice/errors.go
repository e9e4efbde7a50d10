package clientservice

import "errors"

var (
	// ErrClientNotFound returned when no registered client matches the phone
	ErrClientNotFound = errors.New("client not registered")

	// ErrInternal returned on internal client errors
	ErrInternal = errors.New("clientservice client: internal error")

	// ErrInvalidResponse returned on a malformed response from the service
	ErrInvalidResponse = errors.New("clientservice client: invalid response")

	// ErrServiceDegraded returned when graceful degradation is applied.
	// The client registry is unavailable; appointments proceed with the
	// snapshot fields only, without the client_id link.
	ErrServiceDegraded = errors.New("clientservice unavailable: graceful degradation applied")
)
