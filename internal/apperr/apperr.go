// Package apperr defines the domain-level errors shared by the store,
// middleware and handler layers. Handlers translate these sentinels into
// HTTP status codes; nothing below the handler layer writes a response.
package apperr

import "errors"

var (
	// ErrInvalid covers malformed input, duplicate unique keys and
	// references to parents that do not exist. Maps to 400.
	ErrInvalid = errors.New("invalid request")

	// ErrUnauthenticated means no or invalid session. Maps to 401.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrForbidden means the identity's role or approval state is
	// insufficient, or the target is protected. Maps to 403.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound means the addressed entity does not exist. Maps to 404.
	ErrNotFound = errors.New("not found")

	// ErrInternal covers store and blob-store failures. Maps to 500 with
	// no internal detail leaked to the client.
	ErrInternal = errors.New("internal error")
)
