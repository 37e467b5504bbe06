// Package errorspkg provides common app errors.
package errorspkg

import "errors"

var (
	// ErrInternal indicates internal server error.
	ErrInternal = errors.New("internal")
	// ErrUpstream indicates that an external API answered with an unexpected result.
	ErrUpstream = errors.New("upstream unavailable")
)
