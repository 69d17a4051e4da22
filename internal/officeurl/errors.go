package officeurl

import (
	"errors"
	"fmt"
)

var (
	ErrMissingSegment        = errors.New("officeurl: expected connection;protocol;object segments")
	ErrUnknownConnectionType = errors.New("officeurl: unknown connection type")
	ErrMalformedParameter    = errors.New("officeurl: malformed parameter")
	ErrDuplicateParameter    = errors.New("officeurl: duplicate parameter")
	ErrMissingParameter      = errors.New("officeurl: missing required parameter")
	ErrInvalidPort           = errors.New("officeurl: invalid port")
	ErrInvalidName           = errors.New("officeurl: invalid name")
	ErrInvalidEncoding       = errors.New("officeurl: invalid percent encoding")
)

// InvalidDescriptorError is returned for any descriptor that cannot be built or parsed.
// Err wraps one of the package sentinels.
type InvalidDescriptorError struct {
	Raw string
	Err error
}

func (e *InvalidDescriptorError) Error() string {
	return fmt.Sprintf("invalid office descriptor %q: %v", e.Raw, e.Err)
}

func (e *InvalidDescriptorError) Unwrap() error {
	return e.Err
}

func invalid(raw string, err error) *InvalidDescriptorError {
	return &InvalidDescriptorError{Raw: raw, Err: err}
}

// detail attaches context to a sentinel while keeping errors.Is working.
func detail(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
