package autocomplete

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsupportedBackend  = errors.New("unsupported backend")
	ErrMissingDisplayField = errors.New("display value is required to search across multiple fields or collections")
	ErrInvalidOrderSpec    = errors.New("invalid order spec")
	ErrEmptyTarget         = errors.New("target has no collection")
	ErrEmptyFields         = errors.New("target has no search field")
	ErrMissingID           = errors.New("record has no id")
	errOrderKindMismatch   = errors.New("order resolved for a different backend kind")
)

type UnsupportedBackendError struct {
	Collection string
	Kind       Kind
	Reason     string
}

func (err UnsupportedBackendError) Error() string {
	var s strings.Builder
	s.WriteString(ErrUnsupportedBackend.Error())
	if err.Collection != "" {
		s.WriteString(": collection '" + err.Collection + "'")
	}
	if err.Kind != "" {
		s.WriteString(": kind '" + err.Kind.String() + "'")
	}
	if err.Reason != "" {
		s.WriteString(": " + err.Reason)
	}
	return s.String()
}

func (err UnsupportedBackendError) Is(target error) bool {
	return target == ErrUnsupportedBackend
}

type InvalidOrderSpecError struct {
	Spec  string
	Token string
}

func (err InvalidOrderSpecError) Error() string {
	if err.Token != "" {
		return fmt.Sprintf("%s %q: unrecognised token %q", ErrInvalidOrderSpec, err.Spec, err.Token)
	}
	return fmt.Sprintf("%s %q", ErrInvalidOrderSpec, err.Spec)
}

func (err InvalidOrderSpecError) Is(target error) bool {
	return target == ErrInvalidOrderSpec
}

type NotFoundError struct {
	Collection string
	Endpoint   string
}

func (err NotFoundError) Error() string {
	if err.Collection != "" {
		return fmt.Sprintf("could not find collection %q", err.Collection)
	} else if err.Endpoint != "" {
		return fmt.Sprintf("could not find endpoint %q", err.Endpoint)
	}

	return "could not find collection"
}
