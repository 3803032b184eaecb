package querystr

import (
	"errors"
	"strconv"

	"github.com/indigo-web/querystr/internal/qparams"
	"github.com/indigo-web/querystr/internal/urlencoded"
)

var (
	ErrKeyNotFound        = errors.New("key not found")
	ErrMalformedParameter = errors.New("malformed parameter")
	ErrTooManyParams      = qparams.ErrTooManyParams
	// ErrURLDecoding is wrapped by MalformedParameterError when strict decoding rejects
	// a percent-encoded sequence.
	ErrURLDecoding = urlencoded.ErrURLDecoding
)

// KeyNotFoundError is returned by Query.Get for absent keys. It matches ErrKeyNotFound.
type KeyNotFoundError struct {
	Key string
}

func (k *KeyNotFoundError) Error() string {
	return "key " + strconv.Quote(k.Key) + " not found"
}

func (k *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}

// MalformedParameterError is returned by Parse for a segment which isn't a well-formed
// key=value pair. It matches ErrMalformedParameter.
type MalformedParameterError struct {
	// Segment is the raw offending segment, exactly as it appeared in the query.
	Segment string
	// Err is the decoding failure, if that's the reason. Nil otherwise.
	Err error
}

func (m *MalformedParameterError) Error() string {
	msg := strconv.Quote(m.Segment) + " is not a well-formed parameter"
	if m.Err != nil {
		msg += ": " + m.Err.Error()
	}

	return msg
}

func (m *MalformedParameterError) Is(target error) bool {
	return target == ErrMalformedParameter
}

func (m *MalformedParameterError) Unwrap() error {
	return m.Err
}
