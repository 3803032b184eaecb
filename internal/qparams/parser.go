package qparams

import (
	"errors"
	"strings"

	"github.com/indigo-web/querystr/internal/urlencoded"
)

var (
	// ErrBadShape is returned for segments that aren't exactly a non-empty key and
	// non-empty value separated by a single equal sign.
	ErrBadShape      = errors.New("parameter must consist of a key and a value separated by a single '='")
	ErrTooManyParams = errors.New("too many parameters")
)

type CB = func(key, value string)

// Parse walks over the &-separated segments of the query, passing every decoded pair
// into the callback. Any number of leading question marks is stripped and empty segments
// are skipped. Parsing stops at the first failure, returning the offending segment. The
// pairs passed into cb may reference the buffer memory, so the buffer must not be reused
// while they are in use. Non-positive maxParams disables the limit.
func Parse(
	data string, buff []byte, cb CB, decoder urlencoded.Decoder, maxParams int,
) (segment string, buffer []byte, err error) {
	data = strings.TrimLeft(data, "?")
	params := 0

	for len(data) > 0 {
		segment, data, _ = strings.Cut(data, "&")
		if len(segment) == 0 {
			continue
		}

		if params++; maxParams > 0 && params > maxParams {
			return segment, buff, ErrTooManyParams
		}

		rawKey, rawValue, found := strings.Cut(segment, "=")
		if !found || len(rawKey) == 0 || len(rawValue) == 0 || strings.IndexByte(rawValue, '=') != -1 {
			return segment, buff, ErrBadShape
		}

		var key, value string

		key, buff, err = urlencoded.DecodeString(decoder, rawKey, buff)
		if err != nil {
			return segment, buff, err
		}

		value, buff, err = urlencoded.DecodeString(decoder, rawValue, buff)
		if err != nil {
			return segment, buff, err
		}

		cb(key, value)
	}

	return "", buff, nil
}
