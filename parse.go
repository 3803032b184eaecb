package querystr

import (
	"errors"

	"github.com/indigo-web/querystr/config"
	"github.com/indigo-web/querystr/internal/qparams"
	"github.com/indigo-web/querystr/internal/urlencoded"
)

// Parse builds a new Query out of the query string, using default settings. See ParseWith.
func Parse(query string) (*Query, error) {
	return ParseWith(query, config.Default())
}

// ParseWith builds a new Query out of the query string. Any number of leading question
// marks is ignored, as well as empty parameters (e.g. "a=b&&c=d"). Every other parameter
// must have both non-empty key and value, separated by a single equal sign, otherwise
// MalformedParameterError is returned. Keys and values are percent-decoded, pluses are
// treated as spaces. In case of duplicate keys, the last one wins. Nil cfg stands for
// config.Default().
func ParseWith(query string, cfg *config.Config) (*Query, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	decoder := urlencoded.Decode
	if cfg.Parse.StrictDecoding {
		decoder = urlencoded.StrictDecode
	}

	q := NewPrealloc(max(cfg.Parse.Prealloc, 0))
	segment, _, err := qparams.Parse(query, nil, func(key, value string) {
		q.Add(key, value)
	}, decoder, cfg.Parse.MaxParams)

	switch {
	case err == nil:
		return q, nil
	case errors.Is(err, qparams.ErrTooManyParams):
		return nil, ErrTooManyParams
	case errors.Is(err, urlencoded.ErrURLDecoding):
		return nil, &MalformedParameterError{Segment: segment, Err: err}
	default:
		return nil, &MalformedParameterError{Segment: segment}
	}
}
