package querystr

import (
	"io"
	"slices"
	"strings"

	json "github.com/json-iterator/go"
)

// MarshalJSON represents the query as a JSON object with string members, following
// the insertion order. As JSON strings must be valid UTF-8, invalid byte sequences (e.g.
// a decoded %FF) are replaced by U+FFFD.
func (q *Query) MarshalJSON() ([]byte, error) {
	stream := json.ConfigDefault.BorrowStream(nil)
	defer json.ConfigDefault.ReturnStream(stream)

	stream.WriteObjectStart()
	for i, pair := range q.pairs {
		if i > 0 {
			stream.WriteMore()
		}

		stream.WriteObjectField(strings.ToValidUTF8(pair.Key, "\uFFFD"))
		stream.WriteString(strings.ToValidUTF8(pair.Value, "\uFFFD"))
	}
	stream.WriteObjectEnd()

	if stream.Error != nil {
		return nil, stream.Error
	}

	// the stream's buffer goes back to the pool
	return slices.Clone(stream.Buffer()), nil
}

// UnmarshalJSON replaces the contents of the query by members of a JSON object. Only
// string members are accepted. The query is left untouched on error.
func (q *Query) UnmarshalJSON(data []byte) error {
	iterator := json.ConfigDefault.BorrowIterator(data)
	defer json.ConfigDefault.ReturnIterator(iterator)

	parsed := New()
	iterator.ReadMapCB(func(it *json.Iterator, key string) bool {
		if it.WhatIsNext() != json.StringValue {
			it.ReportError("querystr.Query", "parameter values must be strings")
			return false
		}

		parsed.Add(key, it.ReadString())
		return true
	})

	if iterator.Error == nil {
		// only whitespaces may follow the object, so the next token must hit the end
		if iterator.WhatIsNext() != json.InvalidValue || iterator.Error != io.EOF {
			iterator.ReportError("querystr.Query", "unexpected data after the object")
		}
	}

	if iterator.Error != nil && iterator.Error != io.EOF {
		return iterator.Error
	}

	q.pairs = parsed.pairs
	return nil
}
