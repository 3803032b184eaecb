// Package querystr builds, encodes and parses URI query strings.
package querystr

import (
	"iter"
	"slices"

	"github.com/indigo-web/querystr/internal/urlencoded"
	"github.com/indigo-web/utils/uf"
)

type Pair struct {
	Key, Value string
}

// Query is an ordered set of unique (key, value) pairs of a query string. It acts as a map
// but uses linear search instead, which proves to be more efficient on relatively low amount
// of entries, which is virtually always the case for query strings.
//
// Query isn't safe for concurrent use.
type Query struct {
	pairs []Pair
}

func New() *Query {
	return new(Query)
}

// NewWith returns an instance holding a single pair.
func NewWith(key, value string) *Query {
	return New().Add(key, value)
}

// NewPrealloc returns an instance of Query with pre-allocated underlying storage.
func NewPrealloc(n int) *Query {
	return &Query{
		pairs: make([]Pair, 0, n),
	}
}

// Add adds a new pair of key and value. If the key is already present, its value is
// replaced instead, keeping the pair at its original position.
func (q *Query) Add(key, value string) *Query {
	if i := q.index(key); i != -1 {
		q.pairs[i].Value = value
		return q
	}

	q.pairs = append(q.pairs, Pair{
		Key:   key,
		Value: value,
	})
	return q
}

// Remove deletes the pair by the key, if any.
func (q *Query) Remove(key string) *Query {
	if i := q.index(key); i != -1 {
		q.pairs = slices.Delete(q.pairs, i, i+1)
	}

	return q
}

// Get returns the value corresponding to the key or KeyNotFoundError.
func (q *Query) Get(key string) (string, error) {
	if i := q.index(key); i != -1 {
		return q.pairs[i].Value, nil
	}

	return "", &KeyNotFoundError{Key: key}
}

// Value returns the value corresponding to the key. Otherwise, empty string is returned
func (q *Query) Value(key string) string {
	return q.ValueOr(key, "")
}

// ValueOr returns either the value corresponding to the key or custom value, defined
// via the second parameter.
func (q *Query) ValueOr(key, or string) string {
	value, err := q.Get(key)
	if err != nil {
		return or
	}

	return value
}

// Has indicates, whether there's an entry of the key.
func (q *Query) Has(key string) bool {
	return q.index(key) != -1
}

// HasValue indicates, whether any of the entries holds the value.
func (q *Query) HasValue(value string) bool {
	for _, pair := range q.pairs {
		if pair.Value == value {
			return true
		}
	}

	return false
}

// Pairs returns an iterator over the pairs in insertion order.
func (q *Query) Pairs() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, pair := range q.pairs {
			if !yield(pair.Key, pair.Value) {
				break
			}
		}
	}
}

// Keys returns an iterator over the keys in insertion order.
func (q *Query) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, pair := range q.pairs {
			if !yield(pair.Key) {
				break
			}
		}
	}
}

// Len returns a number of stored pairs.
func (q *Query) Len() int {
	return len(q.pairs)
}

func (q *Query) Empty() bool {
	return q.Len() == 0
}

// Clone creates a copy, which may be used later or stored somewhere safely.
func (q *Query) Clone() *Query {
	return &Query{
		pairs: slices.Clone(q.pairs),
	}
}

// Expose exposes the underlying pairs slice. It must not be modified.
func (q *Query) Expose() []Pair {
	return q.pairs
}

// Clear all the entries. However, all the allocated space won't be freed.
func (q *Query) Clear() *Query {
	clear(q.pairs)
	q.pairs = q.pairs[:0]
	return q
}

// AppendEncoded appends the query string to dst. Keys and values are percent-encoded,
// spaces are encoded as %20. Neither leading question mark nor trailing ampersand is
// produced.
func (q *Query) AppendEncoded(dst []byte) []byte {
	for i, pair := range q.pairs {
		if i > 0 {
			dst = append(dst, '&')
		}

		dst = urlencoded.AppendEncode(dst, pair.Key)
		dst = append(dst, '=')
		dst = urlencoded.AppendEncode(dst, pair.Value)
	}

	return dst
}

// Encode returns the query string. Empty query results in empty string.
func (q *Query) Encode() string {
	if q.Empty() {
		return ""
	}

	return uf.B2S(q.AppendEncoded(make([]byte, 0, q.rawLen())))
}

func (q *Query) String() string {
	return q.Encode()
}

// rawLen is the length of the query string as if nothing needed to be escaped.
func (q *Query) rawLen() (n int) {
	for _, pair := range q.pairs {
		n += len(pair.Key) + len("=") + len(pair.Value) + len("&")
	}

	return n
}

func (q *Query) index(key string) int {
	for i, pair := range q.pairs {
		if pair.Key == key {
			return i
		}
	}

	return -1
}
