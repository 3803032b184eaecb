package urlencoded

import (
	"github.com/indigo-web/querystr/internal/hexconv"
)

// unreserved bytes are never escaped. Note that space isn't among them and is
// encoded as %20, not as +, as the latter is valid only for form-encoded bodies.
var unreserved = func() (table [256]bool) {
	for c := 'a'; c <= 'z'; c++ {
		table[c] = true
		table[c-'a'+'A'] = true
	}

	for c := '0'; c <= '9'; c++ {
		table[c] = true
	}

	for _, c := range "-_.!*()" {
		table[c] = true
	}

	return table
}()

// AppendEncode appends percent-encoded str to dst.
func AppendEncode(dst []byte, str string) []byte {
	for i := 0; i < len(str); i++ {
		c := str[i]
		if unreserved[c] {
			dst = append(dst, c)
			continue
		}

		dst = append(dst, '%', hexconv.Upper[c>>4], hexconv.Upper[c&0x0f])
	}

	return dst
}

// Encode returns percent-encoded str. The string is returned as is if there's nothing
// to be escaped.
func Encode(str string) string {
	escaped := escapedCount(str)
	if escaped == 0 {
		return str
	}

	return string(AppendEncode(make([]byte, 0, len(str)+2*escaped), str))
}

func escapedCount(str string) (n int) {
	for i := 0; i < len(str); i++ {
		if !unreserved[str[i]] {
			n++
		}
	}

	return n
}
