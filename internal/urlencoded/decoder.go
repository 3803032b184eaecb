package urlencoded

import (
	"errors"

	"github.com/indigo-web/querystr/internal/hexconv"
	"github.com/indigo-web/utils/uf"
)

var ErrURLDecoding = errors.New("invalid urlencoded sequence")

// Decoder decodes src by appending to dst, if needed. The decoded result may be either
// src itself (in case there was nothing to decode) or a sub-slice of the returned buffer.
type Decoder = func(src, dst []byte) (decoded, buffer []byte, err error)

// Decode decodes percent-encoded sequences and pluses as spaces. Incomplete or
// non-hexadecimal sequences are left as is.
func Decode(src, dst []byte) (decoded, buffer []byte, err error) {
	return decode(src, dst, false)
}

// StrictDecode is the same as Decode, but returns ErrURLDecoding on malformed sequences
// instead of leaving them as is.
func StrictDecode(src, dst []byte) (decoded, buffer []byte, err error) {
	return decode(src, dst, true)
}

func decode(src, dst []byte, strict bool) (decoded, buffer []byte, err error) {
	dsthead := len(dst)
	modified := false

loop:
	for i, c := range src {
		switch c {
		case '+':
			modified = true
			dst = append(dst, src[:i]...)
			dst = append(dst, ' ')
			src = src[i+1:]
			goto loop
		case '%':
			if len(src)-i < 3 {
				if strict {
					return nil, dst, ErrURLDecoding
				}

				continue
			}

			a, b := hexconv.Halfbyte[src[i+1]], hexconv.Halfbyte[src[i+2]]
			if a|b > 0x0f {
				if strict {
					return nil, dst, ErrURLDecoding
				}

				continue
			}

			modified = true
			dst = append(dst, src[:i]...)
			dst = append(dst, (a<<4)|b)
			src = src[i+3:]
			goto loop
		}
	}

	if !modified {
		return src, dst, nil
	}

	dst = append(dst, src...)
	return dst[dsthead:], dst, nil
}

// DecodeString is a string wrapper over the passed decoder. The returned string may
// share memory with the buffer, therefore the buffer must not be overwritten as long
// as the string is in use.
func DecodeString(decoder Decoder, src string, buff []byte) (decoded string, buffer []byte, err error) {
	d, buffer, err := decoder(uf.S2B(src), buff)
	return uf.B2S(d), buffer, err
}
