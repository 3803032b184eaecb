package hexconv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHalfbyte(t *testing.T) {
	t.Run("digits", func(t *testing.T) {
		for i, c := range "0123456789" {
			require.Equal(t, byte(i), Halfbyte[c])
		}
	})

	t.Run("letters of both cases", func(t *testing.T) {
		for i, c := range "abcdef" {
			require.Equal(t, byte(10+i), Halfbyte[c])
			require.Equal(t, byte(10+i), Halfbyte[strings.ToUpper(string(c))[0]])
		}
	})

	t.Run("non-hex", func(t *testing.T) {
		for _, c := range []byte("gGzZ%+ /:@`") {
			require.Equal(t, byte(0xFF), Halfbyte[c], string(c))
		}
	})

	t.Run("upper alphabet reverses the table", func(t *testing.T) {
		for i := range 16 {
			require.Equal(t, byte(i), Halfbyte[Upper[i]])
		}
	})
}

func benchLocal(b *testing.B, str string) {
	b.SetBytes(int64(len(str)))
	b.ResetTimer()

	for range b.N {
		var result uint64

		for j := range str {
			result = (result << 4) | uint64(Halfbyte[str[j]])
		}
	}
}

func BenchmarkHalfbyte(b *testing.B) {
	b.Run("short", func(b *testing.B) {
		benchLocal(b, "123456789abcdef")
	})

	b.Run("long", func(b *testing.B) {
		benchLocal(b, strings.Repeat("123456789abcdef", 100))
	})
}
