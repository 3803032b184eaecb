package querystr

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/indigo-web/querystr/config"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("no parameters", func(t *testing.T) {
		for _, query := range []string{"", "?", "??", "&", "?&&"} {
			q, err := Parse(query)
			require.NoError(t, err, query)
			require.True(t, q.Empty(), query)
		}
	})

	t.Run("single parameter", func(t *testing.T) {
		q, err := Parse("testKey%20%26%3F1=testValue%20%26%3F1")
		require.NoError(t, err)
		value, err := q.Get("testKey &?1")
		require.NoError(t, err)
		require.Equal(t, "testValue &?1", value)
	})

	t.Run("multiple parameters", func(t *testing.T) {
		q, err := Parse(
			"testKey%20%26%3F1=testValue%20%26%3F1&" +
				"testKey%20%26%3F2=testValue%20%26%3F2&" +
				"testKey%20%26%3F3=testValue%20%26%3F3",
		)
		require.NoError(t, err)
		require.Equal(t, []Pair{
			{"testKey &?1", "testValue &?1"},
			{"testKey &?2", "testValue &?2"},
			{"testKey &?3", "testValue &?3"},
		}, q.Expose())
	})

	t.Run("preceding question mark", func(t *testing.T) {
		q, err := Parse("?testKey%20%26%3F1=testValue%20%26%3F1")
		require.NoError(t, err)
		require.Equal(t, "testValue &?1", q.Value("testKey &?1"))
	})

	t.Run("too many ampersands", func(t *testing.T) {
		want, err := Parse("a=b&c=d")
		require.NoError(t, err)
		q, err := Parse("a=b&&&c=d")
		require.NoError(t, err)
		require.Equal(t, want.Expose(), q.Expose())
	})

	t.Run("last duplicate wins", func(t *testing.T) {
		q, err := Parse("a=1&b=2&a=3")
		require.NoError(t, err)
		require.Equal(t, []Pair{{"a", "3"}, {"b", "2"}}, q.Expose())
	})

	t.Run("pluses are spaces", func(t *testing.T) {
		q, err := Parse("hel+lo=wo+rld&plus=%2B")
		require.NoError(t, err)
		require.Equal(t, "wo rld", q.Value("hel lo"))
		require.Equal(t, "+", q.Value("plus"))
	})

	t.Run("malformed", func(t *testing.T) {
		for _, query := range []string{
			"=testValue%20%26%3F1",
			"testKey%20%26%3F1=",
			"testKey",
			"a=b=c",
			"a=b&=c",
		} {
			q, err := Parse(query)
			require.Nil(t, q, query)
			require.ErrorIs(t, err, ErrMalformedParameter, query)
		}
	})

	t.Run("malformed segment is reported", func(t *testing.T) {
		_, err := Parse("?a=b&&flag&c=d")

		var malformed *MalformedParameterError
		require.ErrorAs(t, err, &malformed)
		require.Equal(t, "flag", malformed.Segment)
		require.NoError(t, malformed.Unwrap())
		require.Equal(t, `"flag" is not a well-formed parameter`, err.Error())
	})

	t.Run("malformed escapes are kept by default", func(t *testing.T) {
		q, err := Parse("discount=100%&code=%zz")
		require.NoError(t, err)
		require.Equal(t, "100%", q.Value("discount"))
		require.Equal(t, "%zz", q.Value("code"))
	})

	t.Run("strict decoding", func(t *testing.T) {
		cfg := config.Default()
		cfg.Parse.StrictDecoding = true

		q, err := ParseWith("a=%41&b=100%", cfg)
		require.Nil(t, q)
		require.ErrorIs(t, err, ErrMalformedParameter)
		require.ErrorIs(t, err, ErrURLDecoding)

		var malformed *MalformedParameterError
		require.True(t, errors.As(err, &malformed))
		require.Equal(t, "b=100%", malformed.Segment)
	})

	t.Run("params limit", func(t *testing.T) {
		cfg := config.Default()
		cfg.Parse.MaxParams = 3

		_, err := ParseWith("a=1&b=2&c=3", cfg)
		require.NoError(t, err)

		q, err := ParseWith("a=1&b=2&c=3&d=4", cfg)
		require.Nil(t, q)
		require.ErrorIs(t, err, ErrTooManyParams)
	})

	t.Run("no params limit by default", func(t *testing.T) {
		var b strings.Builder
		for i := range 5000 {
			b.WriteString("key" + strconv.Itoa(i) + "=value&")
		}

		q, err := Parse(b.String())
		require.NoError(t, err)
		require.Equal(t, 5000, q.Len())
		require.Equal(t, "value", q.Value("key4999"))

		q, err = Parse(strings.Repeat("a=b&", 1025))
		require.NoError(t, err)
		require.Equal(t, 1, q.Len())
	})

	t.Run("nil config", func(t *testing.T) {
		q, err := ParseWith("a=b", nil)
		require.NoError(t, err)
		require.Equal(t, "b", q.Value("a"))
	})

	t.Run("negative prealloc", func(t *testing.T) {
		cfg := config.Default()
		cfg.Parse.Prealloc = -1

		q, err := ParseWith("a=b", cfg)
		require.NoError(t, err)
		require.Equal(t, "b", q.Value("a"))
	})

	t.Run("negative limit", func(t *testing.T) {
		cfg := config.Default()
		cfg.Parse.MaxParams = -1

		q, err := ParseWith(strings.Repeat("a=b&", 5000), cfg)
		require.NoError(t, err)
		require.Equal(t, 1, q.Len())
	})
}
