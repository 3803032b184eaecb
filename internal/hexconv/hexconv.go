package hexconv

// Halfbyte maps an ASCII hex digit (of either case) to its value. Any other byte
// is mapped to 0xFF, so validity of a pair can be checked at once via a|b > 0x0f.
var Halfbyte = func() (table [256]byte) {
	for i := range table {
		table[i] = 0xFF
	}

	for c := byte('0'); c <= '9'; c++ {
		table[c] = c - '0'
	}

	for c := byte('a'); c <= 'f'; c++ {
		table[c] = c - 'a' + 10
		table[c-'a'+'A'] = c - 'a' + 10
	}

	return table
}()

// Upper is the alphabet used when producing percent-encoded sequences.
const Upper = "0123456789ABCDEF"
