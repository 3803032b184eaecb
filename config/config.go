package config

type Parse struct {
	// Prealloc is the initial capacity of a parsed query.
	Prealloc int
	// MaxParams limits the number of parameters a single query string may carry. Exceeding
	// it results in querystr.ErrTooManyParams. Non-positive value disables the limit,
	// which is the default.
	MaxParams int `test:"nullable"`
	// StrictDecoding rejects incomplete or non-hexadecimal percent-encoded sequences,
	// which are otherwise left as is.
	StrictDecoding bool `test:"nullable"`
}

// Config holds settings used by query string parsing.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	Parse Parse
}

// Default returns default config.
func Default() *Config {
	return &Config{
		Parse: Parse{
			Prealloc:       5,
			MaxParams:      0,
			StrictDecoding: false,
		},
	}
}
