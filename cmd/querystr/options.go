package main

import (
	"github.com/indigo-web/querystr/config"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type options struct {
	cfg     *config.Config
	verbose bool
	json    bool
}

func newOptions() *options {
	return &options{
		cfg: config.Default(),
	}
}

// bindFlags binds the global flags directly onto the config, so defaults are shown
// as they are in config.Default().
func bindFlags(fs *pflag.FlagSet, opts *options) {
	fs.BoolVar(
		&opts.cfg.Parse.StrictDecoding, "strict", opts.cfg.Parse.StrictDecoding,
		"reject incomplete or non-hexadecimal percent-encoded sequences",
	)
	fs.IntVar(
		&opts.cfg.Parse.MaxParams, "max-params", opts.cfg.Parse.MaxParams,
		"maximal number of parameters in a query string, non-positive disables the limit",
	)
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log to stderr")
}

func (o *options) logger() (*zap.Logger, error) {
	if !o.verbose {
		return zap.NewNop(), nil
	}

	return zap.NewDevelopment()
}
