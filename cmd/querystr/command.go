package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/indigo-web/querystr"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCommand() *cobra.Command {
	opts := newOptions()

	cmd := &cobra.Command{
		Use:           "querystr",
		Short:         "Encode and decode URI query strings",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	bindFlags(cmd.PersistentFlags(), opts)
	cmd.AddCommand(newEncodeCommand(opts), newDecodeCommand(opts))

	return cmd
}

func newEncodeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "encode key=value...",
		Short:   "Build a percent-encoded query string out of key=value pairs",
		Example: "querystr encode 'q=hello world' lang=uk",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := opts.logger()
			if err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			defer logger.Sync() //nolint:errcheck

			q, err := queryFromArgs(args)
			if err != nil {
				return err
			}

			logger.Debug("encoding query", zap.Int("params", q.Len()))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), q.Encode())
			return errors.Wrap(err, "failed to write the query")
		},
	}
}

func newDecodeCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decode query",
		Short:   "Print decoded parameters of a query string",
		Example: "querystr decode '?q=hello%20world&lang=uk'",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := opts.logger()
			if err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			defer logger.Sync() //nolint:errcheck

			q, err := querystr.ParseWith(args[0], opts.cfg)
			if err != nil {
				logger.Debug("malformed query", zap.String("query", args[0]), zap.Error(err))
				return errors.Wrap(err, "failed to parse the query")
			}

			logger.Debug(
				"decoded query",
				zap.Int("params", q.Len()),
				zap.Bool("strict", opts.cfg.Parse.StrictDecoding),
			)

			return errors.Wrap(printQuery(cmd.OutOrStdout(), q, opts.json), "failed to write the query")
		},
	}
	cmd.Flags().BoolVar(&opts.json, "json", false, "print parameters as a JSON object")

	return cmd
}

func queryFromArgs(args []string) (*querystr.Query, error) {
	q := querystr.NewPrealloc(len(args))

	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			return nil, errors.Errorf("%q: expected key=value", arg)
		}

		q.Add(key, value)
	}

	return q, nil
}

func printQuery(out io.Writer, q *querystr.Query, asJSON bool) error {
	if asJSON {
		data, err := q.MarshalJSON()
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(out, "%s\n", data)
		return err
	}

	for key, value := range q.Pairs() {
		if _, err := fmt.Fprintf(out, "%s=%s\n", key, value); err != nil {
			return err
		}
	}

	return nil
}
