package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"steamkit/steamid"
	"steamkit/steamidutil"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	ctx := context.Background()
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCommand(stdin, stdout, stderr)
	cmd.SetArgs(args)

	return cmd.ExecuteContext(ctx)
}

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	logLevel string
	log      zerolog.Logger
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		log:    zerolog.Nop(),
	}

	root := &cobra.Command{
		Use:           "steamid",
		Short:         "Convert Steam account identifiers between notations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := zerolog.ParseLevel(a.logLevel)
			if err != nil {
				return fmt.Errorf("parse log level: %w", err)
			}

			w := zerolog.ConsoleWriter{Out: a.stderr, NoColor: true}
			a.log = zerolog.New(w).Level(level).With().Timestamp().Logger()

			return nil
		},
	}

	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(a.newConvertCommand(), a.newInspectCommand())

	return root
}

type convertOptions struct {
	formats []string
	json    bool
	workers int
}

func (a *app) newConvertCommand() *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "convert [id...]",
		Short: "Print identifiers in every requested notation; reads stdin when no ids are given",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convert(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.formats, "format", []string{"all"}, "notations to print: all, id64, id2, id3")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print JSON")
	cmd.Flags().IntVar(&opts.workers, "workers", 8, "concurrent conversions")

	return cmd
}

func parseFormats(formats []string) ([]steamidutil.Notation, error) {
	notations := make([]steamidutil.Notation, 0, len(steamidutil.Notations))

	for _, f := range formats {
		if f == "all" {
			return steamidutil.Notations, nil
		}

		n, err := steamidutil.ParseNotation(f)
		if err != nil {
			return nil, err
		}

		notations = append(notations, n)
	}

	if len(notations) == 0 {
		return nil, errors.New("no notation selected")
	}

	return notations, nil
}

func readInputs(r io.Reader) ([]string, error) {
	var inputs []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		inputs = append(inputs, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return inputs, nil
}

type convertedID struct {
	Input string `json:"input"`
	ID64  string `json:"id64,omitempty"`
	ID2   string `json:"id2,omitempty"`
	ID3   string `json:"id3,omitempty"`
	Error string `json:"error,omitempty"`
}

func (c *convertedID) set(n steamidutil.Notation, v string) {
	switch n {
	case steamidutil.NotationID64:
		c.ID64 = v
	case steamidutil.NotationID2:
		c.ID2 = v
	case steamidutil.NotationID3:
		c.ID3 = v
	}
}

func (a *app) convert(ctx context.Context, args []string, opts convertOptions) error {
	notations, err := parseFormats(opts.formats)
	if err != nil {
		return fmt.Errorf("parse formats: %w", err)
	}

	inputs := args
	if len(inputs) == 0 {
		inputs, err = readInputs(a.stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	a.log.Debug().Int("inputs", len(inputs)).Int("workers", opts.workers).Msg("converting")

	results, err := steamidutil.ParseAll(ctx, inputs, opts.workers)
	if err != nil {
		return fmt.Errorf("parse all: %w", err)
	}

	var failed int

	converted := make([]convertedID, 0, len(results))

	for _, r := range results {
		c := convertedID{Input: r.Input}

		if r.Err != nil {
			a.log.Warn().Str("input", r.Input).Err(r.Err).Msg("resolve steam id")
			failed++

			if opts.json {
				c.Error = r.Err.Error()
				converted = append(converted, c)
			}

			continue
		}

		fields := make([]string, 0, len(notations))

		for _, n := range notations {
			v, err := steamidutil.Format(r.ID, n)
			if err != nil {
				if !errors.Is(err, steamid.ErrConversion) {
					return fmt.Errorf("format %s: %w", r.Input, err)
				}

				a.log.Debug().Str("input", r.Input).Stringer("notation", n).Err(err).Msg("not representable")
				v = "-"
			} else {
				c.set(n, v)
			}

			fields = append(fields, v)
		}

		if opts.json {
			converted = append(converted, c)
		} else {
			fmt.Fprintln(a.stdout, strings.Join(fields, "\t"))
		}
	}

	if opts.json {
		b, err := json.MarshalIndent(converted, "", "\t")
		if err != nil {
			return fmt.Errorf("marshal results: %w", err)
		}

		a.stdout.Write(append(b, '\n'))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs could not be resolved", failed, len(results))
	}

	return nil
}

func (a *app) newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <id>",
		Short: "Print the packed fields of an identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.inspect(args[0])
		},
	}
}

func (a *app) inspect(input string) error {
	id, err := steamidutil.Parse(input)
	if err != nil {
		return fmt.Errorf("parse steam id: %w", err)
	}

	f := id.Unpack()

	fmt.Fprintf(a.stdout, "%-15s %s\n", "id64", id)
	fmt.Fprintf(a.stdout, "%-15s %s (%d)\n", "universe", steamid.Universe(f.Universe), f.Universe)
	fmt.Fprintf(a.stdout, "%-15s %s (%d)\n", "account type", steamid.AccountType(f.AccountType), f.AccountType)
	fmt.Fprintf(a.stdout, "%-15s %d\n", "instance", f.Instance)
	fmt.Fprintf(a.stdout, "%-15s %d\n", "account number", f.AccountNumber)
	fmt.Fprintf(a.stdout, "%-15s %t\n", "valid", id.Valid())

	return nil
}
