package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/cardcheck/pkg/cardnetwork"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

var errUsage = errors.New("usage")

const usage = `usage: cardcheck [-format yaml|json] <command> [arguments]

commands:
  check <number>...                 classify and validate numbers
  validate <network> <number>       validate a number for a network
  format [-sep S] [-network N] <number>
                                    group a number for display
  check-digit <partial>             compute the Luhn check digit
  networks                          print the network table
`

type checkOutput struct {
	Number    string              `json:"number" yaml:"number"`
	Network   cardnetwork.Network `json:"network" yaml:"network"`
	Status    cardnetwork.Status  `json:"status" yaml:"status"`
	Valid     bool                `json:"valid" yaml:"valid"`
	Formatted string              `json:"formatted" yaml:"formatted"`
	MaxLength int                 `json:"max_length" yaml:"max_length"`
}

type validateOutput struct {
	Network cardnetwork.Network `json:"network" yaml:"network"`
	Valid   bool                `json:"valid" yaml:"valid"`
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("cardcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	format := fs.String("format", "yaml", "output format: yaml or json")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	enc, err := newEncoder(*format, stdout)
	if err != nil {
		fmt.Fprintln(stderr, "cardcheck:", err)
		return exitUsage
	}

	code, err := dispatch(fs.Args(), enc, stdout, stderr)
	if err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, "cardcheck:", err)
			fmt.Fprint(stderr, usage)
			return exitUsage
		}
		fmt.Fprintln(stderr, "cardcheck:", err)
		return exitInvalid
	}
	return code
}

func dispatch(args []string, enc encoder, stdout, stderr io.Writer) (int, error) {
	if len(args) == 0 {
		return exitUsage, fmt.Errorf("%w: missing command", errUsage)
	}

	cmd, args := args[0], args[1:]
	switch cmd {
	case "check":
		if len(args) == 0 {
			return exitUsage, fmt.Errorf("%w: check needs at least one number", errUsage)
		}
		out := make([]checkOutput, 0, len(args))
		for _, raw := range args {
			res := cardnetwork.Check(raw)
			out = append(out, checkOutput{
				Number:    res.Digits,
				Network:   res.Network,
				Status:    res.Status,
				Valid:     res.Valid,
				Formatted: cardnetwork.Format(res.Digits, res.Network, cardnetwork.DefaultSeparator),
				MaxLength: cardnetwork.MaxLength(res.Network),
			})
		}
		return exitOK, enc(out)

	case "validate":
		if len(args) != 2 {
			return exitUsage, fmt.Errorf("%w: validate needs a network and a number", errUsage)
		}
		n, err := cardnetwork.ParseNetwork(args[0])
		if err != nil || !n.Known() {
			return exitUsage, fmt.Errorf("%w: unknown network %q", errUsage, args[0])
		}
		valid := cardnetwork.IsValid(args[1], n)
		if err := enc(validateOutput{Network: n, Valid: valid}); err != nil {
			return exitInvalid, err
		}
		if !valid {
			return exitInvalid, nil
		}
		return exitOK, nil

	case "format":
		return runFormat(args, stdout, stderr)

	case "check-digit":
		if len(args) != 1 {
			return exitUsage, fmt.Errorf("%w: check-digit needs one partial number", errUsage)
		}
		d, ok := cardnetwork.CheckDigit(cardnetwork.Digits(args[0]))
		if !ok {
			return exitUsage, fmt.Errorf("%w: %q has no digits", errUsage, args[0])
		}
		_, err := fmt.Fprintf(stdout, "%c\n", d)
		return exitOK, err

	case "networks":
		return exitOK, enc(cardnetwork.Table())
	}

	return exitUsage, fmt.Errorf("%w: unknown command %q", errUsage, cmd)
}

func runFormat(args []string, stdout, stderr io.Writer) (int, error) {
	fs := flag.NewFlagSet("format", flag.ContinueOnError)
	fs.SetOutput(stderr)
	sep := fs.String("sep", cardnetwork.DefaultSeparator, "group separator")
	network := fs.String("network", "", "network layout to use; classified from the number when empty")
	if err := fs.Parse(args); err != nil {
		return exitUsage, fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() != 1 {
		return exitUsage, fmt.Errorf("%w: format needs one number", errUsage)
	}

	number := fs.Arg(0)
	n := cardnetwork.ClassifyNetwork(number)
	if *network != "" {
		var err error
		if n, err = cardnetwork.ParseNetwork(*network); err != nil {
			return exitUsage, fmt.Errorf("%w: %v", errUsage, err)
		}
	}

	_, err := fmt.Fprintln(stdout, cardnetwork.Format(number, n, *sep))
	return exitOK, err
}

type encoder func(v any) error

func newEncoder(format string, w io.Writer) (encoder, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return func(v any) error {
			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err := enc.Encode(v); err != nil {
				return err
			}
			return enc.Close()
		}, nil
	case "json":
		return func(v any) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(v)
		}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}
