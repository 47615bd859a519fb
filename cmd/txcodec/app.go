package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bsv-blockchain/txcodec/crypto"
	"github.com/bsv-blockchain/txcodec/errors"
	"github.com/bsv-blockchain/txcodec/model"
	"github.com/bsv-blockchain/txcodec/script"
	"github.com/bsv-blockchain/txcodec/services/codec"
	"github.com/bsv-blockchain/txcodec/settings"
	"github.com/bsv-blockchain/txcodec/ulogger"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

func newApp(w io.Writer) *cli.App {
	hexFlag := &cli.StringFlag{
		Name:     "hex",
		Usage:    "hex encoded input",
		Required: true,
	}

	return &cli.App{
		Name:      "txcodec",
		Usage:     "Transcode Bitcoin SV scripts and transactions",
		Writer:    w,
		ErrWriter: w,
		Commands: []*cli.Command{
			{
				Name:   "asm",
				Usage:  "Render a hex script as compact ASM",
				Flags:  []cli.Flag{hexFlag},
				Action: scriptToASM(false),
			},
			{
				Name:   "extended-asm",
				Usage:  "Render a hex script as extended ASM",
				Flags:  []cli.Flag{hexFlag},
				Action: scriptToASM(true),
			},
			{
				Name:  "hex",
				Usage: "Parse compact or extended ASM into a hex script",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "asm", Usage: "ASM text", Required: true},
				},
				Action: asmToHex,
			},
			{
				Name:  "decode",
				Usage: "Decode a hex transaction into JSON",
				Flags: []cli.Flag{
					hexFlag,
					&cli.BoolFlag{Name: "pretty", Usage: "indent the JSON output", Value: true},
				},
				Action: decodeTransaction,
			},
			{
				Name:  "match",
				Usage: "List the indices of inputs or outputs matching the given criteria",
				Flags: []cli.Flag{
					hexFlag,
					&cli.StringFlag{Name: "side", Usage: "inputs or outputs", Value: "outputs"},
					&cli.StringFlag{Name: "script", Usage: "hex script that must match exactly"},
					&cli.Uint64Flag{Name: "value", Usage: "exact satoshi value"},
					&cli.Uint64Flag{Name: "min", Usage: "minimum satoshi value"},
					&cli.Uint64Flag{Name: "max", Usage: "maximum satoshi value"},
				},
				Action: matchTransaction,
			},
			{
				Name:  "lock",
				Usage: "Build the P2PKH locking script for an address",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "address", Usage: "base58 address", Required: true},
				},
				Action: lockAddress,
			},
			{
				Name:   "address",
				Usage:  "Render the address a P2PKH locking script pays to, for the configured network",
				Flags:  []cli.Flag{hexFlag},
				Action: scriptAddress,
			},
			{
				Name:   "serve",
				Usage:  "Run the codec HTTP service",
				Action: serve,
			},
		},
	}
}

func scriptToASM(extended bool) cli.ActionFunc {
	return func(c *cli.Context) error {
		s, err := script.NewFromHexString(c.String("hex"))
		if err != nil {
			return err
		}

		var asm string
		if extended {
			asm, err = s.ToExtendedASM()
		} else {
			asm, err = s.ToASM()
		}

		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(c.App.Writer, asm)

		return err
	}
}

func asmToHex(c *cli.Context) error {
	s, err := script.NewFromASM(c.String("asm"))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, s.String())

	return err
}

func decodeTransaction(c *cli.Context) error {
	tx, err := model.NewTransactionFromString(c.String("hex"))
	if err != nil {
		return err
	}

	var out string

	if c.Bool("pretty") {
		out, err = tx.ToJSONString()
	} else {
		var b []byte

		b, err = tx.MarshalJSON()
		out = string(b)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, out)

	return err
}

func matchTransaction(c *cli.Context) error {
	tx, err := model.NewTransactionFromString(c.String("hex"))
	if err != nil {
		return err
	}

	criteria := model.NewMatchCriteria()

	if c.IsSet("script") {
		s, err := script.NewFromHexString(c.String("script"))
		if err != nil {
			return err
		}

		criteria = criteria.SetScript(s)
	}

	if c.IsSet("value") {
		criteria = criteria.SetValue(c.Uint64("value"))
	}

	if c.IsSet("min") {
		criteria = criteria.SetMin(c.Uint64("min"))
	}

	if c.IsSet("max") {
		criteria = criteria.SetMax(c.Uint64("max"))
	}

	var indices []int

	switch c.String("side") {
	case "inputs":
		indices = tx.MatchInputs(criteria)
	case "outputs":
		indices = tx.MatchOutputs(criteria)
	default:
		return errors.NewInvalidArgumentError("side must be inputs or outputs, got %q", c.String("side"))
	}

	strs := make([]string, len(indices))
	for i, idx := range indices {
		strs[i] = fmt.Sprint(idx)
	}

	_, err = fmt.Fprintln(c.App.Writer, strings.Join(strs, " "))

	return err
}

func lockAddress(c *cli.Context) error {
	s, err := crypto.LockingScriptFromAddress(c.String("address"))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, s.String())

	return err
}

func scriptAddress(c *cli.Context) error {
	s, err := script.NewFromHexString(c.String("hex"))
	if err != nil {
		return err
	}

	address, err := crypto.AddressFromLockingScript(settings.NewSettings().AddressVersion(), s)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, address)

	return err
}

func serve(c *cli.Context) error {
	tSettings := settings.NewSettings()

	logger := ulogger.New("codec",
		ulogger.WithLevel(tSettings.LogLevel),
		ulogger.WithPretty(tSettings.PrettyLogs),
	)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	h, err := codec.New(logger, tSettings)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return h.Start(ctx, tSettings.Codec.HTTPListenAddress)
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Infof("[txcodec] shutting down")

		return nil
	})

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
