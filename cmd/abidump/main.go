// abidump is a command-line client for decoding EVM ABI call data
// against a caller-supplied, positional list of parameter types.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/smallyunet/zabi-go/abi"
	"github.com/smallyunet/zabi-go/internal/xlog"
	"github.com/urfave/cli/v2"
)

var (
	typeFlag = &cli.StringSliceFlag{
		Name:    "type",
		Aliases: []string{"t"},
		Usage:   "parameter type, repeatable and given in tuple order (address|uint256|int256|bool|bytes32|bytes|string)",
	}
	dataFlag = &cli.StringFlag{
		Name:    "data",
		Aliases: []string{"d"},
		Usage:   "hex-encoded call data, with or without a 0x prefix",
	}
	selectorFlag = &cli.BoolFlag{
		Name:  "selector",
		Usage: "data begins with a 4-byte function selector; print it and decode the remainder",
	}
	verboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "trace each decoded slot to stderr",
	}
)

var app = &cli.App{
	Name:  "abidump",
	Usage: "decode EVM ABI call data into borrowed views and print them",
	Flags: []cli.Flag{typeFlag, dataFlag, selectorFlag, verboseFlag},
	Action: run,
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var usageErr usageError
		if errors.As(err, &usageErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// usageError marks a failure the user can fix by changing their
// invocation, distinct from a decode failure in the payload itself.
type usageError struct{ error }

func run(ctx *cli.Context) error {
	level := slog.LevelInfo
	if ctx.Bool(verboseFlag.Name) {
		level = slog.LevelDebug
	}
	logger := slog.New(xlog.New(os.Stderr, level, isTerminal(os.Stderr)))

	types := ctx.StringSlice(typeFlag.Name)
	if len(types) == 0 {
		return usageError{errors.New("abidump: at least one --type is required")}
	}
	rawData := ctx.String(dataFlag.Name)
	if rawData == "" {
		return usageError{errors.New("abidump: --data is required")}
	}

	data, err := decodeHex(rawData)
	if err != nil {
		return usageError{fmt.Errorf("abidump: %w", err)}
	}
	logger.Debug("parsed call data", "bytes", len(data))

	if ctx.Bool(selectorFlag.Name) {
		sel, err := abi.ReadSelector(data)
		if err != nil {
			return fmt.Errorf("abidump: %w", err)
		}
		fmt.Printf("selector: 0x%x\n", sel)
		data, err = abi.SkipSelector(data)
		if err != nil {
			return fmt.Errorf("abidump: %w", err)
		}
	}

	slots := make([]abi.Slot, len(types))
	for i, typ := range types {
		s, err := slotForType(typ)
		if err != nil {
			return usageError{fmt.Errorf("abidump: %w", err)}
		}
		slots[i] = s
	}

	out, err := abi.DecodeTuple(data, 0, slots...)
	if err != nil {
		var abiErr abi.Error
		if errors.As(err, &abiErr) {
			logger.Error("decode failed", "kind", abiErr.Kind.String())
		}
		return fmt.Errorf("abidump: %w", err)
	}

	for i, v := range out {
		fmt.Printf("[%d] %s = %s\n", i, types[i], formatView(v))
		logger.Debug("decoded slot", "index", i, "type", types[i])
	}
	return nil
}

func slotForType(typ string) (abi.Slot, error) {
	typ = strings.ToLower(strings.TrimSpace(typ))
	switch {
	case typ == "address":
		return abi.SlotAddress, nil
	case typ == "uint256":
		return abi.SlotU256, nil
	case typ == "int256":
		return abi.SlotInt256, nil
	case typ == "bool":
		return abi.SlotBool, nil
	case typ == "bytes":
		return abi.SlotBytes, nil
	case typ == "string":
		return abi.SlotString, nil
	case strings.HasPrefix(typ, "bytes"):
		n, err := parseBytesNWidth(typ)
		if err != nil {
			return nil, err
		}
		return abi.SlotBytesN(n), nil
	default:
		return nil, fmt.Errorf("unsupported type %q", typ)
	}
}

func parseBytesNWidth(typ string) (int, error) {
	digits := strings.TrimPrefix(typ, "bytes")
	n := 0
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("unsupported type %q", typ)
		}
		n = n*10 + int(c-'0')
	}
	if n < 1 || n > 32 {
		return 0, fmt.Errorf("bytesN width out of range: %q", typ)
	}
	return n, nil
}

func formatView(v any) string {
	switch t := v.(type) {
	case abi.AddressView:
		return fmt.Sprintf("0x%x", t.AsBytes())
	case abi.U256View:
		return fmt.Sprintf("0x%x", t.AsBytes())
	case abi.I256View:
		return fmt.Sprintf("0x%x", t.AsBytes())
	case abi.BoolView:
		return fmt.Sprintf("%v", t.AsBool())
	case abi.BytesNView:
		return fmt.Sprintf("0x%x", t.AsBytes())
	case abi.BytesView:
		return fmt.Sprintf("0x%x", t.AsSlice())
	case abi.StringView:
		return t.AsStr()
	default:
		return fmt.Sprintf("%v", t)
	}
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	return hex.DecodeString(s)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) && os.Getenv("TERM") != "dumb"
}
