package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

func main() {
	cfg, subCmd, subConfig, err := parseCommandLine(os.Args[1:])
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, flagsErr.Message)
			os.Exit(0)
		}
		printErrorAndExit(err)
	}

	if err := setupLogging(cfg, os.Stderr); err != nil {
		printErrorAndExit(err)
	}

	if err := run(os.Stdout, subCmd, subConfig); err != nil {
		printErrorAndExit(err)
	}
}

func setupLogging(cfg *configFlags, w io.Writer) error {
	lvl, err := parseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	useColor := !cfg.NoColor
	if f, ok := w.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		useColor = false
	}
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(w, lvl, useColor)))
	return nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "trace":
		return log.LevelTrace, nil
	case "debug":
		return log.LevelDebug, nil
	case "info":
		return log.LevelInfo, nil
	case "warn":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	}
	return 0, errors.Errorf("invalid --loglevel %q", s)
}

func run(w io.Writer, subCmd string, subConfig interface{}) error {
	switch subCmd {
	case "":
		return printWellKnownNodes(w)
	case hashSubCmd:
		return hashNames(w, subConfig.(*hashConfig))
	case labelHashSubCmd:
		return hashLabels(w, subConfig.(*labelHashConfig))
	case keccakSubCmd:
		return keccak(w, subConfig.(*keccakConfig))
	case reverseSubCmd:
		return reverseNodes(w, subConfig.(*reverseConfig))
	case dnsEncodeSubCmd:
		return dnsEncode(w, subConfig.(*dnsEncodeConfig))
	case lookupSubCmd:
		return lookup(w, subConfig.(*lookupConfig))
	case dumpSubCmd:
		return dump(w, subConfig.(*dumpConfig))
	default:
		return errors.Errorf("unknown sub-command %q", subCmd)
	}
}
