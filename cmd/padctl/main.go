// Command padctl pads, hashes and seals values from the command line.
//
// Keys and settings come from flags or the environment (see internal/config).
// Results are written to stdout; logs go to stderr.
package main

import (
	"fmt"
	"os"

	"github.com/maruel/subcommands"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vdparikh/pad/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "padctl: %v\n", err)
		os.Exit(2)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "padctl: failed to initialize logger: %v\n", err)
		os.Exit(2)
	}
	defer logger.Sync()

	os.Exit(subcommands.Run(application(&state{cfg: cfg, log: logger}), nil))
}

func application(st *state) *subcommands.DefaultApplication {
	return &subcommands.DefaultApplication{
		Name:  "padctl",
		Title: "Pad, hash and seal values with the canonical 95-character alphabet.",
		// Keep in alphabetical order of their name.
		Commands: []*subcommands.Command{
			cmdConvert(st),
			cmdHash(st),
			subcommands.CmdHelp,
			cmdKeygen(st),
			cmdOpen(st),
			cmdPad(st),
			cmdPasswd(st),
			cmdRandom(st),
			cmdSeal(st),
			cmdUnpad(st),
			cmdVerify(st),
		},
	}
}

func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	zc := zap.Config{
		Level:       zap.NewAtomicLevelAt(level),
		Development: cfg.Development,
		Encoding:    cfg.Format,
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "timestamp",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.SecondsDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		// stdout carries command results.
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	if level == zapcore.DebugLevel {
		zc.Development = true
	}
	return zc.Build()
}
