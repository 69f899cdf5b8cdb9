package main

import (
	"fmt"
	"strconv"

	"github.com/maruel/subcommands"
	"go.uber.org/zap"

	"github.com/vdparikh/pad/digest"
)

func cmdHash(st *state) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "hash [flags] <value|->",
		ShortDesc: "prints a truncated SHA-512 of a value or file",
		LongDesc:  "Prints the SHA-512 of a value rendered in -base, truncated to -length. With -file, prints the SHA-1 fingerprint of a file instead.",
		CommandRun: func() subcommands.CommandRun {
			r := &hashRun{st: st}
			r.Flags.IntVar(&r.length, "length", 64, "number of characters to print")
			r.Flags.IntVar(&r.base, "base", 64, "output base, 2-95")
			r.Flags.StringVar(&r.file, "file", "", "fingerprint this file instead of a value")
			return r
		},
	}
}

type hashRun struct {
	subcommands.CommandRunBase
	st     *state
	length int
	base   int
	file   string
}

func (r *hashRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	if r.file != "" {
		r.st.log.Debug("fingerprinting file", zap.String("path", r.file))
		out, err := digest.File(r.file)
		return r.st.done(a, "hash", out, err)
	}

	value, err := input(args)
	if err != nil {
		return r.st.done(a, "hash", "", err)
	}
	out, err := digest.Value(value, r.length, r.base)
	return r.st.done(a, "hash", out, err)
}

func cmdConvert(st *state) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "convert <value> <from> <to>",
		ShortDesc: "converts a number between bases",
		LongDesc:  "Converts a number written with the canonical alphabet from one base to another.",
		CommandRun: func() subcommands.CommandRun {
			return &convertRun{st: st}
		},
	}
}

type convertRun struct {
	subcommands.CommandRunBase
	st *state
}

func (r *convertRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	if len(args) != 3 {
		return r.st.done(a, "convert", "", fmt.Errorf("expected <value> <from> <to>, got %d arguments", len(args)))
	}
	from, err := strconv.Atoi(args[1])
	if err != nil {
		return r.st.done(a, "convert", "", fmt.Errorf("invalid source base: %w", err))
	}
	to, err := strconv.Atoi(args[2])
	if err != nil {
		return r.st.done(a, "convert", "", fmt.Errorf("invalid target base: %w", err))
	}
	out, err := digest.ConvertBase(args[0], from, to)
	return r.st.done(a, "convert", out, err)
}

func cmdRandom(st *state) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "random [flags]",
		ShortDesc: "prints random characters",
		LongDesc:  "Prints -length random characters from the first -base characters of the alphabet.",
		CommandRun: func() subcommands.CommandRun {
			r := &randomRun{st: st}
			r.Flags.IntVar(&r.length, "length", 64, "number of characters")
			r.Flags.IntVar(&r.base, "base", 64, "alphabet size, 1-95")
			return r
		},
	}
}

type randomRun struct {
	subcommands.CommandRunBase
	st     *state
	length int
	base   int
}

func (r *randomRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	if len(args) != 0 {
		return r.st.done(a, "random", "", fmt.Errorf("unexpected arguments: %v", args))
	}
	out, err := digest.Random(r.length, r.base)
	return r.st.done(a, "random", out, err)
}
