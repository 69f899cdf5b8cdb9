package main

import (
	"github.com/maruel/subcommands"
	"go.uber.org/zap"
)

func cmdPad(st *state) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "pad [flags] <value|->",
		ShortDesc: "pads a value with a key",
		LongDesc:  "Pads a value with a key over the first -base characters of the alphabet. The value is read from stdin when omitted.",
		CommandRun: func() subcommands.CommandRun {
			return newPadRun(st, false)
		},
	}
}

func cmdUnpad(st *state) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "unpad [flags] <padded|->",
		ShortDesc: "recovers a padded value",
		LongDesc:  "Recovers the original value of a padded string. Key and base must match the ones used to pad.",
		CommandRun: func() subcommands.CommandRun {
			return newPadRun(st, true)
		},
	}
}

type padRun struct {
	subcommands.CommandRunBase
	st      *state
	keys    keyFlags
	reverse bool
}

func newPadRun(st *state, reverse bool) *padRun {
	r := &padRun{st: st, reverse: reverse}
	r.keys.register(&r.CommandRunBase, st.cfg)
	return r
}

func (r *padRun) name() string {
	if r.reverse {
		return "unpad"
	}
	return "pad"
}

func (r *padRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	value, err := input(args)
	if err != nil {
		return r.st.done(a, r.name(), "", err)
	}
	c, err := r.keys.cipher()
	if err != nil {
		return r.st.done(a, r.name(), "", err)
	}

	r.st.log.Debug("transforming value",
		zap.String("command", r.name()),
		zap.Int("base", r.keys.base),
		zap.Int("length", len(value)),
		zap.Bool("keyset", r.keys.key == ""))

	var out string
	if r.reverse {
		out, err = c.Unpad(value)
	} else {
		out, err = c.Pad(value)
	}
	return r.st.done(a, r.name(), out, err)
}
