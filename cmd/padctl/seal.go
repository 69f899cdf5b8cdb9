package main

import (
	"fmt"
	"strings"

	"github.com/maruel/subcommands"
	"go.uber.org/zap"

	"github.com/vdparikh/pad/seal"
)

func cmdSeal(st *state) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "seal [flags] <data|->",
		ShortDesc: "encrypts data into a printable payload",
		LongDesc:  "Encrypts data with a passphrase into \"<type>|<base64>\". -type open only encodes.",
		CommandRun: func() subcommands.CommandRun {
			r := &sealRun{st: st}
			r.registerFlags()
			r.Flags.StringVar(&r.typ, "type", "", "payload type: empty (encrypted), fast or open")
			return r
		},
	}
}

func cmdOpen(st *state) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "open [flags] <payload|->",
		ShortDesc: "decrypts a sealed payload",
		LongDesc:  "Decrypts a payload produced by seal, picking the algorithm from its type prefix.",
		CommandRun: func() subcommands.CommandRun {
			r := &sealRun{st: st, open: true}
			r.registerFlags()
			return r
		},
	}
}

type sealRun struct {
	subcommands.CommandRunBase
	st         *state
	passphrase string
	typ        string
	open       bool
}

func (r *sealRun) registerFlags() {
	r.Flags.StringVar(&r.passphrase, "passphrase", r.st.cfg.Seal.Passphrase, "passphrase (defaults to $PAD_SEAL_PASSPHRASE)")
}

func (r *sealRun) unencrypted(data string) bool {
	if r.open {
		return strings.HasPrefix(data, string(seal.TypeOpen)+"|")
	}
	return seal.Type(r.typ) == seal.TypeOpen
}

func (r *sealRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	name := "seal"
	if r.open {
		name = "open"
	}

	data, err := input(args)
	if err != nil {
		return r.st.done(a, name, "", err)
	}

	passphrase := r.passphrase
	if passphrase == "" && r.unencrypted(data) {
		// Open payloads never touch the key.
		passphrase = "-"
	}
	s, err := seal.NewFromPassphrase(passphrase)
	if err != nil {
		return r.st.done(a, name, "", fmt.Errorf("%w (set -passphrase or $PAD_SEAL_PASSPHRASE)", err))
	}

	r.st.log.Debug("sealing", zap.String("command", name), zap.String("type", r.typ), zap.Int("length", len(data)))

	if r.open {
		out, err := s.Open(data)
		return r.st.done(a, name, string(out), err)
	}
	out, err := s.Seal([]byte(data), seal.Type(r.typ))
	return r.st.done(a, name, out, err)
}
