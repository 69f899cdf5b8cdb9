package main

import (
	"fmt"

	"github.com/maruel/subcommands"
	"go.uber.org/zap"

	"github.com/vdparikh/pad/passhash"
)

func cmdPasswd(st *state) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "passwd [flags] <password|->",
		ShortDesc: "hashes a password",
		LongDesc:  "Hashes a password with argon2id, or with the legacy salted SHA-512 scheme when -legacy is set.",
		CommandRun: func() subcommands.CommandRun {
			r := &passwdRun{st: st}
			r.Flags.BoolVar(&r.legacy, "legacy", false, "produce a legacy default$ hash")
			return r
		},
	}
}

func cmdVerify(st *state) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "verify <password> <hash>",
		ShortDesc: "checks a password against a hash",
		LongDesc:  "Checks a password against an argon2id or legacy hash. Exits 1 when it does not match.",
		CommandRun: func() subcommands.CommandRun {
			return &passwdRun{st: st, verify: true}
		},
	}
}

type passwdRun struct {
	subcommands.CommandRunBase
	st     *state
	legacy bool
	verify bool
}

func (r *passwdRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	m := passhash.NewManager(r.st.cfg.Hash.SiteSalt, r.st.cfg.Hash.Complexity)

	if r.verify {
		if len(args) != 2 {
			return r.st.done(a, "verify", "", fmt.Errorf("expected <password> <hash>, got %d arguments", len(args)))
		}
		ok, err := m.Check(args[0], args[1])
		if err != nil {
			return r.st.done(a, "verify", "", err)
		}
		if !ok {
			return r.st.done(a, "verify", "", fmt.Errorf("password does not match"))
		}
		if m.NeedsRehash(args[1]) {
			r.st.log.Info("hash uses an outdated driver and should be replaced")
		}
		return r.st.done(a, "verify", "ok", nil)
	}

	password, err := input(args)
	if err != nil {
		return r.st.done(a, "passwd", "", err)
	}

	var h passhash.Hasher = m
	if r.legacy {
		h = passhash.NewLegacy(r.st.cfg.Hash.SiteSalt, r.st.cfg.Hash.Complexity)
	}
	r.st.log.Debug("hashing password", zap.Bool("legacy", r.legacy))
	out, err := h.Make(password)
	return r.st.done(a, "passwd", out, err)
}
