package main

import (
	"fmt"
	"os"

	"github.com/google/tink/go/keyset"
	"github.com/maruel/subcommands"
	"go.uber.org/zap"

	"github.com/vdparikh/pad/tinkpad"
)

func cmdKeygen(st *state) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "keygen [flags] <path>",
		ShortDesc: "writes a new pad keyset",
		LongDesc:  "Generates a random pad key and writes it as a cleartext JSON Tink keyset. Refuses to overwrite an existing file.",
		CommandRun: func() subcommands.CommandRun {
			r := &keygenRun{st: st}
			r.Flags.IntVar(&r.size, "size", 32, "key size in bytes: 16, 24 or 32")
			return r
		},
	}
}

type keygenRun struct {
	subcommands.CommandRunBase
	st   *state
	size int
}

func (r *keygenRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	if len(args) != 1 {
		return r.st.done(a, "keygen", "", fmt.Errorf("expected <path>, got %d arguments", len(args)))
	}
	path := args[0]

	if err := tinkpad.Register(); err != nil {
		return r.st.done(a, "keygen", "", err)
	}

	template := tinkpad.KeyTemplate()
	switch r.size {
	case 16:
		template = tinkpad.KeyTemplate16()
	case 24:
		template = tinkpad.KeyTemplate24()
	case 32:
	default:
		return r.st.done(a, "keygen", "", fmt.Errorf("invalid key size %d", r.size))
	}

	handle, err := keyset.NewHandle(template)
	if err != nil {
		return r.st.done(a, "keygen", "", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return r.st.done(a, "keygen", "", err)
	}
	if err := tinkpad.WriteKeyset(handle, f); err != nil {
		f.Close()
		return r.st.done(a, "keygen", "", err)
	}
	if err := f.Close(); err != nil {
		return r.st.done(a, "keygen", "", err)
	}

	r.st.log.Info("wrote keyset", zap.String("path", path), zap.Int("size", r.size))
	return r.st.done(a, "keygen", path, nil)
}
