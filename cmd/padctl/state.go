package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/maruel/subcommands"
	"go.uber.org/zap"

	"github.com/vdparikh/pad"
	"github.com/vdparikh/pad/internal/config"
	"github.com/vdparikh/pad/tinkpad"
)

// state is shared by every command run.
type state struct {
	cfg *config.Config
	log *zap.Logger
}

// keyFlags are the flags of commands that need a pad key.
type keyFlags struct {
	key    string
	keyset string
	base   int
}

func (k *keyFlags) register(run *subcommands.CommandRunBase, cfg *config.Config) {
	run.Flags.StringVar(&k.key, "key", cfg.Pad.Key, "padding key (defaults to $PAD_KEY)")
	run.Flags.StringVar(&k.keyset, "keyset", cfg.Pad.KeysetPath, "cleartext JSON keyset to take the key from (defaults to $PAD_KEYSET)")
	run.Flags.IntVar(&k.base, "base", cfg.Pad.Base, "number of alphabet characters to use, 1-95")
}

// cipher builds the pad Cipher from a literal key or a keyset file. A literal
// key wins when both are set.
func (k *keyFlags) cipher() (pad.Cipher, error) {
	if k.key != "" {
		return pad.New(k.key, k.base)
	}
	if k.keyset == "" {
		return nil, fmt.Errorf("no key: set -key, -keyset, $PAD_KEY or $PAD_KEYSET")
	}

	f, err := os.Open(k.keyset)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := tinkpad.Register(); err != nil {
		return nil, err
	}
	handle, err := tinkpad.ReadKeyset(f)
	if err != nil {
		return nil, err
	}
	return tinkpad.New(handle, k.base)
}

// input returns the single positional argument, or stdin when it is "-" or
// absent. A trailing newline from stdin is dropped.
func input(args []string) (string, error) {
	switch {
	case len(args) > 1:
		return "", fmt.Errorf("expected at most one argument, got %d", len(args))
	case len(args) == 1 && args[0] != "-":
		return args[0], nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimSuffix(strings.TrimSuffix(string(b), "\n"), "\r"), nil
}

// done prints out and maps err to an exit code.
func (st *state) done(a subcommands.Application, cmd, out string, err error) int {
	if err != nil {
		st.log.Error("command failed", zap.String("command", cmd), zap.Error(err))
		fmt.Fprintf(a.GetErr(), "%s: %v\n", cmd, err)
		return 1
	}
	fmt.Fprintln(a.GetOut(), out)
	return 0
}
