package tinkpad

import (
	"sync"

	"github.com/google/tink/go/core/registry"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// Register adds the pad KeyManager to Tink's global registry so that
// keyset.NewHandle(KeyTemplate()) works. It is safe to call more than once.
func Register() error {
	registerOnce.Do(func() {
		if _, err := registry.GetKeyManager(PadKeyTypeURL); err == nil {
			return
		}
		registerErr = registry.RegisterKeyManager(NewKeyManager())
	})
	return registerErr
}
