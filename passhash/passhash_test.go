package passhash

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

func cheapArgon2id() *Argon2id {
	return NewArgon2id(Argon2idParams{Memory: 1024, Time: 1, Threads: 1, SaltLen: 16, KeyLen: 32})
}

func TestLegacyRoundTrip(t *testing.T) {
	l := NewLegacy("--site-salt--", 3)

	hash, err := l.Make("myPassword")
	if err != nil {
		t.Fatalf("Make failed: %v", err)
	}
	if !strings.HasPrefix(hash, "default$3$") {
		t.Errorf("hash %q has the wrong prefix", hash)
	}
	if parts := strings.Split(hash, "$"); len(parts) != 4 || len(parts[2]) != 27 {
		t.Errorf("hash %q does not have a 27-character salt", hash)
	}

	ok, err := l.Check("myPassword", hash)
	if err != nil || !ok {
		t.Errorf("Check(correct) = %v, %v", ok, err)
	}
	ok, err = l.Check("myPassword!", hash)
	if err != nil || ok {
		t.Errorf("Check(wrong) = %v, %v", ok, err)
	}

	// The site salt is part of the hash.
	ok, err = NewLegacy("other salt", 3).Check("myPassword", hash)
	if err != nil || ok {
		t.Errorf("Check with another site salt = %v, %v", ok, err)
	}
}

func TestLegacySaltsDiffer(t *testing.T) {
	l := NewLegacy("salt", 2)
	a, err := l.Make("same")
	if err != nil {
		t.Fatal(err)
	}
	b, err := l.Make("same")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two hashes of the same password are identical")
	}
}

func TestLegacyMalformed(t *testing.T) {
	l := NewLegacy("salt", 2)
	for _, hash := range []string{
		"",
		"default$2$onlythree",
		"default$x$salt$hash",
		"default$0$salt$hash",
		"default$1000$salt$hash",
		"other$2$salt$hash",
	} {
		if _, err := l.Check("pw", hash); !errors.Is(err, ErrMalformedHash) {
			t.Errorf("Check(%q) error = %v, want ErrMalformedHash", hash, err)
		}
	}
}

func TestNewLegacyClampsComplexity(t *testing.T) {
	if l := NewLegacy("", 0); l.complexity != 1 {
		t.Errorf("complexity = %d, want 1", l.complexity)
	}
	if l := NewLegacy("", 1000); l.complexity != MaxLegacyComplexity {
		t.Errorf("complexity = %d, want %d", l.complexity, MaxLegacyComplexity)
	}
}

func TestArgon2idRoundTrip(t *testing.T) {
	a := cheapArgon2id()

	hash, err := a.Make("correct horse")
	if err != nil {
		t.Fatalf("Make failed: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$m=1024,t=1,p=1$") {
		t.Errorf("hash %q has the wrong prefix", hash)
	}

	ok, err := a.Check("correct horse", hash)
	if err != nil || !ok {
		t.Errorf("Check(correct) = %v, %v", ok, err)
	}
	ok, err = a.Check("battery staple", hash)
	if err != nil || ok {
		t.Errorf("Check(wrong) = %v, %v", ok, err)
	}

	// Parameters come from the hash, not the driver.
	ok, err = NewArgon2id(DefaultArgon2idParams()).Check("correct horse", hash)
	if err != nil || !ok {
		t.Errorf("Check with different driver params = %v, %v", ok, err)
	}
}

func TestArgon2idMalformed(t *testing.T) {
	a := cheapArgon2id()
	for _, hash := range []string{
		"$argon2id$v=19$m=1024,t=1,p=1$salt",
		"$argon2id$v=18$m=1024,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=x,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=1024,t=1,p=1$!!$a2V5",
		"$argon2id$v=19$m=1024,t=0,p=1$c2FsdA$a2V5",
		"$argon2i$v=19$m=1024,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=4294967295,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=1024,t=4294967295,p=1$c2FsdA$a2V5",
	} {
		if _, err := a.Check("pw", hash); !errors.Is(err, ErrMalformedHash) {
			t.Errorf("Check(%q) error = %v, want ErrMalformedHash", hash, err)
		}
	}
}

func TestArgon2idCostLimits(t *testing.T) {
	// Default limits: 4x of m=64 MiB and t=3.
	a := cheapArgon2id()
	for _, hash := range []string{
		"$argon2id$v=19$m=262145,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=1024,t=13,p=1$c2FsdA$a2V5",
	} {
		if _, err := a.Check("pw", hash); !errors.Is(err, ErrMalformedHash) {
			t.Errorf("Check(%q) error = %v, want ErrMalformedHash", hash, err)
		}
	}

	// A driver configured above the defaults verifies its own hashes.
	slow := NewArgon2id(Argon2idParams{Memory: 1024, Time: 20, Threads: 1, SaltLen: 16, KeyLen: 32})
	hash, err := slow.Make("pw")
	if err != nil {
		t.Fatal(err)
	}
	ok, err := slow.Check("pw", hash)
	if err != nil || !ok {
		t.Errorf("Check with own params = %v, %v", ok, err)
	}
	if _, err := a.Check("pw", hash); !errors.Is(err, ErrMalformedHash) {
		t.Errorf("default-limited Check error = %v, want ErrMalformedHash", err)
	}
}

func TestManagerConcurrentRegister(t *testing.T) {
	m := NewManager("site", 1)
	legacy, err := NewLegacy("site", 1).Make("pw")
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			m.Register(DriverLegacy, NewLegacy("site", 1))
		}()
		go func() {
			defer wg.Done()
			if ok, err := m.Check("pw", legacy); err != nil || !ok {
				t.Errorf("Check = %v, %v", ok, err)
			}
		}()
	}
	wg.Wait()
}

func TestManager(t *testing.T) {
	m := NewManager("site", 2)
	m.Register(DriverArgon2id, cheapArgon2id())

	hash, err := m.Make("pw")
	if err != nil {
		t.Fatal(err)
	}
	if d, _ := Detect(hash); d != DriverArgon2id {
		t.Errorf("Make used driver %q, want %q", d, DriverArgon2id)
	}
	if m.NeedsRehash(hash) {
		t.Error("fresh hash should not need a rehash")
	}

	legacy, err := NewLegacy("site", 2).Make("pw")
	if err != nil {
		t.Fatal(err)
	}
	ok, err := m.Check("pw", legacy)
	if err != nil || !ok {
		t.Errorf("Check(legacy) = %v, %v", ok, err)
	}
	if !m.NeedsRehash(legacy) {
		t.Error("legacy hash should need a rehash")
	}

	if _, err := m.Check("pw", "bcrypt$whatever"); !errors.Is(err, ErrMalformedHash) {
		t.Errorf("error = %v, want ErrMalformedHash", err)
	}
}

func TestDetect(t *testing.T) {
	testCases := []struct {
		hash string
		want string
		ok   bool
	}{
		{"$argon2id$v=19$m=1,t=1,p=1$a$b", DriverArgon2id, true},
		{"default$5$salt$hash", DriverLegacy, true},
		{"$2y$10$abc", "", false},
		{"", "", false},
	}
	for _, tc := range testCases {
		got, ok := Detect(tc.hash)
		if got != tc.want || ok != tc.ok {
			t.Errorf("Detect(%q) = %q, %v; want %q, %v", tc.hash, got, ok, tc.want, tc.ok)
		}
	}
}
