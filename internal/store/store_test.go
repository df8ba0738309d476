package store_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"bitkitcore/internal/domain"
	"bitkitcore/internal/store"
)

func TestHashingKey_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	var keys domain.KeyStore = store.NewKeyFileStore(home)

	has, err := keys.HasHashingKey()
	if err != nil || has {
		t.Fatalf("fresh store: has=%v err=%v", has, err)
	}

	key := domain.HashingKey{1, 2, 3, 4, 31: 0xff}
	if err := keys.SaveHashingKey("pass", key); err != nil {
		t.Fatalf("save hashing key: %v", err)
	}

	got, err := keys.LoadHashingKey("pass")
	if err != nil {
		t.Fatalf("load hashing key: %v", err)
	}
	if got != key {
		t.Fatalf("mismatch after load")
	}
	if has, _ := keys.HasHashingKey(); !has {
		t.Fatal("expected key to be present")
	}

	if runtime.GOOS != "windows" {
		fi, err := os.Stat(filepath.Join(home, "hashing_key.json.enc"))
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if fi.Mode().Perm() != 0o600 {
			t.Fatalf("want mode 0600, got %v", fi.Mode().Perm())
		}
	}
}

func TestHashingKey_WrongPassphrase_Fails(t *testing.T) {
	keys := store.NewKeyFileStore(t.TempDir())

	if err := keys.SaveHashingKey("correct", domain.HashingKey{9}); err != nil {
		t.Fatalf("save hashing key: %v", err)
	}
	if _, err := keys.LoadHashingKey("wrong"); !errors.Is(err, store.ErrWrongPassphrase) {
		t.Fatalf("want ErrWrongPassphrase, got %v", err)
	}
}

func TestHashingKey_Missing(t *testing.T) {
	keys := store.NewKeyFileStore(t.TempDir())
	if _, err := keys.LoadHashingKey("pass"); !errors.Is(err, store.ErrNoKey) {
		t.Fatalf("want ErrNoKey, got %v", err)
	}
}

func TestHashingKey_Tampered(t *testing.T) {
	home := t.TempDir()
	keys := store.NewKeyFileStore(home)
	if err := keys.SaveHashingKey("pass", domain.HashingKey{7}); err != nil {
		t.Fatalf("save hashing key: %v", err)
	}
	if err := os.WriteFile(filepath.Join(home, "hashing_key.json.enc"), []byte(`{"v":9}`), 0o600); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if _, err := keys.LoadHashingKey("pass"); err == nil {
		t.Fatal("expected error for unsupported version")
	}
}

func TestHashingKey_ExcessiveScryptCost(t *testing.T) {
	home := t.TempDir()
	keys := store.NewKeyFileStore(home)
	if err := keys.SaveHashingKey("pass", domain.HashingKey{7}); err != nil {
		t.Fatalf("save hashing key: %v", err)
	}
	path := filepath.Join(home, "hashing_key.json.enc")

	for name, edit := range map[string]func(map[string]any){
		"huge N":      func(m map[string]any) { m["scrypt_N"] = 1 << 30 },
		"huge r":      func(m map[string]any) { m["scrypt_r"] = 1 << 20 },
		"huge p":      func(m map[string]any) { m["scrypt_p"] = 1 << 20 },
		"N not pow 2": func(m map[string]any) { m["scrypt_N"] = 3 },
		"zero N":      func(m map[string]any) { m["scrypt_N"] = 0 },
	} {
		t.Run(name, func(t *testing.T) {
			b, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			var m map[string]any
			if err := json.Unmarshal(b, &m); err != nil {
				t.Fatalf("decode: %v", err)
			}
			edit(m)
			b, _ = json.Marshal(m)
			tampered := filepath.Join(t.TempDir(), "hashing_key.json.enc")
			if err := os.WriteFile(tampered, b, 0o600); err != nil {
				t.Fatalf("write: %v", err)
			}

			_, err = store.NewKeyFileStore(filepath.Dir(tampered)).LoadHashingKey("pass")
			if !errors.Is(err, store.ErrKDFParams) {
				t.Fatalf("want ErrKDFParams, got %v", err)
			}
		})
	}
}

func TestSave_ReplacesAtomically(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested")
	keys := store.NewKeyFileStore(home)
	for i := range 3 {
		if err := keys.SaveHashingKey("pass", domain.HashingKey{byte(i)}); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	entries, err := os.ReadDir(home)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "hashing_key.json.enc" {
		t.Fatalf("want only the key file, got %v", entries)
	}
	got, err := keys.LoadHashingKey("pass")
	if err != nil || got != (domain.HashingKey{2}) {
		t.Fatalf("load = %x, %v; want the last key saved", got, err)
	}
}

func TestLogins_SaveList(t *testing.T) {
	var logins domain.LoginStore = store.NewLoginFileStore(t.TempDir())

	recs, err := logins.ListLogins()
	if err != nil || len(recs) != 0 {
		t.Fatalf("fresh store: %v %v", recs, err)
	}

	t0 := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	for i, d := range []string{"a.com", "b.com", "a.com"} {
		rec := domain.LoginRecord{Domain: d, LinkingKey: "02aa", At: t0.Add(time.Duration(i) * time.Minute)}
		if err := logins.SaveLogin(rec); err != nil {
			t.Fatalf("save login: %v", err)
		}
	}

	recs, err = logins.ListLogins()
	if err != nil {
		t.Fatalf("list logins: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("want 2 records, got %d", len(recs))
	}
	if recs[0].Domain != "b.com" || recs[1].Domain != "a.com" {
		t.Fatalf("unexpected order %+v", recs)
	}
	if !recs[1].At.Equal(t0.Add(2 * time.Minute)) {
		t.Fatalf("re-login should update the timestamp, got %v", recs[1].At)
	}
}
