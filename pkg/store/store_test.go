package store

import (
	"path/filepath"
	"testing"

	"github.com/lil-lang/lil/internal/interp"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vars.db")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestStoreSetGet(t *testing.T) {
	st := openTestStore(t)
	if err := st.Set("name", "lil"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok := st.Get("name")
	if !ok {
		t.Fatalf("Get(name) not found")
	}
	if got != "lil" {
		t.Errorf("Get(name) = %q, want lil", got)
	}
}

func TestStoreGetMissing(t *testing.T) {
	st := openTestStore(t)
	if _, ok := st.Get("missing"); ok {
		t.Errorf("Get(missing) reported ok=true, want false")
	}
}

func TestStoreSetUpserts(t *testing.T) {
	st := openTestStore(t)
	st.Set("k", "v1")
	st.Set("k", "v2")
	got, ok := st.Get("k")
	if !ok || got != "v2" {
		t.Fatalf("Get(k) = %q, %v; want v2, true", got, ok)
	}
}

func TestStoreDelete(t *testing.T) {
	st := openTestStore(t)
	st.Set("k", "v")
	if err := st.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := st.Get("k"); ok {
		t.Errorf("Get(k) after Delete reported ok=true, want false")
	}
}

func TestStoreAttachBacksRootVariables(t *testing.T) {
	st := openTestStore(t)
	ip := interp.New()
	st.Attach(ip)

	ip.Parse(`set global persisted hello`, false)
	if ip.HasError() {
		t.Fatalf("Parse error: %s", ip.Err().Message)
	}

	got, ok := st.Get("persisted")
	if !ok || got != "hello" {
		t.Fatalf("store Get(persisted) = %q, %v; want hello, true", got, ok)
	}
}
