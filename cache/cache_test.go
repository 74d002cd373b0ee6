package cache

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/tsawler/tablature"
	"github.com/tsawler/tablature/model"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleResult() *tablature.Result {
	return &tablature.Result{
		Tables: []*model.LogicalTable{
			{
				ID:      0,
				Headers: []string{"Sl.No", "Description", "Quantity"},
				Rows:    [][]string{{"1", "Desk", "2"}},
				Pages:   []int{0},
			},
		},
		Warnings: []tablature.Warning{
			{Code: tablature.WarnPageEmpty, Page: 1, Message: "no table candidates survived selection"},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	store := tempStore(t)
	key := Key([]byte("document bytes"))

	if err := store.Put(key, sampleResult()); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := store.Get(key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.Tables) != 1 || got.Tables[0].Headers[2] != "Quantity" {
		t.Errorf("retrieved result = %+v", got.Tables)
	}
	if len(got.Warnings) != 1 || got.Warnings[0].Code != tablature.WarnPageEmpty {
		t.Errorf("warnings did not survive the round trip: %+v", got.Warnings)
	}
}

func TestGetMissingKey(t *testing.T) {
	store := tempStore(t)

	_, err := store.Get(Key([]byte("never stored")))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestDeleteAndKeys(t *testing.T) {
	store := tempStore(t)
	keyA := Key([]byte("a"))
	keyB := Key([]byte("b"))

	if err := store.Put(keyA, sampleResult()); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Put(keyB, sampleResult()); err != nil {
		t.Fatalf("Put: %v", err)
	}

	if err := store.Delete(keyA); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(keyA); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted key still readable: %v", err)
	}

	keys, err := store.Keys()
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	if len(keys) != 1 || keys[0] != keyB {
		t.Errorf("keys = %v, want only %q", keys, keyB)
	}

	// Deleting a missing key is not an error.
	if err := store.Delete(keyA); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestKeyIsStable(t *testing.T) {
	if Key([]byte("x")) != Key([]byte("x")) {
		t.Error("key derivation is not deterministic")
	}
	if Key([]byte("x")) == Key([]byte("y")) {
		t.Error("distinct documents share a key")
	}
}
