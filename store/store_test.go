package store

import (
	"errors"
	"testing"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestGetSetDelete(t *testing.T) {
	s := openTest(t)

	if _, err := s.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get missing: err = %v, want ErrNotFound", err)
	}

	if err := s.Set("k", []byte("v1")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set("k", []byte("v2")); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	got, err := s.Get("k")
	if err != nil || string(got) != "v2" {
		t.Fatalf("Get = %q, %v", got, err)
	}

	if err := s.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get("k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete: err = %v", err)
	}
	if err := s.Delete("never-there"); err != nil {
		t.Errorf("Delete missing: %v", err)
	}
}

func TestJSON(t *testing.T) {
	s := openTest(t)

	type pref struct {
		Lang string `json:"lang"`
		N    int    `json:"n"`
	}
	if err := s.SetJSON("pref", pref{Lang: "fr", N: 3}); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}

	var got pref
	if err := s.GetJSON("pref", &got); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if got.Lang != "fr" || got.N != 3 {
		t.Errorf("got %+v", got)
	}

	if err := s.GetJSON("nope", &got); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetJSON missing: err = %v", err)
	}

	if err := s.Set("bad", []byte("{")); err != nil {
		t.Fatal(err)
	}
	if err := s.GetJSON("bad", &got); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("GetJSON corrupt: err = %v", err)
	}
}

func TestOpenOnDisk(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Set("persist", []byte("yes")); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	got, err := s.Get("persist")
	if err != nil || string(got) != "yes" {
		t.Errorf("Get after reopen = %q, %v", got, err)
	}
}
