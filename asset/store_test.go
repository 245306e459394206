package asset

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestBlobIDStable(t *testing.T) {
	a := BlobID([]byte("hello"))
	b := BlobID([]byte("hello"))
	if a != b {
		t.Fatalf("same content produced different ids: %s != %s", a, b)
	}
	if len(a) != 16 {
		t.Fatalf("expected 16 hex digits, got %q", a)
	}
	if BlobID([]byte("world")) == a {
		t.Fatal("different content produced the same id")
	}
}

func TestStorePutGetDedup(t *testing.T) {
	s := NewStore()
	id, err := s.Put([]byte("payload"))
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	again, err := s.Put([]byte("payload"))
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if id != again {
		t.Fatalf("duplicate put changed the id: %s != %s", id, again)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 blob after dedup, got %d", s.Len())
	}
	got, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(got, []byte("payload")) {
		t.Fatalf("unexpected blob content: %q", got)
	}
	if _, err := s.Get("deadbeefdeadbeef"); err == nil {
		t.Fatal("expected error for unknown id")
	}
}

func TestStoreDirMirror(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(WithDir(dir))
	id, err := s.Put([]byte("mirrored"))
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, id))
	if err != nil {
		t.Fatalf("blob file missing: %v", err)
	}
	if !bytes.Equal(data, []byte("mirrored")) {
		t.Fatalf("unexpected file content: %q", data)
	}

	// A fresh store over the same directory serves the blob from disk.
	fresh := NewStore(WithDir(dir))
	got, err := fresh.Get(id)
	if err != nil {
		t.Fatalf("Get from directory failed: %v", err)
	}
	if !bytes.Equal(got, []byte("mirrored")) {
		t.Fatalf("unexpected blob content: %q", got)
	}
}
