package tokens

import (
	"testing"
	"time"
)

func TestPutTakeRoundtrip(t *testing.T) {
	s := NewStore()

	token := s.Put("hello")
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	text, ok := s.Take(token)
	if !ok {
		t.Fatal("expected token to be redeemable")
	}
	if text != "hello" {
		t.Errorf("got %q, want %q", text, "hello")
	}
	if s.Len() != 0 {
		t.Errorf("store should be empty after Take, has %d", s.Len())
	}
}

func TestTakeConsumesToken(t *testing.T) {
	s := NewStore()
	token := s.Put("one shot")

	if _, ok := s.Take(token); !ok {
		t.Fatal("first Take should succeed")
	}
	if _, ok := s.Take(token); ok {
		t.Error("second Take with the same token should fail")
	}
}

func TestTakeUnknownToken(t *testing.T) {
	s := NewStore()

	if _, ok := s.Take("1234567890"); ok {
		t.Error("Take of an unknown token should fail")
	}
}

func TestPutCollisionOverwrites(t *testing.T) {
	s := NewStore()
	fixed := time.UnixMilli(1700000000000)
	s.now = func() time.Time { return fixed }

	first := s.Put("first")
	second := s.Put("second")

	if first != second {
		t.Fatalf("expected identical tokens for identical timestamps, got %q and %q", first, second)
	}
	if s.Len() != 1 {
		t.Errorf("collision should overwrite, store has %d entries", s.Len())
	}

	text, ok := s.Take(second)
	if !ok || text != "second" {
		t.Errorf("got %q, %v; want %q, true", text, ok, "second")
	}
}

func TestRestoreKeepsLinkUsable(t *testing.T) {
	s := NewStore()
	token := s.Put("payload")

	text, ok := s.Take(token)
	if !ok {
		t.Fatal("Take should succeed")
	}

	s.Restore(token, text)

	got, ok := s.Take(token)
	if !ok || got != "payload" {
		t.Errorf("after Restore, got %q, %v; want %q, true", got, ok, "payload")
	}
}
