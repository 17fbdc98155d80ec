package cache

import (
	"testing"
	"time"
)

func TestKey_StableAndDistinct(t *testing.T) {
	a := Key("https://www.startup.az/startup/one.html")
	b := Key("https://www.startup.az/startup/two.html")
	if a == b {
		t.Error("Expected distinct keys for distinct URLs")
	}
	if a != Key("https://www.startup.az/startup/one.html") {
		t.Error("Expected stable key for the same URL")
	}
}

func TestDisk_RoundTripAndExpiry(t *testing.T) {
	d := NewDisk(t.TempDir(), time.Hour)

	if err := d.Set(Key("u1"), []byte("<html>one</html>"), 0); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	got, found := d.Get(Key("u1"))
	if !found || string(got) != "<html>one</html>" {
		t.Errorf("Expected cached body, got %q (found=%v)", got, found)
	}

	if err := d.Set(Key("u2"), []byte("stale"), time.Nanosecond); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	time.Sleep(time.Millisecond)
	if _, found := d.Get(Key("u2")); found {
		t.Error("Expected expired entry to miss")
	}
}

func TestLayered_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	l := NewLayered(time.Hour, dir, time.Hour)

	if err := l.Set(Key("page"), []byte("body"), 0); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// A fresh layered cache over the same dir has a cold memory layer and
	// must fall through to disk.
	l2 := NewLayered(time.Hour, dir, time.Hour)
	got, found := l2.Get(Key("page"))
	if !found || string(got) != "body" {
		t.Fatalf("Expected disk fallthrough, got %q (found=%v)", got, found)
	}

	// Promotion: now present in l2's memory layer.
	if _, found := l2.memory.Get(Key("page")); !found {
		t.Error("Expected disk hit to be promoted into memory")
	}
}

func TestLayered_MemoryKeepsOwnTTL(t *testing.T) {
	l := NewLayered(5*time.Millisecond, t.TempDir(), time.Hour)

	if err := l.Set(Key("page"), []byte("body"), time.Hour); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	time.Sleep(20 * time.Millisecond)

	// The hour-long disk TTL must not stretch the memory entry's life.
	if _, found := l.memory.Get(Key("page")); found {
		t.Error("Expected memory entry to expire on the memory TTL")
	}
	if got, found := l.Get(Key("page")); !found || string(got) != "body" {
		t.Errorf("Expected disk entry to survive, got %q (found=%v)", got, found)
	}
}
