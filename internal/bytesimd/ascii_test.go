package bytesimd

import (
	"strings"
	"testing"
)

func TestASCIIRunLengthAllASCII(t *testing.T) {
	data := []byte(strings.Repeat("hello world ", 10))
	if got := ASCIIRunLength(data); got != len(data) {
		t.Fatalf("got %d, want %d", got, len(data))
	}
	if !IsASCII(data) {
		t.Fatal("expected IsASCII true")
	}
}

func TestASCIIRunLengthStopsAtNonASCII(t *testing.T) {
	data := append([]byte(strings.Repeat("x", 40)), 0xC3, 0xA9)
	if got := ASCIIRunLength(data); got != 40 {
		t.Fatalf("got %d, want 40", got)
	}
	if IsASCII(data) {
		t.Fatal("expected IsASCII false")
	}
}

func TestASCIIRunLengthEmpty(t *testing.T) {
	if got := ASCIIRunLength(nil); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
}

func TestASCIIRunLengthShortInput(t *testing.T) {
	data := []byte{'a', 'b', 0x80}
	if got := ASCIIRunLength(data); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
}

func TestASCIIRunLengthNonASCIIAtChunkBoundary(t *testing.T) {
	data := append([]byte(strings.Repeat("a", 32)), 0x80)
	if got := ASCIIRunLength(data); got != 32 {
		t.Fatalf("got %d, want 32", got)
	}
}
