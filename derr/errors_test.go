package derr

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorIsMatchesSentinel(t *testing.T) {
	err := LogDoesNotExist("n=%d, a=%d, b=%d", 5779, 3528, 6215)
	if !IsLogDoesNotExist(err) {
		t.Fatal("expected IsLogDoesNotExist to match")
	}
	if IsNotRelativelyPrime(err) {
		t.Fatal("did not expect IsNotRelativelyPrime to match")
	}
	if !errors.Is(err, ErrLogDoesNotExist) {
		t.Fatal("errors.Is should match the wrapped sentinel")
	}
}

func TestErrorMessageIncludesContext(t *testing.T) {
	err := NotRelativelyPrime("gcd(%d, %d) != 1", 6, 9)
	msg := err.Error()
	if !strings.Contains(msg, "gcd(6, 9)") {
		t.Fatalf("expected context in message, got %q", msg)
	}
	if !strings.Contains(msg, "not relatively prime") {
		t.Fatalf("expected base message in %q", msg)
	}
}

func TestErrorWithoutContext(t *testing.T) {
	err := New(ErrLogDoesNotExist, "")
	if err.Error() != ErrLogDoesNotExist.Error() {
		t.Fatalf("expected bare sentinel message, got %q", err.Error())
	}
}
