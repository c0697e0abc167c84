package identity

import (
	"net"
	"testing"
)

func TestFaker_ProducesNonEmptyValues(t *testing.T) {
	f := NewFaker(42)

	if f.Name() == "" {
		t.Error("Name returned an empty string")
	}
	if f.Email() == "" {
		t.Error("Email returned an empty string")
	}
	if f.Phone() == "" {
		t.Error("Phone returned an empty string")
	}
	if f.Company() == "" {
		t.Error("Company returned an empty string")
	}
	if ip := f.IPv4(); net.ParseIP(ip) == nil {
		t.Errorf("IPv4 returned %q, not a parseable address", ip)
	}
}

func TestFaker_SameSeedSameSequence(t *testing.T) {
	a, b := NewFaker(7), NewFaker(7)
	for i := 0; i < 10; i++ {
		if got, want := a.Name(), b.Name(); got != want {
			t.Fatalf("draw %d: %q vs %q from identically seeded fakers", i, got, want)
		}
	}
}
