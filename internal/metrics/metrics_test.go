package metrics

import "testing"

func TestDirection(t *testing.T) {
	if got := Direction(0.12); got != "long" {
		t.Fatalf("Direction(0.12) = %s, want long", got)
	}
	if got := Direction(-0.0001); got != "short" {
		t.Fatalf("Direction(-0.0001) = %s, want short", got)
	}
	if got := Direction(0); got != "flat" {
		t.Fatalf("Direction(0) = %s, want flat", got)
	}
}
