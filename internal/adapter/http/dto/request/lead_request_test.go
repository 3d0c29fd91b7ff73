package request

import "testing"

func TestLeadRequest_ResolveSource(t *testing.T) {
	r := LeadRequest{Source: " referral "}
	if got := r.ResolveSource(); got != "referral" {
		t.Fatalf("expected referral, got %q", got)
	}

	r2 := LeadRequest{Source: "   "}
	if got := r2.ResolveSource(); got != "website" {
		t.Fatalf("expected website default, got %q", got)
	}
}
