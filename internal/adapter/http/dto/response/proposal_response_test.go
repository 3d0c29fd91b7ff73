package response

import (
	"testing"
	"time"

	"nextops_proposals/internal/domain/entities"
)

func TestFromProposal(t *testing.T) {
	now := time.Now().UTC()
	p := entities.Proposal{
		ID:      "p-1",
		Title:   "Proposta Comercial — ERP Core",
		Product: "erp_core",
		Profile: entities.CompanyProfile{CompanyName: "ACME", NIF: "1", Sector: "retalho"},
		Modules: []string{"stock"},
		Items: []entities.ProposalItem{
			{Description: "ERP Core — Setup & Configuração", Quantity: 1, UnitPrice: 4500, Total: 4500},
			{Description: "Desconto pagamento antecipado", Quantity: 1, UnitPrice: -225, Total: -225},
		},
		Total:       4275,
		Sprints:     3,
		Status:      entities.ProposalStatusAceite,
		CheckoutURL: "https://pay.example/p-1",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res := FromProposal(p)
	if res.ID != "p-1" || res.Product != "erp_core" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "aceite" || res.Total != 4275 || res.Sprints != 3 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if len(res.Items) != 2 || res.Items[1].UnitPrice != -225 {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if res.CheckoutURL != "https://pay.example/p-1" {
		t.Fatalf("unexpected checkout url: %q", res.CheckoutURL)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromProposals_EmptyIsNotNil(t *testing.T) {
	res := FromProposals(nil)
	if res == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(res) != 0 {
		t.Fatalf("expected no entries, got %d", len(res))
	}
}

func TestFromPricingResult(t *testing.T) {
	r := entities.PricingResult{
		Items:   []entities.ProposalItem{{Description: "x", Quantity: 1, UnitPrice: 10, Total: 10}},
		Total:   10,
		Sprints: 1,
	}
	res := FromPricingResult(r)
	if res.Total != 10 || res.Sprints != 1 || len(res.Items) != 1 {
		t.Fatalf("unexpected quote response: %+v", res)
	}
}
