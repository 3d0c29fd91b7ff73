package response

import (
	"time"

	"nextops_proposals/internal/domain/entities"
)

type ProposalItemResponse struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

type ProposalResponse struct {
	ID           string                  `json:"id"`
	Title        string                  `json:"title"`
	Product      string                  `json:"product"`
	Profile      entities.CompanyProfile `json:"company_profile"`
	Modules      []string                `json:"modules"`
	PaymentTerms string                  `json:"payment_terms"`
	Items        []ProposalItemResponse  `json:"items"`
	Total        float64                 `json:"total"`
	Sprints      int                     `json:"sprints"`
	Status       string                  `json:"status"`
	ValidUntil   time.Time               `json:"valid_until"`
	Notes        string                  `json:"notes,omitempty"`
	CheckoutURL  string                  `json:"checkout_url,omitempty"`
	CreatedBy    string                  `json:"created_by,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	return ProposalResponse{
		ID:           p.ID,
		Title:        p.Title,
		Product:      p.Product,
		Profile:      p.Profile,
		Modules:      p.Modules,
		PaymentTerms: p.PaymentTerms,
		Items:        fromItems(p.Items),
		Total:        p.Total,
		Sprints:      p.Sprints,
		Status:       string(p.Status),
		ValidUntil:   p.ValidUntil,
		Notes:        p.Notes,
		CheckoutURL:  p.CheckoutURL,
		CreatedBy:    p.CreatedBy,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func FromProposals(ps []entities.Proposal) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProposal(p))
	}
	return out
}

func fromItems(items []entities.ProposalItem) []ProposalItemResponse {
	out := make([]ProposalItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ProposalItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	return out
}
