package response

import "nextops_proposals/internal/domain/entities"

// QuoteResponse is the stateless pricing preview.
type QuoteResponse struct {
	Items   []ProposalItemResponse `json:"items"`
	Total   float64                `json:"total"`
	Sprints int                    `json:"sprints"`
}

func FromPricingResult(r entities.PricingResult) QuoteResponse {
	return QuoteResponse{
		Items:   fromItems(r.Items),
		Total:   r.Total,
		Sprints: r.Sprints,
	}
}

// RecommendationResponse lists the default module keys, best first.
type RecommendationResponse struct {
	Modules []string `json:"modules"`
}
