package response

import (
	"time"

	"nextops_proposals/internal/domain/entities"
)

type LeadResponse struct {
	ID          string    `json:"id"`
	Company     string    `json:"company"`
	ContactName string    `json:"contact_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Employees   string    `json:"employees,omitempty"`
	Industry    string    `json:"industry,omitempty"`
	Message     string    `json:"message,omitempty"`
	Status      string    `json:"status"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromLead(l entities.Lead) LeadResponse {
	return LeadResponse{
		ID:          l.ID,
		Company:     l.Company,
		ContactName: l.ContactName,
		Email:       l.Email,
		Phone:       l.Phone,
		Employees:   l.Employees,
		Industry:    l.Industry,
		Message:     l.Message,
		Status:      string(l.Status),
		Source:      l.Source,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func FromLeads(ls []entities.Lead) []LeadResponse {
	out := make([]LeadResponse, 0, len(ls))
	for _, l := range ls {
		out = append(out, FromLead(l))
	}
	return out
}
