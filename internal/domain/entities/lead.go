package entities

import "time"

// LeadStatus mirrors the CRM pipeline columns.

type LeadStatus string

const (
	LeadStatusNovo        LeadStatus = "novo"
	LeadStatusContactado  LeadStatus = "contactado"
	LeadStatusQualificado LeadStatus = "qualificado"
	LeadStatusProposta    LeadStatus = "proposta"
	LeadStatusNegociacao  LeadStatus = "negociacao"
	LeadStatusGanho       LeadStatus = "ganho"
	LeadStatusPerdido     LeadStatus = "perdido"
)

// ValidLeadStatus reports whether s is one of the pipeline statuses.
func ValidLeadStatus(s LeadStatus) bool {
	switch s {
	case LeadStatusNovo, LeadStatusContactado, LeadStatusQualificado,
		LeadStatusProposta, LeadStatusNegociacao, LeadStatusGanho, LeadStatusPerdido:
		return true
	}
	return false
}

// Lead is a sales lead persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Source is "website" for landing-page submissions, "manual" or "referral"
// for leads entered by the team.
type Lead struct {
	ID          string     `json:"id"`
	Company     string     `json:"company"`
	ContactName string     `json:"contact_name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone,omitempty"`
	Employees   string     `json:"employees,omitempty"`
	Industry    string     `json:"industry,omitempty"`
	Message     string     `json:"message,omitempty"`
	Status      LeadStatus `json:"status"`
	Source      string     `json:"source"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
