package request

import (
	"errors"
	"strings"
	"time"

	"nextops_proposals/internal/domain/entities"
)

var ErrInvalidValidUntil = errors.New("invalid valid_until date")

// Dates on the wire use the wizard's plain calendar format.
const dateLayout = "2006-01-02"

// CompanyProfileRequest is the wizard's company step.
type CompanyProfileRequest struct {
	CompanyName   string   `json:"company_name" binding:"required"`
	Email         string   `json:"email"`
	NIF           string   `json:"nif" binding:"required"`
	Sector        string   `json:"sector" binding:"required"`
	CapitalSocial string   `json:"capital_social"`
	Employees     string   `json:"employees"`
	AnnualRevenue string   `json:"annual_revenue"`
	Departments   []string `json:"departments"`
	Specificities string   `json:"specificities"`
	MainInterest  string   `json:"main_interest"`
}

func (r CompanyProfileRequest) ToEntity() entities.CompanyProfile {
	return entities.CompanyProfile{
		CompanyName:   strings.TrimSpace(r.CompanyName),
		Email:         strings.TrimSpace(r.Email),
		NIF:           strings.TrimSpace(r.NIF),
		Sector:        strings.TrimSpace(r.Sector),
		CapitalSocial: strings.TrimSpace(r.CapitalSocial),
		Employees:     strings.TrimSpace(r.Employees),
		AnnualRevenue: strings.TrimSpace(r.AnnualRevenue),
		Departments:   r.Departments,
		Specificities: strings.TrimSpace(r.Specificities),
		MainInterest:  strings.TrimSpace(r.MainInterest),
	}
}

// ProposalRequest creates a proposal from the completed wizard.
type ProposalRequest struct {
	Title          string                `json:"title"`
	Product        string                `json:"product" binding:"required"`
	CompanyProfile CompanyProfileRequest `json:"company_profile" binding:"required"`
	Modules        []string              `json:"modules"`
	PaymentTerms   string                `json:"payment_terms"`
	ValidUntil     string                `json:"valid_until"`
	Notes          string                `json:"notes"`
	CreatedBy      string                `json:"created_by"`
}

// ResolveValidUntil parses the optional validity date. An empty value yields
// the zero time; the use case applies its default validity window.
func (r ProposalRequest) ResolveValidUntil() (time.Time, error) {
	v := strings.TrimSpace(r.ValidUntil)
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, ErrInvalidValidUntil
	}
	return t, nil
}

// QuoteRequest is a stateless pricing preview for the wizard.
type QuoteRequest struct {
	Product      string   `json:"product" binding:"required"`
	Modules      []string `json:"modules"`
	Employees    string   `json:"employees"`
	Revenue      string   `json:"revenue"`
	PaymentTerms string   `json:"payment_terms"`
}

// RecommendRequest asks for the default module selection for a profile.
type RecommendRequest struct {
	Product        string                `json:"product" binding:"required"`
	CompanyProfile CompanyProfileRequest `json:"company_profile" binding:"required"`
}
