package request

import "strings"

// LeadRequest is the landing-page lead submission payload.
type LeadRequest struct {
	Company   string `json:"company" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Employees string `json:"employees"`
	Industry  string `json:"industry"`
	Message   string `json:"message"`
	Consent   bool   `json:"consent"`
	Source    string `json:"source"`
}

func (r LeadRequest) ResolveSource() string {
	if v := strings.TrimSpace(r.Source); v != "" {
		return v
	}
	return "website"
}

// LeadStatusRequest moves a lead across the pipeline.
type LeadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
